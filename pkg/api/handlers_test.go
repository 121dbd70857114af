package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averett/pngvault/pkg/chunk"
	"github.com/averett/pngvault/pkg/png"
)

// Metrics register against the default Prometheus registry, so they are
// created once and shared across all tests in the package.
var (
	testMetricsOnce sync.Once
	testMetrics     *Metrics
)

func metricsForTest() *Metrics {
	testMetricsOnce.Do(func() {
		testMetrics = NewMetrics()
	})
	return testMetrics
}

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(ServerConfig{APIKey: "test-key"}, metricsForTest())
}

// testPNG builds a serialized container with one carrier chunk.
func testPNG(t *testing.T) []byte {
	t.Helper()

	typ, err := chunk.TypeFromString("bKGd")
	require.NoError(t, err)

	// 0xFF 0xFE is deliberately not valid UTF-8.
	p := png.FromChunks([]*chunk.Chunk{chunk.New(typ, []byte{0xFF, 0xFE})})
	data, err := p.Bytes()
	require.NoError(t, err)
	return data
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestServer_handleHealth(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
}

func TestServer_handleInspect(t *testing.T) {
	server := setupTestServer(t)

	t.Run("lists chunks of a valid png", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/png/inspect", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleInspect(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		require.True(t, resp.Success)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var inspect InspectResponse
		require.NoError(t, json.Unmarshal(data, &inspect))

		require.Equal(t, 1, inspect.ChunkCount)
		assert.Equal(t, "bKGd", inspect.Chunks[0].Type)
		assert.Equal(t, uint32(2), inspect.Chunks[0].Length)
		assert.False(t, inspect.Chunks[0].Critical)
		assert.True(t, inspect.Chunks[0].Public)
		assert.True(t, inspect.Chunks[0].SafeToCopy)
	})

	t.Run("rejects non-png body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/png/inspect", bytes.NewReader([]byte("nope")))
		w := httptest.NewRecorder()

		server.handleInspect(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "parse")
	})
}

func TestServer_handleEmbed(t *testing.T) {
	server := setupTestServer(t)

	t.Run("embeds a secret chunk", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/embed?chunk_type=ruSt&message=hello", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleEmbed(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

		modified, err := png.Parse(w.Body.Bytes())
		require.NoError(t, err)
		secret := modified.ChunkByType("ruSt")
		require.NotNil(t, secret)
		assert.Equal(t, "hello", string(secret.Data()))
	})

	t.Run("requires chunk_type and message", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/embed?chunk_type=ruSt", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleEmbed(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects invalid chunk type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/embed?chunk_type=Ru1t&message=hi", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleEmbed(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.Error, "Invalid chunk type")
	})
}

func TestServer_handleExtract(t *testing.T) {
	server := setupTestServer(t)

	// Build a PNG that already carries a secret.
	typ, err := chunk.TypeFromString("ruSt")
	require.NoError(t, err)
	p, err := png.Parse(testPNG(t))
	require.NoError(t, err)
	p.AppendChunk(chunk.New(typ, []byte("the cake is a lie")))
	carrier, err := p.Bytes()
	require.NoError(t, err)

	t.Run("extracts the secret", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/extract?chunk_type=ruSt", bytes.NewReader(carrier))
		w := httptest.NewRecorder()

		server.handleExtract(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		require.True(t, resp.Success)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var extract ExtractResponse
		require.NoError(t, json.Unmarshal(data, &extract))

		assert.Equal(t, "ruSt", extract.ChunkType)
		assert.Equal(t, "the cake is a lie", extract.Message)
	})

	t.Run("missing chunk type is a 404", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/extract?chunk_type=noPe", bytes.NewReader(carrier))
		w := httptest.NewRecorder()

		server.handleExtract(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-text payload is a 422", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/extract?chunk_type=bKGd", bytes.NewReader(carrier))
		w := httptest.NewRecorder()

		server.handleExtract(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestServer_handleRemove(t *testing.T) {
	server := setupTestServer(t)

	t.Run("removes the chunk", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/remove?chunk_type=bKGd", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleRemove(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		modified, err := png.Parse(w.Body.Bytes())
		require.NoError(t, err)
		assert.Nil(t, modified.ChunkByType("bKGd"))
		assert.Empty(t, modified.Chunks())
	})

	t.Run("absent chunk type is a 404", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/secrets/remove?chunk_type=noPe", bytes.NewReader(testPNG(t)))
		w := httptest.NewRecorder()

		server.handleRemove(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouterAuthentication(t *testing.T) {
	server := setupTestServer(t)
	router := NewRouter(server, metricsForTest())

	t.Run("rejects missing api key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts valid api key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		req.Header.Set("X-API-Key", "test-key")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics endpoint is unprotected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
