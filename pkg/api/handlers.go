package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/averett/pngvault/pkg/chunk"
	"github.com/averett/pngvault/pkg/png"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports API liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// readPNGBody reads and parses the uploaded PNG from the request body.
func (s *Server) readPNGBody(w http.ResponseWriter, r *http.Request, operation string, start time.Time) (*png.PNG, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.RecordPNGOperation(operation, false, time.Since(start))
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil, false
	}

	p, err := png.Parse(body)
	if err != nil {
		s.metrics.RecordPNGOperation(operation, false, time.Since(start))
		sendError(w, fmt.Sprintf("Failed to parse PNG: %v", err), http.StatusBadRequest)
		return nil, false
	}

	s.metrics.RecordChunksParsed(len(p.Chunks()))
	return p, true
}

// handleInspect returns a JSON listing of the chunks in the uploaded PNG.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p, ok := s.readPNGBody(w, r, "inspect", start)
	if !ok {
		return
	}

	chunks := p.Chunks()
	infos := make([]ChunkInfo, 0, len(chunks))
	for i, c := range chunks {
		infos = append(infos, ChunkInfo{
			Index:      i,
			Type:       c.Type().String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   c.Type().IsCritical(),
			Public:     c.Type().IsPublic(),
			SafeToCopy: c.Type().IsSafeToCopy(),
		})
	}

	s.metrics.RecordPNGOperation("inspect", true, time.Since(start))
	sendSuccess(w, InspectResponse{ChunkCount: len(infos), Chunks: infos})
}

// handleEmbed appends a secret chunk to the uploaded PNG and returns the
// modified file.
func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	chunkType := r.URL.Query().Get("chunk_type")
	message := r.URL.Query().Get("message")
	if chunkType == "" || message == "" {
		sendError(w, "chunk_type and message query parameters are required", http.StatusBadRequest)
		return
	}

	typ, err := chunk.TypeFromString(chunkType)
	if err != nil {
		sendError(w, fmt.Sprintf("Invalid chunk type: %v", err), http.StatusBadRequest)
		return
	}

	p, ok := s.readPNGBody(w, r, "embed", start)
	if !ok {
		return
	}

	p.AppendChunk(chunk.New(typ, []byte(message)))

	data, err := p.Bytes()
	if err != nil {
		s.metrics.RecordPNGOperation("embed", false, time.Since(start))
		sendError(w, fmt.Sprintf("Failed to serialize PNG: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordSecretBytes(len(message))
	s.metrics.RecordPNGOperation("embed", true, time.Since(start))
	sendPNG(w, data)
}

// handleExtract finds a secret chunk in the uploaded PNG and returns its
// payload as text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	chunkType := r.URL.Query().Get("chunk_type")
	if chunkType == "" {
		sendError(w, "chunk_type query parameter is required", http.StatusBadRequest)
		return
	}

	p, ok := s.readPNGBody(w, r, "extract", start)
	if !ok {
		return
	}

	c := p.ChunkByType(chunkType)
	if c == nil {
		s.metrics.RecordPNGOperation("extract", false, time.Since(start))
		sendError(w, fmt.Sprintf("No chunk of type %q found", chunkType), http.StatusNotFound)
		return
	}

	message, err := c.DataAsText()
	if err != nil {
		s.metrics.RecordPNGOperation("extract", false, time.Since(start))
		sendError(w, fmt.Sprintf("Chunk payload is not text: %v", err), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordPNGOperation("extract", true, time.Since(start))
	sendSuccess(w, ExtractResponse{ChunkType: chunkType, Message: message})
}

// handleRemove strips the first chunk of the given type from the uploaded
// PNG and returns the modified file.
func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	chunkType := r.URL.Query().Get("chunk_type")
	if chunkType == "" {
		sendError(w, "chunk_type query parameter is required", http.StatusBadRequest)
		return
	}

	p, ok := s.readPNGBody(w, r, "remove", start)
	if !ok {
		return
	}

	if _, err := p.RemoveChunk(chunkType); err != nil {
		s.metrics.RecordPNGOperation("remove", false, time.Since(start))
		if errors.Is(err, png.ErrChunkNotFound) {
			sendError(w, fmt.Sprintf("No chunk of type %q found", chunkType), http.StatusNotFound)
			return
		}
		sendError(w, fmt.Sprintf("Failed to remove chunk: %v", err), http.StatusInternalServerError)
		return
	}

	data, err := p.Bytes()
	if err != nil {
		s.metrics.RecordPNGOperation("remove", false, time.Since(start))
		sendError(w, fmt.Sprintf("Failed to serialize PNG: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordPNGOperation("remove", true, time.Since(start))
	sendPNG(w, data)
}
