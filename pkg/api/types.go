package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ChunkInfo describes one chunk in an inspected PNG
type ChunkInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// InspectResponse is the JSON body returned by the inspect endpoint
type InspectResponse struct {
	ChunkCount int         `json:"chunk_count"`
	Chunks     []ChunkInfo `json:"chunks"`
}

// ExtractResponse is the JSON body returned by the extract endpoint
type ExtractResponse struct {
	ChunkType string `json:"chunk_type"`
	Message   string `json:"message"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}
