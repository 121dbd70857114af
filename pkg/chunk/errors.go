package chunk

// Errors
var (
	ErrTruncated   = &ChunkError{"truncated chunk data"}
	ErrInvalidType = &ChunkError{"invalid chunk type"}
	ErrChecksum    = &ChunkError{"crc checksum mismatch"}
	ErrNotText     = &ChunkError{"chunk data is not valid text"}
	ErrTooLarge    = &ChunkError{"chunk data exceeds maximum length"}
)

// ChunkError represents a chunk codec error
type ChunkError struct {
	Message string
}

func (e *ChunkError) Error() string {
	return e.Message
}
