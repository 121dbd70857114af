package png

// Signature is the fixed 8-byte magic prefix of every PNG file.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// SignatureSize is the length of the file signature in bytes.
const SignatureSize = len(Signature)

// Errors
var (
	ErrBadSignature  = &FormatError{"bad png signature"}
	ErrChunkNotFound = &FormatError{"chunk not found"}
)

// FormatError represents a container-level format error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}
