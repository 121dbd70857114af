package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/averett/pngvault/pkg/chunk"
)

// Reader provides sequential access to the chunks of a PNG stream. Every
// read is bounds-checked through io.ReadFull so truncated or adversarial
// input surfaces as an error, never as an out-of-range slice.
type Reader struct {
	r      io.Reader
	offset int64
}

// NewReader creates a reader over a PNG byte stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadSignature consumes and verifies the 8-byte file signature. It must be
// called exactly once, before the first ReadChunk.
func (r *Reader) ReadSignature() error {
	sig := make([]byte, SignatureSize)
	n, err := io.ReadFull(r.r, sig)
	r.offset += int64(n)
	if err != nil {
		return fmt.Errorf("%w: %d bytes is too short for a signature", ErrBadSignature, n)
	}
	if !bytes.Equal(sig, Signature[:]) {
		return fmt.Errorf("%w: got % x", ErrBadSignature, sig)
	}
	return nil
}

// ReadChunk reads the next chunk record from the current offset. It returns
// io.EOF once the stream is cleanly exhausted; a stream that ends in the
// middle of a record is reported as truncated instead.
func (r *Reader) ReadChunk() (*chunk.Chunk, error) {
	header := make([]byte, chunk.HeaderSize)
	n, err := io.ReadFull(r.r, header)
	r.offset += int64(n)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: chunk header cut short at offset %d", chunk.ErrTruncated, r.offset)
	}

	length := int64(binary.BigEndian.Uint32(header[0:4]))

	// The declared length is untrusted until the payload actually arrives,
	// so the record buffer grows with the bytes read instead of being sized
	// up front from the header.
	var record bytes.Buffer
	record.Write(header)
	copied, err := io.CopyN(&record, r.r, length+chunk.TrailerSize)
	r.offset += copied
	if err != nil {
		return nil, fmt.Errorf("%w: need %d data and crc bytes at offset %d, got %d",
			chunk.ErrTruncated, length+chunk.TrailerSize, r.offset, copied)
	}

	return chunk.Decode(record.Bytes())
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}
