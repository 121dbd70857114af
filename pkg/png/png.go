// Package png implements the chunk container for pngvault: an ordered
// collection of chunks behind the fixed PNG file signature.
//
// The container treats every chunk as an opaque typed byte blob. It knows
// nothing about pixel data or image semantics; preserving chunk order on
// re-serialization is what keeps an edited file renderable.
package png

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/averett/pngvault/pkg/chunk"
)

// PNG is the parsed form of one file: the signature plus an ordered chunk
// sequence. Chunk order is file order; duplicate types are permitted.
type PNG struct {
	chunks []*chunk.Chunk
}

// FromChunks builds a container from an in-memory chunk sequence.
func FromChunks(chunks []*chunk.Chunk) *PNG {
	return &PNG{chunks: chunks}
}

// Parse decodes a full byte buffer into a container. The signature and
// every chunk must be intact; any failure aborts the whole parse with no
// partial result.
func Parse(data []byte) (*PNG, error) {
	r := NewReader(bytes.NewReader(data))
	if err := r.ReadSignature(); err != nil {
		return nil, err
	}

	p := &PNG{}
	for {
		c, err := r.ReadChunk()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing chunk %d: %w", len(p.chunks), err)
		}
		p.chunks = append(p.chunks, c)
	}

	return p, nil
}

// Chunks returns the chunk sequence in file order.
func (p *PNG) Chunks() []*chunk.Chunk {
	return p.chunks
}

// AppendChunk pushes a chunk onto the end of the sequence.
func (p *PNG) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type code's text form equals
// typeCode, or nil when absent. Lookup is by text, not by validity bits.
func (p *PNG) ChunkByType(typeCode string) *chunk.Chunk {
	for _, c := range p.chunks {
		if c.Type().String() == typeCode {
			return c
		}
	}
	return nil
}

// RemoveChunk removes and returns the first chunk matching typeCode. When no
// chunk matches, the sequence is left untouched and ErrChunkNotFound is
// returned. Duplicates beyond the first match are preserved.
func (p *PNG) RemoveChunk(typeCode string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == typeCode {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrChunkNotFound, typeCode)
}

// Bytes serializes the container: the signature followed by every chunk's
// encoded form, in sequence order.
func (p *PNG) Bytes() ([]byte, error) {
	size := SignatureSize
	for _, c := range p.chunks {
		size += c.Size()
	}

	buf := make([]byte, 0, size)
	buf = append(buf, Signature[:]...)
	for i, c := range p.chunks {
		encoded, err := c.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding chunk %d (%s): %w", i, c.Type(), err)
		}
		buf = append(buf, encoded...)
	}

	return buf, nil
}

// String renders a diagnostic listing of the container's chunks. This is
// for humans; it is not a wire format.
func (p *PNG) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PNG with %d chunks:\n", len(p.chunks))
	for i, c := range p.chunks {
		fmt.Fprintf(&b, "  [%d] %s\n", i, c)
	}
	return b.String()
}
