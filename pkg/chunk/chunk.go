package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"unicode/utf8"
)

// HeaderSize is the fixed prefix of every encoded chunk: a big-endian
// uint32 data length followed by the 4 type code bytes.
const HeaderSize = 8

// TrailerSize is the trailing big-endian uint32 CRC.
const TrailerSize = 4

// Chunk is one container record: a type code plus an opaque payload.
// The length and CRC fields of the wire format are derived, never stored.
type Chunk struct {
	typ  Type
	data []byte
}

// New creates a chunk from a type and payload. The payload is not copied;
// callers must not mutate it afterwards.
func New(typ Type, data []byte) *Chunk {
	return &Chunk{typ: typ, data: data}
}

// Type returns the chunk's type code.
func (c *Chunk) Type() Type {
	return c.typ
}

// Data returns the chunk's payload.
func (c *Chunk) Data() []byte {
	return c.data
}

// Length returns the payload length as stored in the wire format.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// CRC computes the CRC-32/ISO-HDLC checksum over the type code bytes
// followed by the payload. hash/crc32's IEEE table is exactly this variant.
func (c *Chunk) CRC() uint32 {
	crc := crc32.NewIEEE()
	typ := c.typ.Bytes()
	crc.Write(typ[:])
	crc.Write(c.data)
	return crc.Sum32()
}

// DataAsText interprets the payload as UTF-8 text.
func (c *Chunk) DataAsText() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %s payload is not UTF-8", ErrNotText, c.typ)
	}
	return string(c.data), nil
}

// Size returns the total encoded size of the chunk in bytes.
func (c *Chunk) Size() int {
	return HeaderSize + len(c.data) + TrailerSize
}

// Encode serializes the chunk into its binary record format.
// Format: [Length(4, big-endian)][Type(4)][Data(Length)][CRC32(4, big-endian)]
func (c *Chunk) Encode() ([]byte, error) {
	if len(c.data) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(c.data))
	}

	buf := make([]byte, c.Size())
	binary.BigEndian.PutUint32(buf[0:], c.Length())
	typ := c.typ.Bytes()
	copy(buf[4:], typ[:])
	copy(buf[HeaderSize:], c.data)
	binary.BigEndian.PutUint32(buf[HeaderSize+len(c.data):], c.CRC())

	return buf, nil
}

// Decode deserializes a single binary record starting at offset 0 of data.
// The type code must pass the full PNG validity check, not just the
// alphabetic rule used at construction time; parsing untrusted input is
// deliberately stricter than building chunks in memory.
func Decode(data []byte) (*Chunk, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for length and type", ErrTruncated, len(data))
	}

	length := int(binary.BigEndian.Uint32(data[0:4]))

	var typeBytes [4]byte
	copy(typeBytes[:], data[4:HeaderSize])
	typ, err := TypeFromBytes(typeBytes)
	if err != nil {
		return nil, err
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: %s fails the reserved bit check", ErrInvalidType, typ)
	}

	if len(data) < HeaderSize+length+TrailerSize {
		return nil, fmt.Errorf("%w: need %d bytes for data and crc, have %d",
			ErrTruncated, HeaderSize+length+TrailerSize, len(data))
	}

	payload := make([]byte, length)
	copy(payload, data[HeaderSize:HeaderSize+length])
	storedCRC := binary.BigEndian.Uint32(data[HeaderSize+length : HeaderSize+length+TrailerSize])

	c := New(typ, payload)
	if computed := c.CRC(); computed != storedCRC {
		return nil, fmt.Errorf("%w: computed %d, stored %d", ErrChecksum, computed, storedCRC)
	}

	return c, nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk(type=%s, length=%d, crc=%d)", c.typ, c.Length(), c.CRC())
}
