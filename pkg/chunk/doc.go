// Package chunk implements the PNG chunk record codec for pngvault.
//
// A chunk is the unit of storage inside a PNG file. pngvault hides secret
// messages by writing them as ancillary chunks, so this package is the
// foundation everything else builds on.
//
// # Record Format
//
// Chunks are serialized in a binary format with the following structure:
//
//	[Length(4)][Type(4)][Data(Length)][CRC32(4)]
//
// Fields:
//   - Length: 32-bit unsigned payload length in bytes (big-endian)
//   - Type: 4 ASCII letters identifying the chunk's category
//   - Data: Variable-length opaque payload
//   - CRC32: CRC-32/ISO-HDLC checksum over Type and Data (big-endian)
//
// The total record size is: 8 bytes (header) + len(data) + 4 bytes (crc).
//
// # Type Codes
//
// The case of each type code byte carries meaning. Bit 5 of the four bytes
// encodes, in order: critical, public, reserved-bit-valid, and safe-to-copy.
// "RuSt" is critical, private, reserved-bit-valid, and safe to copy.
//
// Construction via TypeFromBytes or TypeFromString only requires the four
// bytes to be ASCII letters. Decode additionally requires IsValid, i.e. a
// correct reserved bit. The asymmetry is intentional: callers may build and
// encode unusual types, but untrusted input is parsed strictly.
//
// # Error Handling
//
// Malformed input never panics. Decode returns errors wrapping the package
// sentinels (ErrTruncated, ErrInvalidType, ErrChecksum) so callers can
// distinguish structural damage from integrity failures with errors.Is.
package chunk
