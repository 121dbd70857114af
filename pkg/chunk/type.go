package chunk

import "fmt"

// Type is a 4-byte ASCII chunk type code. The case of each byte (bit 5)
// encodes one property of the chunk, per the PNG specification.
type Type struct {
	b [4]byte
}

// TypeFromBytes constructs a Type from raw bytes. All four bytes must be
// ASCII letters (A-Z, a-z); anything else is rejected.
func TypeFromBytes(b [4]byte) (Type, error) {
	for _, c := range b {
		if !isASCIIAlphabetic(c) {
			return Type{}, fmt.Errorf("%w: byte %#02x is not ASCII alphabetic", ErrInvalidType, c)
		}
	}
	return Type{b: b}, nil
}

// TypeFromString constructs a Type from its 4-character text form.
func TypeFromString(s string) (Type, error) {
	if len(s) != 4 {
		return Type{}, fmt.Errorf("%w: %q is not 4 characters", ErrInvalidType, s)
	}
	var b [4]byte
	copy(b[:], s)
	return TypeFromBytes(b)
}

// Bytes returns the raw type code bytes.
func (t Type) Bytes() [4]byte {
	return t.b
}

// IsCritical reports whether the chunk is critical for display (first byte
// uppercase). Decoders must not ignore unknown critical chunks.
func (t Type) IsCritical() bool {
	return isASCIIUppercase(t.b[0])
}

// IsPublic reports whether the type is a registered public chunk type
// (second byte uppercase). Private application chunks use lowercase.
func (t Type) IsPublic() bool {
	return isASCIIUppercase(t.b[1])
}

// IsReservedBitValid reports whether the reserved bit conforms to the current
// PNG specification (third byte uppercase). A lowercase third byte is
// reserved for future expansion.
func (t Type) IsReservedBitValid() bool {
	return isASCIIUppercase(t.b[2])
}

// IsSafeToCopy reports whether an editor that does not recognize the chunk
// may copy it into a modified file (fourth byte lowercase).
func (t Type) IsSafeToCopy() bool {
	return isASCIILowercase(t.b[3])
}

// IsValid reports full PNG-standard validity: all bytes alphabetic and the
// reserved bit set correctly. Construction only enforces the alphabetic
// rule, so a constructible Type may still be invalid here.
func (t Type) IsValid() bool {
	for _, c := range t.b {
		if !isASCIIAlphabetic(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func (t Type) String() string {
	return string(t.b[:])
}

func isASCIIUppercase(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILowercase(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIIAlphabetic(c byte) bool {
	return isASCIIUppercase(c) || isASCIILowercase(c)
}
