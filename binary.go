package packedchar

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

// The bit layout is fixed, so the raw word works as an interchange form:
// two independent implementations of this packing agree byte for byte when
// they serialize the word the same way. The methods here use big-endian so
// the byte sequence reads like the hex of Bits().

// BitsError reports a 32-bit pattern that no constructor can produce: the
// leading bits are set but the low 21 bits are not a surrogate codepoint, so
// the word is neither a valid rune nor a packed integer.
type BitsError struct {
	Bits uint32
}

func (e *BitsError) Error() string {
	return fmt.Sprintf("%#08x is not a packed rune or 22-bit value", e.Bits)
}

// Bits returns the raw 32-bit word.
func (p PackedChar) Bits() uint32 {
	return p.bits
}

// FromBits reconstructs a PackedChar from a raw word. It accepts exactly the
// words FromRune and FromU22 can produce and rejects everything else with
// *BitsError, so a word that survives FromBits always round-trips through
// one of the two accessors.
func FromBits(bits uint32) (PackedChar, error) {
	p := PackedChar{bits: bits}
	if p.IsRune() && bits > maxRune {
		return PackedChar{}, &BitsError{Bits: bits}
	}
	return p, nil
}

var (
	_ encoding.BinaryMarshaler   = PackedChar{}
	_ encoding.BinaryUnmarshaler = (*PackedChar)(nil)
)

// MarshalBinary encodes the word as 4 big-endian bytes.
func (p PackedChar) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint32(nil, p.bits), nil
}

// UnmarshalBinary decodes 4 big-endian bytes, validating the word the same
// way FromBits does.
func (p *PackedChar) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("expected 4 bytes, got %d", len(data))
	}
	dec, err := FromBits(binary.BigEndian.Uint32(data))
	if err != nil {
		return err
	}
	*p = dec
	return nil
}
