// Package packedchar stores either a rune or a 22-bit unsigned integer in a
// single 32-bit word, with no separate tag bits.
//
// The trick is that Unicode scalar values never fall in the surrogate range
// 0xD800-0xDFFF, and every codepoint in that range starts with the five bits
// 11011. A stored integer is split into two 11-bit chunks: the high chunk
// goes in the leading bits no codepoint reaches, the low chunk in the
// trailing bits, and the surrogate signature sits in between:
//
//	11111111111  00000    11011            11111111111
//	left chunk | unused | surrogate bits | right chunk
//
// Masking off the leading bits of any word then yields a surrogate codepoint
// exactly when the word holds an integer, which disambiguates the two cases.
package packedchar

import (
	"fmt"
	"unicode/utf8"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// The bits shared by every codepoint in the surrogate range: 11011
	// followed by eleven zeros.
	surrogateMask = surrogateMin & surrogateMax // 0xD800

	maxRune = 0x10FFFF // utf8.MaxRune, kept untyped for mask arithmetic

	// A codepoint needs at most 21 bits, so the leading 11 bits of the word
	// are free. The trailing 11 bits are the zero run of surrogateMask.
	leadingBits  = 11
	leadingMask  = ^uint32(0) >> (32 - leadingBits) << (32 - leadingBits)
	trailingMask = 1<<leadingBits - 1
	runeMask     = ^leadingMask

	// Moves the top 11 bits of a 22-bit value into the leading bits.
	leadingShift = 32 - 22
)

// A PackedChar is an immutable 32-bit word holding either a rune or a U22.
// The zero value holds the rune U+0000. PackedChars are comparable with ==.
type PackedChar struct {
	bits uint32
}

// RuneError reports a rune that is not a valid Unicode scalar value, i.e. a
// surrogate codepoint or a value outside 0..0x10FFFF.
type RuneError struct {
	Rune rune
}

func (e *RuneError) Error() string {
	return fmt.Sprintf("rune %#x is not a valid scalar value", e.Rune)
}

// FromRune packs a rune. Go's rune type admits surrogates and out-of-range
// values, so r is validated here; invalid runes are reported as *RuneError.
func FromRune(r rune) (PackedChar, error) {
	if !utf8.ValidRune(r) {
		return PackedChar{}, &RuneError{Rune: r}
	}
	return PackedChar{bits: uint32(r)}, nil
}

// FromU22 packs a 22-bit integer. It cannot fail: the U22 type guarantees
// its value fits.
func FromU22(u U22) PackedChar {
	n := u.Uint32()
	leading := (n << leadingShift) & leadingMask
	trailing := n & trailingMask
	return PackedChar{bits: leading | trailing | surrogateMask}
}

// FromUint22 packs an integer that must fit in 22 bits, combining
// U22FromUint32 and FromU22.
func FromUint22(n uint32) (PackedChar, error) {
	u, err := U22FromUint32(n)
	if err != nil {
		return PackedChar{}, err
	}
	return FromU22(u), nil
}

// isU22 is the classification test: the word holds a U22 exactly when its
// low 21 bits land in the surrogate range. Checking the five signature bits
// alone is not enough, since runes like U+1D800 carry the signature with
// bit 16 set on top.
func (p PackedChar) isU22() bool {
	c := p.bits & runeMask
	return surrogateMin <= c && c <= surrogateMax
}

// IsRune reports whether the word holds a rune.
func (p PackedChar) IsRune() bool {
	return !p.isU22()
}

// IsU22 reports whether the word holds a 22-bit integer.
func (p PackedChar) IsU22() bool {
	return p.isU22()
}

// Rune returns the packed rune, or false if the word holds a U22.
func (p PackedChar) Rune() (rune, bool) {
	if p.isU22() {
		return 0, false
	}
	return rune(p.bits), true
}

// U22 returns the packed integer, or false if the word holds a rune.
func (p PackedChar) U22() (U22, bool) {
	if !p.isU22() {
		return U22{}, false
	}
	i := p.bits &^ surrogateMask
	return U22{n: (i & trailingMask) | (i&leadingMask)>>leadingShift}, true
}

func (p PackedChar) String() string {
	if u, ok := p.U22(); ok {
		return fmt.Sprintf("u22(%s)", u)
	}
	r, _ := p.Rune()
	return fmt.Sprintf("%q", r)
}
