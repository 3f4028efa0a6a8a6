// Package scramble provides the byte-level operations behind the puzzle:
// letter corruption, single-bit candidates and word addressing.
package scramble

// Source is the random source used to drive corruption. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// BitCount is the number of low bits a flip may touch.
const BitCount = 6

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsEditable reports whether b may be written into a working buffer:
// printable ASCII, excluding space.
func IsEditable(b byte) bool {
	return b > 0x20 && b < 0x7f
}

// FlipBit returns b with the given bit inverted.
func FlipBit(b byte, bit int) byte {
	return b ^ (1 << bit)
}

// Candidates lists b with each of bits 0-5 flipped, in bit order.
func Candidates(b byte) [BitCount]byte {
	var out [BitCount]byte
	for bit := range BitCount {
		out[bit] = FlipBit(b, bit)
	}

	return out
}
