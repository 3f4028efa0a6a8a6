package scramble

// Corrupt returns a copy of text in which every ASCII letter has been,
// with probability percentage/100, replaced by a single-bit flip of itself.
//
// Only bits 0-5 are considered. A flip that lands on a space or an
// unprintable byte is discarded and another bit is drawn among those not
// yet tried; flipping bit 5 of a letter always yields a letter, so the
// draw ends. A nil text, a nil source or a percentage outside [0,100]
// leaves the copy untouched.
func Corrupt(text []byte, percentage int, rng Source) []byte {
	if text == nil {
		return nil
	}

	out := make([]byte, len(text))
	copy(out, text)

	if rng == nil || percentage < 0 || percentage > 100 {
		return out
	}

	for i, b := range out {
		// the roll happens for every byte so a seed maps to one layout
		if rng.IntN(100) >= percentage || !IsLetter(b) {
			continue
		}

		out[i] = flipLetter(b, rng)
	}

	return out
}

func flipLetter(b byte, rng Source) byte {
	bits := [BitCount]int{0, 1, 2, 3, 4, 5}
	left := BitCount

	for left > 0 {
		k := rng.IntN(left)

		if c := FlipBit(b, bits[k]); IsEditable(c) {
			return c
		}

		left--
		bits[k] = bits[left]
	}

	return b
}
