package scramble

import m "github.com/mouse-blink/bitrot/internal/model"

// SplitWords returns the span of every maximal run of non-whitespace bytes.
// Scanning stops at the first NUL byte.
func SplitWords(text []byte) []m.Span {
	end := len(text)

	for i, b := range text {
		if b == 0 {
			end = i
			break
		}
	}

	var spans []m.Span

	for i := 0; i < end; {
		for i < end && isSpace(text[i]) {
			i++
		}

		start := i
		for i < end && !isSpace(text[i]) {
			i++
		}

		if i > start {
			spans = append(spans, m.Span{Start: start, Length: i - start})
		}
	}

	return spans
}

// WordAt returns the span for a 1-based word number.
func WordAt(text []byte, number int) (m.Span, bool) {
	if number < 1 {
		return m.Span{}, false
	}

	spans := SplitWords(text)
	if number > len(spans) {
		return m.Span{}, false
	}

	return spans[number-1], true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', 0:
		return true
	default:
		return false
	}
}
