package domain

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/mouse-blink/bitrot/internal/domain/scramble"
	m "github.com/mouse-blink/bitrot/internal/model"
	"github.com/mouse-blink/bitrot/internal/savefile"
)

// pcgStream separates bitrot's PCG stream from other users of the same seed.
const pcgStream = 0x62697472

// NewSource returns the random source owned by a session with the given seed.
func NewSource(seed uint32) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), pcgStream))
}

// NewSession corrupts document with the given percentage and returns a fresh
// session with no selection.
func NewSession(document []byte, percentage int, seed uint32) (*m.Session, error) {
	if i := bytes.IndexByte(document, 0); i >= 0 {
		return nil, fmt.Errorf("%w: offset %d", m.ErrBinaryDocument, i)
	}

	if len(document) > savefile.MaxTextLength {
		return nil, fmt.Errorf("text of %d bytes exceeds the %d byte limit", len(document), savefile.MaxTextLength)
	}

	doc := append([]byte{}, document...)
	corrupted := scramble.Corrupt(doc, percentage, NewSource(seed))

	return &m.Session{
		Header: m.Header{
			Seed:       seed,
			TextLength: int32(len(doc)), // #nosec G115 - bounded by MaxTextLength
			State:      m.StageWordSelection,
			WordStart:  m.NoSelection,
			WordLength: m.NoSelection,
			CharIndex:  m.NoSelection,
		},
		Document:  doc,
		Corrupted: corrupted,
		Working:   bytes.Clone(corrupted),
	}, nil
}

// RatePercentage converts a corruption rate in [0,1] to a percentage.
func RatePercentage(rate float64) (int, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return 0, fmt.Errorf("%w: corruption rate %v is not between 0 and 1", m.ErrInvalidInput, rate)
	}

	return int(math.Round(rate * 100)), nil
}

// MeasureProgress compares the working text of s against its references.
func MeasureProgress(s *m.Session) m.Progress {
	var p m.Progress

	for i, b := range s.Document {
		if scramble.IsLetter(b) {
			p.Letters++
		}

		damaged := s.Corrupted[i] != b
		if damaged {
			p.Damaged++
		}

		if s.Working[i] != b {
			p.Remaining++
		} else if damaged {
			p.Restored++
		}
	}

	return p
}

func timeSeed() uint32 {
	n := uint64(time.Now().UnixNano()) // #nosec G115
	return uint32(n) ^ uint32(n>>32)
}
