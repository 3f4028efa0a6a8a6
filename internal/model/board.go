package model

import "time"

// CandidateCount is the number of single-bit alternatives offered per character.
const CandidateCount = 6

// Board is the read-only view a UI renders on every turn.
type Board struct {
	Document   []byte
	Corrupted  []byte
	Working    []byte
	Stage      Stage
	Mistakes   int
	Words      []Span
	Word       *Span // selected word, nil when none
	CharIndex  int   // 1-based, 0 when none
	Candidates []byte
}

// Record is a finished game kept in the history.
type Record struct {
	ID         string
	Source     Path
	Seed       uint32
	TextLength int
	Mistakes   int
	FinishedAt time.Time
}

// Progress summarizes how far a session is from the original text.
type Progress struct {
	Letters   int // letters in the original text
	Damaged   int // bytes the corruption changed
	Restored  int // damaged bytes now matching the original again
	Remaining int // bytes that still differ from the original
}
