package model

import "errors"

var (
	// ErrInvalidInput means a selection, offset or choice was out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCanceled means the player asked to step back one stage.
	ErrCanceled = errors.New("canceled")
	// ErrNonEditable means the chosen flip yields a space or an unprintable byte.
	ErrNonEditable = errors.New("character cannot be changed to a space or an unprintable byte")
	// ErrFileNotFound means a load or save path could not be used.
	ErrFileNotFound = errors.New("file not found")
	// ErrUninitializedSession means an operation needed a loaded session.
	ErrUninitializedSession = errors.New("no game loaded")
	// ErrFormat means a save file is truncated or inconsistent.
	ErrFormat = errors.New("invalid save file")
	// ErrBinaryDocument means a source text contains NUL bytes.
	ErrBinaryDocument = errors.New("source text contains NUL bytes")
)
