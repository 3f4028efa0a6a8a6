// Package savefile encodes and decodes puzzle sessions.
//
// A save file is the session header followed by the three text buffers:
//
//	seed        uint32
//	textLength  int32
//	state       int32
//	mistakes    int32
//	wordStart   int32
//	wordLength  int32
//	charIndex   int32
//	document    [textLength+1]byte  NUL terminated
//	corrupted   [textLength+1]byte  NUL terminated
//	working     [textLength+1]byte  NUL terminated
//
// Integers are little-endian.
package savefile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	m "github.com/mouse-blink/bitrot/internal/model"
)

// HeaderSize is the encoded size of model.Header.
const HeaderSize = 7 * 4

// MaxTextLength bounds the buffer allocation made while decoding.
const MaxTextLength = 64 << 20

var byteOrder = binary.LittleEndian

// Encode writes s to w.
func Encode(w io.Writer, s *m.Session) error {
	if s == nil {
		return m.ErrUninitializedSession
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %v", m.ErrFormat, err)
	}

	header := encodeHeader(s.Header)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, buf := range [][]byte{s.Document, s.Corrupted, s.Working} {
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write text: %w", err)
		}

		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("failed to write terminator: %w", err)
		}
	}

	return nil
}

// Decode reads one session from r. Truncated or inconsistent input yields
// an error wrapping model.ErrFormat.
func Decode(r io.Reader) (*m.Session, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", m.ErrFormat, err)
	}

	header := decodeHeader(raw)
	if header.TextLength < 0 || header.TextLength > MaxTextLength {
		return nil, fmt.Errorf("%w: text length %d", m.ErrFormat, header.TextLength)
	}

	s := &m.Session{Header: header}

	for _, dst := range []*[]byte{&s.Document, &s.Corrupted, &s.Working} {
		buf, err := readText(r, int(header.TextLength))
		if err != nil {
			return nil, err
		}

		*dst = buf
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", m.ErrFormat, err)
	}

	return s, nil
}

// Marshal returns the encoded form of s.
func Marshal(s *m.Session) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data, which must hold exactly one session.
func Unmarshal(data []byte) (*m.Session, error) {
	r := bytes.NewReader(data)

	s, err := Decode(r)
	if err != nil {
		return nil, err
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", m.ErrFormat, r.Len())
	}

	return s, nil
}

func readText(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading text: %v", m.ErrFormat, err)
	}

	if buf[n] != 0 {
		return nil, fmt.Errorf("%w: missing terminator", m.ErrFormat)
	}

	if i := bytes.IndexByte(buf[:n], 0); i >= 0 {
		return nil, fmt.Errorf("%w: NUL byte at offset %d", m.ErrFormat, i)
	}

	return buf[:n], nil
}

func encodeHeader(h m.Header) [HeaderSize]byte {
	var out [HeaderSize]byte

	byteOrder.PutUint32(out[0:], h.Seed)
	byteOrder.PutUint32(out[4:], uint32(h.TextLength))
	byteOrder.PutUint32(out[8:], uint32(h.State))
	byteOrder.PutUint32(out[12:], uint32(h.Mistakes))
	byteOrder.PutUint32(out[16:], uint32(h.WordStart))
	byteOrder.PutUint32(out[20:], uint32(h.WordLength))
	byteOrder.PutUint32(out[24:], uint32(h.CharIndex))

	return out
}

func decodeHeader(raw [HeaderSize]byte) m.Header {
	return m.Header{
		Seed:       byteOrder.Uint32(raw[0:]),
		TextLength: int32(byteOrder.Uint32(raw[4:])),
		State:      m.Stage(int32(byteOrder.Uint32(raw[8:]))),
		Mistakes:   int32(byteOrder.Uint32(raw[12:])),
		WordStart:  int32(byteOrder.Uint32(raw[16:])),
		WordLength: int32(byteOrder.Uint32(raw[20:])),
		CharIndex:  int32(byteOrder.Uint32(raw[24:])),
	}
}
