package linesource

import (
	"io"
	"strings"
)

// Buffer is an in-memory Source over a complete CSV document.
// The zero value is not usable; construct with NewBuffer, NewBufferBytes,
// or NewBufferReader.
type Buffer struct {
	data    string
	offset  int
	control Control
}

// NewBuffer returns a Buffer reading lines from data.
func NewBuffer(data string) *Buffer {
	return &Buffer{data: data, control: DefaultControl()}
}

// NewBufferBytes returns a Buffer reading lines from data.
func NewBufferBytes(data []byte) *Buffer {
	return NewBuffer(string(data))
}

// NewBufferReader drains r into memory and returns a Buffer over its
// contents. Use this for sources that cannot seek; rewinding replays the
// buffered copy.
func NewBufferReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferBytes(data), nil
}

// SetControl replaces the CSV control characters and returns the Buffer
// for chaining.
func (b *Buffer) SetControl(c Control) *Buffer {
	b.control = c
	return b
}

// Control returns the CSV control characters.
func (b *Buffer) Control() Control {
	return b.control
}

// ReadLine returns the next physical line, through its '\n' byte if one
// exists, and io.EOF once the buffer is exhausted.
func (b *Buffer) ReadLine() (string, error) {
	if b.offset >= len(b.data) {
		return "", io.EOF
	}
	rest := b.data[b.offset:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		b.offset += i + 1
		return rest[:i+1], nil
	}
	// Final line without a trailing break.
	b.offset = len(b.data)
	return rest, nil
}

// Rewind resets the buffer to its first line. It never fails.
func (b *Buffer) Rewind() error {
	b.offset = 0
	return nil
}

// ResetMode is a no-op: a Buffer never splits records natively.
func (b *Buffer) ResetMode() {}
