package linesource

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// File is a Source backed by an *os.File. Lines are buffered through
// bufio; Rewind seeks back to the start of the file.
//
// File does not own the descriptor: the caller opens and closes it. This
// matches the parser's resource model, where early termination of a parse
// never has to release anything.
type File struct {
	f       *os.File
	br      *bufio.Reader
	control Control
}

// NewFile returns a File source over f. The file position is assumed to
// be wherever the caller left it; the parser rewinds before reading.
func NewFile(f *os.File) *File {
	return &File{
		f:       f,
		br:      bufio.NewReader(f),
		control: DefaultControl(),
	}
}

// SetControl replaces the CSV control characters and returns the File
// for chaining.
func (s *File) SetControl(c Control) *File {
	s.control = c
	return s
}

// Control returns the CSV control characters.
func (s *File) Control() Control {
	return s.control
}

// ReadLine returns the next physical line including its trailing break
// bytes, and io.EOF once the file is exhausted. A final unterminated line
// is returned with a nil error; io.EOF follows on the next call.
func (s *File) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// Rewind seeks the file back to its beginning and resets the read buffer.
func (s *File) Rewind() error {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("linesource: rewind %s: %w", s.f.Name(), err)
	}
	s.br.Reset(s.f)
	return nil
}

// ResetMode is a no-op: a File never splits records natively.
func (s *File) ResetMode() {}
