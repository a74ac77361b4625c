package lenientcsv

import (
	"fmt"
	"io"

	"github.com/dmlogic/csv/internal/parser"
	"github.com/dmlogic/csv/pkg/linesource"
)

// Scanner streams records from a line source one at a time. Production is
// pull-based: nothing is read beyond the record most recently requested,
// and stopping early is always safe: the scanner holds no resources of
// its own, and the source's lifecycle is owned by the caller.
//
// Records made of a single blank-line marker (entirely empty physical
// lines) are consumed and never surfaced.
//
// Example:
//
//	scanner, err := lenientcsv.NewScanner(linesource.NewBuffer(data))
//	if err != nil {
//	    // handle error
//	}
//	for scanner.Scan() {
//	    fmt.Println(scanner.Record().Strings())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	p      *parser.Parser
	record Record
	err    error
	done   bool
}

// NewScanner prepares a streaming parse of src.
//
// src must provide the linesource.Source capability; anything else fails
// with ErrInvalidSource before a single line is read. The parameter is
// typed any so that the capability of arbitrary caller-supplied values is
// checked in one place at the parse boundary rather than at every call
// site. On success the source's native record-splitting mode is cleared,
// the source is rewound, and its control characters are captured for the
// whole parse.
func NewScanner(src any) (*Scanner, error) {
	ls, ok := src.(linesource.Source)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSource, src)
	}
	ls.ResetMode()
	if err := ls.Rewind(); err != nil {
		return nil, err
	}
	return &Scanner{p: parser.New(ls)}, nil
}

// Scan advances to the next record, skipping blank lines. It returns
// false when the source is exhausted or a source I/O error occurs; Err
// tells the two apart.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		raw, err := s.p.Next()
		if err == io.EOF {
			s.done = true
			return false
		}
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		if raw.BlankLine() {
			continue
		}
		s.record = newRecord(raw)
		return true
	}
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the first source I/O error encountered, or nil after a
// clean end of stream.
func (s *Scanner) Err() error {
	return s.err
}
