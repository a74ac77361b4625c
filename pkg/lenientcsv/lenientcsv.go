// Package lenientcsv parses CSV records from raw physical lines without
// relying on an escape character.
//
// Native CSV readers typically cannot be configured with an empty escape
// parameter. This package works around that by reconstructing field and
// record boundaries itself from verbatim line reads: doubled enclosure
// characters are the only quote escape, quoted fields may span physical
// lines, and malformed quoting degrades to best-effort content instead of
// an error. It reads CSV only; writing, header mapping, and character
// encoding conversion are out of scope.
//
// # Thread safety
//
// Every parse call builds its own parser state; nothing is shared between
// calls. Parsing two different sources concurrently is safe. A single
// Scanner, like the Source feeding it, must stay on one goroutine.
//
// # Parsing APIs
//
//   - Parse(string) / ParseWithOptions: one-shot parse of in-memory data
//   - ParseReader(io.Reader): one-shot parse of a stream
//   - ParseSource(any): one-shot parse of a caller-supplied line source
//   - NewScanner(any): lazy, record-at-a-time streaming
//
// Example:
//
//	records, err := lenientcsv.Parse("a,\"b\"\"c\",d\n")
//	if err != nil {
//	    // handle error
//	}
//	// records[0].Strings() == []string{"a", `b"c`, "d"}
package lenientcsv

import (
	"io"

	"github.com/dmlogic/csv/pkg/linesource"
)

// Parse parses a complete CSV document held in memory, using the default
// comma/double-quote control characters. Blank lines yield no records.
func Parse(input string) ([]Record, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses a complete CSV document with custom control
// characters.
//
// Example:
//
//	opts := lenientcsv.DefaultOptions()
//	opts.Delimiter = ';'
//	records, err := lenientcsv.ParseWithOptions("a;b\n", opts)
func ParseWithOptions(input string, opts Options) ([]Record, error) {
	src := linesource.NewBuffer(input).SetControl(opts.control())
	return ParseSource(src)
}

// ParseReader drains r and parses its contents with the default control
// characters. For sources that must not be read into memory wholesale,
// implement linesource.Source over them and use NewScanner.
func ParseReader(r io.Reader) ([]Record, error) {
	return ParseReaderWithOptions(r, DefaultOptions())
}

// ParseReaderWithOptions drains r and parses its contents with custom
// control characters.
func ParseReaderWithOptions(r io.Reader, opts Options) ([]Record, error) {
	src, err := linesource.NewBufferReader(r)
	if err != nil {
		return nil, err
	}
	src.SetControl(opts.control())
	return ParseSource(src)
}

// ParseSource parses every record from a caller-supplied line source.
// src must satisfy linesource.Source or the call fails with
// ErrInvalidSource before reading any data. I/O failures from the source
// abort the parse and propagate unmodified.
func ParseSource(src any) ([]Record, error) {
	scanner, err := NewScanner(src)
	if err != nil {
		return nil, err
	}
	var records []Record
	for scanner.Scan() {
		records = append(records, scanner.Record())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
