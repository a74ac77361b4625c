package lenientcsv

import "github.com/dmlogic/csv/internal/parser"

// Field is one value of a parsed record: either ordinary text content or
// the blank-line marker. The marker is distinct from an empty string; an
// empty string is a real zero-length field, while the marker means the
// physical line held nothing to parse. Records consisting solely of the
// marker are filtered out before emission, so consumers only observe the
// marker inside multi-field records (for example the input "a,\n" parses
// to a text field "a" followed by a marker field).
type Field struct {
	value string
	blank bool
}

// String returns the field's text content. It is empty for the
// blank-line marker.
func (f Field) String() string {
	return f.value
}

// BlankLine reports whether the field is the blank-line marker.
func (f Field) BlankLine() bool {
	return f.blank
}

// Record is an ordered sequence of fields in source order. Records are
// immutable once assembled; a quoted field spanning several physical
// lines still yields a single record.
type Record []Field

// Strings renders the record as plain strings. Blank-line markers become
// empty strings, so callers that do not care about the distinction can
// work with []string directly.
func (r Record) Strings() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.value
	}
	return out
}

// newRecord converts the parser's internal representation.
func newRecord(raw parser.Record) Record {
	rec := make(Record, len(raw))
	for i, f := range raw {
		rec[i] = Field{value: f.Value, blank: f.Blank}
	}
	return rec
}
