// Package parser reconstructs CSV field and record boundaries from raw
// physical lines, without interpreting an escape character.
//
// The parser pulls verbatim lines from a linesource.Source and walks them
// with a cursor, extracting one field at a time. Each field is parsed by
// one of two strategies, chosen by a one-character lookahead on the
// trimmed cursor: quoted extraction when the first remaining byte is the
// enclosure, unquoted extraction otherwise. Quoted extraction pulls
// additional physical lines when a field spans line breaks.
//
// Malformed quoting never fails: stray bytes after a closing enclosure are
// reparsed as unquoted content, and an enclosure left open at end of
// stream yields whatever was accumulated. The guiding rule is to never
// abort mid-document.
package parser

import (
	"io"
	"strings"

	"github.com/dmlogic/csv/pkg/linesource"
)

// Field is one parsed CSV field: either text content or the blank-line
// marker. The marker is distinct from an empty string: an empty string is
// a legitimate zero-length field, while the marker means the physical line
// had nothing to parse at all.
type Field struct {
	Value string
	Blank bool
}

// textField wraps ordinary content.
func textField(s string) Field {
	return Field{Value: s}
}

// blankField is the blank-line marker.
var blankField = Field{Blank: true}

// Record is an ordered sequence of fields, one per logical column.
type Record []Field

// BlankLine reports whether the record is the single-field blank-line
// marker, i.e. an entirely empty physical line. Such records are filtered
// out before records reach a consumer.
func (r Record) BlankLine() bool {
	return len(r) == 1 && r[0].Blank
}

// fieldKind selects the extraction strategy for the next field.
type fieldKind int

const (
	unquotedField fieldKind = iota
	quotedField
)

// Parser extracts records from a line source. All mutable state (cursor,
// control characters, trim mask) is scoped to one Parser, so concurrent
// parses of distinct sources cannot corrupt each other.
//
// A Parser must not be shared across goroutines.
type Parser struct {
	src       linesource.Source
	delimiter byte
	enclosure byte
	trimMask  string

	// Cursor over the current physical line: the unconsumed suffix, or
	// no more data when hasLine is false.
	line    string
	hasLine bool
}

// New creates a Parser over src. The delimiter and enclosure are read
// from the source's control once; the escape character is ignored. The
// whitespace trim mask is space and tab, minus whichever of the two is a
// control character.
func New(src linesource.Source) *Parser {
	ctrl := src.Control()
	p := &Parser{
		src:       src,
		delimiter: ctrl.Delimiter,
		enclosure: ctrl.Enclosure,
	}
	mask := make([]byte, 0, 2)
	for _, c := range []byte{' ', '\t'} {
		if c != p.delimiter && c != p.enclosure {
			mask = append(mask, c)
		}
	}
	p.trimMask = string(mask)
	return p
}

// Next extracts the next record, spanning as many physical lines as its
// quoted fields require. It returns io.EOF once the source is exhausted
// and propagates source I/O errors unmodified. Blank-line marker records
// are returned as-is; filtering them is the caller's concern.
func (p *Parser) Next() (Record, error) {
	line, err := p.src.ReadLine()
	if err != nil {
		return nil, err
	}
	p.line = line
	p.hasLine = true

	record := make(Record, 0, 8)
	for {
		kind := unquotedField
		if p.hasLine {
			p.line = strings.TrimLeft(p.line, p.trimMask)
			if len(p.line) > 0 && p.line[0] == p.enclosure {
				kind = quotedField
			}
		}

		var field Field
		switch kind {
		case quotedField:
			field, err = p.extractQuoted()
			if err != nil {
				return nil, err
			}
		default:
			field = p.extractUnquoted()
		}
		record = append(record, field)

		if !p.hasLine {
			return record, nil
		}
	}
}

// clearLine sets the cursor to its no-more-data state, ending the record.
func (p *Parser) clearLine() {
	p.line = ""
	p.hasLine = false
}

// lineExhausted reports whether the cursor holds nothing left to parse:
// no more data, an empty string, or a bare line-break sequence.
func (p *Parser) lineExhausted() bool {
	if !p.hasLine {
		return true
	}
	switch p.line {
	case "", "\r\n", "\n", "\r":
		return true
	}
	return false
}

// trimBreak strips trailing line-break bytes. Only \r and \n are removed;
// trailing spaces and tabs survive.
func trimBreak(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// extractUnquoted parses one field that does not start with the
// enclosure. A cursor holding nothing at all produces the blank-line
// marker. Content up to the first delimiter is returned verbatim; when no
// delimiter remains the field closes the record and sheds its trailing
// line-break bytes.
func (p *Parser) extractUnquoted() Field {
	if p.lineExhausted() {
		p.clearLine()
		return blankField
	}

	if i := strings.IndexByte(p.line, p.delimiter); i >= 0 {
		content := p.line[:i]
		p.line = p.line[i+1:]
		return textField(content)
	}

	content := trimBreak(p.line)
	p.clearLine()
	return textField(content)
}

// extractQuoted parses one enclosed field, starting at (or just after)
// its opening enclosure. Content accumulates chunk by chunk up to each
// enclosure occurrence; a line with no enclosure left means the field
// spans into the next physical line, which is fetched from the source.
//
// The byte immediately after a closing enclosure decides what follows:
// nothing or a bare line break ends the record, the delimiter ends the
// field, a second enclosure is a doubled-quote escape collapsing to one
// literal enclosure byte, and anything else is malformed input that is
// leniently reparsed as unquoted content. The doubled-quote case loops
// instead of recursing so adversarial input cannot grow the stack.
func (p *Parser) extractQuoted() (Field, error) {
	if p.hasLine && len(p.line) > 0 && p.line[0] == p.enclosure {
		p.line = p.line[1:]
	}

	var content strings.Builder
	for p.hasLine {
		i := strings.IndexByte(p.line, p.enclosure)
		if i < 0 {
			content.WriteString(p.line)
			line, err := p.src.ReadLine()
			if err == io.EOF {
				// Enclosure never closed: keep what we have.
				p.clearLine()
				return textField(content.String()), nil
			}
			if err != nil {
				return Field{}, err
			}
			p.line = line
			continue
		}

		content.WriteString(p.line[:i])
		p.line = p.line[i+1:]

		switch {
		case p.lineExhausted():
			p.clearLine()
			return textField(trimBreak(content.String())), nil
		case p.line[0] == p.delimiter:
			p.line = p.line[1:]
			return textField(content.String()), nil
		case p.line[0] == p.enclosure:
			// Doubled enclosure: one literal enclosure byte, keep going.
			content.WriteByte(p.enclosure)
			p.line = p.line[1:]
		default:
			// Stray bytes after the closing enclosure: lenient fallback.
			rest := p.extractUnquoted()
			return textField(content.String() + rest.Value), nil
		}
	}
	return textField(content.String()), nil
}
