package lenientcsv

import "github.com/dmlogic/csv/pkg/linesource"

// Options configures the control characters of a parse started through
// the string and io.Reader entry points. Sources built by hand carry
// their own control; see linesource.Control.
type Options struct {
	// Delimiter is the single byte separating fields. Default: ','
	Delimiter byte

	// Enclosure is the single byte marking a quoted field. Default: '"'
	Enclosure byte

	// Escape is accepted for parity with native CSV readers and is
	// intentionally ignored: this parser exists precisely to work
	// without one. Doubled enclosures are the only quote escape.
	Escape byte
}

// DefaultOptions returns the conventional comma/double-quote configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter: linesource.DefaultDelimiter,
		Enclosure: linesource.DefaultEnclosure,
		Escape:    linesource.DefaultEscape,
	}
}

// Validate checks that the delimiter and enclosure differ from each other
// and that neither is a whitespace or line-break byte.
//
// The parser never calls this: control validation is the caller's
// responsibility, and behavior under a misconfigured control set (for
// example delimiter == enclosure) is unspecified rather than recovered
// from. Callers accepting control characters from user input should
// validate before parsing.
func (o Options) Validate() error {
	if !validControlByte(o.Delimiter) {
		return &OptionsError{Field: "Delimiter", Message: "must be a single non-whitespace byte"}
	}
	if !validControlByte(o.Enclosure) {
		return &OptionsError{Field: "Enclosure", Message: "must be a single non-whitespace byte"}
	}
	if o.Delimiter == o.Enclosure {
		return &OptionsError{Field: "Enclosure", Message: "same as delimiter"}
	}
	return nil
}

// validControlByte reports whether b may serve as delimiter or enclosure.
func validControlByte(b byte) bool {
	switch b {
	case 0, ' ', '\t', '\r', '\n':
		return false
	}
	return true
}

// control converts the options to a source control set.
func (o Options) control() linesource.Control {
	c := linesource.Control{
		Delimiter: o.Delimiter,
		Enclosure: o.Enclosure,
		Escape:    o.Escape,
	}
	if c.Delimiter == 0 {
		c.Delimiter = linesource.DefaultDelimiter
	}
	if c.Enclosure == 0 {
		c.Enclosure = linesource.DefaultEnclosure
	}
	return c
}
