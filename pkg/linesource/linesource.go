// Package linesource defines the line source capability consumed by the
// lenient CSV parser, plus ready-made sources for strings, byte slices,
// io.Readers, and files.
//
// A Source hands out raw physical lines exactly as they appear in the
// underlying data, including trailing line-break bytes. It performs no CSV
// interpretation of its own: field and record boundaries are reconstructed
// entirely by the parser. End of stream is signalled by io.EOF from
// ReadLine, never by a sentinel line value, so an empty physical line is
// always distinguishable from exhaustion.
package linesource

// Default CSV control characters.
const (
	DefaultDelimiter = ','
	DefaultEnclosure = '"'
	DefaultEscape    = '\\'
)

// Control carries the CSV control characters of a source.
//
// The parser requires Delimiter != Enclosure and that neither is a space,
// tab, or line-break byte. Sources do not enforce this; validating a
// caller-supplied control set is the caller's job (see lenientcsv.Options).
// Escape is carried for interface parity with native CSV readers but is
// never interpreted by the parser.
type Control struct {
	Delimiter byte
	Enclosure byte
	Escape    byte
}

// DefaultControl returns the conventional comma/double-quote control set.
func DefaultControl() Control {
	return Control{
		Delimiter: DefaultDelimiter,
		Enclosure: DefaultEnclosure,
		Escape:    DefaultEscape,
	}
}

// Source is the capability a value must provide to be parsed.
//
// ReadLine returns the next physical line verbatim, including its trailing
// line-break bytes if present. At end of stream it returns ("", io.EOF);
// a final line without a trailing break is returned with a nil error and
// io.EOF follows on the next call. Any other error is an I/O failure and
// is propagated to the parser's caller unmodified.
//
// ResetMode disables any native record-splitting or auto-iteration mode
// the source may have enabled, giving the parser exclusive control over
// line consumption. Sources with no such mode implement it as a no-op.
type Source interface {
	Control() Control
	ReadLine() (string, error)
	Rewind() error
	ResetMode()
}
