// Package lenientcsv provides error types for the lenient CSV parser.
package lenientcsv

import "errors"

// Sentinel errors.
var (
	// ErrInvalidSource is returned when a value handed to ParseSource or
	// NewScanner does not provide the line source capability. It is
	// raised before any line is read; no partial output is produced.
	ErrInvalidSource = errors.New("lenientcsv: source does not implement linesource.Source")
)

// OptionsError reports an invalid control-character configuration.
// It is only produced by Options.Validate; the parser itself never
// validates controls (see Options).
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "lenientcsv: invalid " + e.Field + ": " + e.Message
}
