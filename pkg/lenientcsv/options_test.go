package lenientcsv

import (
	"errors"
	"testing"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Options)
		wantField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(o *Options) {},
		},
		{
			name:   "semicolon and single quote",
			mutate: func(o *Options) { o.Delimiter = ';'; o.Enclosure = '\'' },
		},
		{
			name:      "zero delimiter",
			mutate:    func(o *Options) { o.Delimiter = 0 },
			wantField: "Delimiter",
		},
		{
			name:      "whitespace delimiter",
			mutate:    func(o *Options) { o.Delimiter = ' ' },
			wantField: "Delimiter",
		},
		{
			name:      "line break enclosure",
			mutate:    func(o *Options) { o.Enclosure = '\n' },
			wantField: "Enclosure",
		},
		{
			name:      "delimiter equals enclosure",
			mutate:    func(o *Options) { o.Enclosure = ',' },
			wantField: "Enclosure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var optErr *OptionsError
			if !errors.As(err, &optErr) {
				t.Fatalf("expected *OptionsError, got %v", err)
			}
			if optErr.Field != tt.wantField {
				t.Errorf("field: got %q, want %q", optErr.Field, tt.wantField)
			}
		})
	}
}

func TestOptions_ZeroValueUsesDefaults(t *testing.T) {
	// A zero Options still parses with comma and double quote; Validate
	// is opt-in and never called by the parser.
	records, err := ParseWithOptions("a,\"b,c\"\n", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || len(records[0]) != 2 {
		t.Fatalf("unexpected shape: %v", records)
	}
	if got := records[0].Strings()[1]; got != "b,c" {
		t.Errorf("field 1: got %q, want %q", got, "b,c")
	}
}
