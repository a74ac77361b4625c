//go:build go1.18
// +build go1.18

package parser

import (
	"io"
	"testing"

	"github.com/dmlogic/csv/pkg/linesource"
)

// FuzzNext drives the parser with arbitrary inputs. The lenient design
// promise is that no input panics and no input fails: every document
// parses to completion with io.EOF as the only terminal condition.
// Run with: go test -fuzz=FuzzNext -fuzztime=30s ./internal/parser
func FuzzNext(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c",
		"a,b,c\n",
		"a,b\nc,d",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\nline\"",
		"\"unterminated",
		"\"a\"junk,b",
		" a , b \n",
		"\r\n",
		"a\r\nb",
		",,",
		"\"\"",
		"\"\"\"\"",
		"a,\"b,c\",d",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p := New(linesource.NewBuffer(input))
		for {
			record, err := p.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				t.Fatalf("lenient parse failed on %q: %v", input, err)
			}
			if len(record) == 0 {
				t.Fatalf("empty record on %q", input)
			}
		}
	})
}
