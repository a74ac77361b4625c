package parser

import (
	"io"
	"strings"
	"testing"

	"github.com/dmlogic/csv/pkg/linesource"
)

// benchDocument builds a synthetic document of rows records, mixing
// plain, quoted, and multi-line fields.
func benchDocument(rows int) string {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString("alpha,beta gamma,\"quoted, field\",\"multi\nline\",\"doubled \"\"q\"\"\",tail\n")
	}
	return b.String()
}

func benchmarkNext(b *testing.B, rows int) {
	doc := benchDocument(rows)
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := New(linesource.NewBuffer(doc))
		for {
			if _, err := p.Next(); err == io.EOF {
				break
			} else if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkNext_100Rows(b *testing.B)   { benchmarkNext(b, 100) }
func BenchmarkNext_10000Rows(b *testing.B) { benchmarkNext(b, 10000) }
