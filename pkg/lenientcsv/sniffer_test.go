package lenientcsv

import "testing"

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   byte
	}{
		{
			name:   "comma separated",
			sample: "name,age,city\nAlice,30,Berlin\nBob,25,Lyon\n",
			want:   ',',
		},
		{
			name:   "semicolon separated",
			sample: "name;age\nAlice;30\nBob;25\n",
			want:   ';',
		},
		{
			name:   "tab separated",
			sample: "name\tage\nAlice\t30\n",
			want:   '\t',
		},
		{
			name:   "pipe separated",
			sample: "a|b|c\nd|e|f\n",
			want:   '|',
		},
		{
			name:   "enclosed delimiters do not count",
			sample: "\"a;b;c\",d\n\"e;f;g\",h\n",
			want:   ',',
		},
		{
			name:   "consistency beats raw count",
			sample: "a;b;c;d,x\ne,f\ng,h\n",
			want:   ',',
		},
		{
			name:   "empty sample falls back to comma",
			sample: "",
			want:   ',',
		},
		{
			name:   "no candidate present",
			sample: "one\ntwo\n",
			want:   ',',
		},
		{
			name:   "crlf lines",
			sample: "a;b\r\nc;d\r\n",
			want:   ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDelimiter(tt.sample, '"'); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
