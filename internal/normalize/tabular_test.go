package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bet-ledger/internal/normalize"
)

func TestParseDelimited(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "simple rows",
			text: "a,b,c\nd,e,f",
			want: [][]string{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name: "blank lines are skipped",
			text: "a,b\n\n   \nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "double quotes are stripped",
			text: `"150.00","USD"`,
			want: [][]string{{"150.00", "USD"}},
		},
		{
			name: "fields are trimmed",
			text: " a , b ,c ",
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "GMT date with timezone description survives as one field",
			text: `"Thu Jan 01 2024 00:00:00 GMT+0000 (Coordinated Universal Time)","Thu Jan 01 2024 00:01:00 GMT+0000 (Coordinated Universal Time)",-150.00,USD,ABC123,Successful,0,150.00,note`,
			want: [][]string{{
				"Thu Jan 01 2024 00:00:00 GMT+0000 (Coordinated Universal Time)",
				"Thu Jan 01 2024 00:01:00 GMT+0000 (Coordinated Universal Time)",
				"-150.00", "USD", "ABC123", "Successful", "0", "150.00", "note",
			}},
		},
		{
			name: "line without commas is a single field",
			text: "just one value",
			want: [][]string{{"just one value"}},
		},
		{
			name: "GMT suspension resets per line",
			text: "x GMT+0000 (UTC),next\na,b",
			want: [][]string{{"x GMT+0000 (UTC)", "next"}, {"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.ParseDelimited(tt.text))
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     normalize.Format
	}{
		{"csv extension wins", "deposits.CSV", `{"a":1}`, normalize.FormatCSV},
		{"json extension wins", "bets.json", "a,b,c", normalize.FormatJSON},
		{"commas without braces look delimited", "upload", "a,b,c\nd,e,f", normalize.FormatCSV},
		{"braces look like json", "upload", `[{"a":1},{"b":2}]`, normalize.FormatJSON},
		{"no signal defaults to json", "upload", "hello", normalize.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.DetectFormat(tt.filename, []byte(tt.content)))
		})
	}
}
