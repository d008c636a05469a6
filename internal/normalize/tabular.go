package normalize

import "strings"

// ParseDelimited converts raw delimited text into rows of trimmed fields.
//
// All double quotes are stripped before splitting, which is lossy when a
// quoted field legitimately contains a comma; the exporters this parser
// targets do not produce such fields. Comma splitting is suspended between
// the literal substring "GMT" and the next ')' so that dates like
// "Thu Jan 01 2024 00:00:00 GMT+0000 (Coordinated Universal Time)" survive
// as a single field. The suspension state resets on every line.
func ParseDelimited(text string) [][]string {
	var rows [][]string

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(strings.ReplaceAll(line, `"`, "")))
	}

	return rows
}

func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inGMT := false

	for i := 0; i < len(line); i++ {
		if !inGMT && strings.HasPrefix(line[i:], "GMT") {
			inGMT = true
		}

		c := line[i]
		if c == ',' && !inGMT {
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}

		current.WriteByte(c)
		if inGMT && c == ')' {
			inGMT = false
		}
	}

	if current.Len() > 0 {
		fields = append(fields, strings.TrimSpace(current.String()))
	}

	return fields
}
