package normalize

import "strings"

// Format identifies the structure of an uploaded file.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
)

// DetectFormat classifies raw upload content as delimited text or JSON.
// The extension wins when present; otherwise content that contains commas
// but no JSON object marker is treated as delimited. Mirrors the exporters'
// own loose conventions rather than a strict MIME check.
func DetectFormat(filename string, content []byte) Format {
	name := strings.ToLower(filename)
	if strings.HasSuffix(name, ".csv") {
		return FormatCSV
	}
	if strings.HasSuffix(name, ".json") {
		return FormatJSON
	}

	text := string(content)
	if strings.Contains(text, ",") && !strings.Contains(text, "{") {
		return FormatCSV
	}
	return FormatJSON
}
