package normalize

import "strconv"

// Raw JSON records arrive as loosely-typed maps because every exporter names
// and types its fields differently. The helpers below resolve the first
// present alias and coerce it.

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func numberField(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// timeField resolves the first alias that yields a usable time signal, in
// epoch milliseconds.
func timeField(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return epochMillis(int64(v))
		case string:
			if ms := ParseTimeMillis(v); ms != 0 {
				return ms
			}
		}
	}
	return 0
}
