package usecase

// Keyed is any record with a stable dedup identity.
type Keyed interface {
	Key() string
}

// Merge appends incoming records whose keys are not already present.
// First write wins: an incoming record with a known key is dropped and
// counted as a duplicate, never overwriting the stored record. Relative
// order of both sequences is preserved.
func Merge[R Keyed](existing, incoming []R) (merged []R, added, duplicates int) {
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[r.Key()] = true
	}

	merged = existing
	for _, r := range incoming {
		if seen[r.Key()] {
			duplicates++
			continue
		}
		seen[r.Key()] = true
		merged = append(merged, r)
		added++
	}
	return merged, added, duplicates
}
