package session

import (
	"strings"
)

// AppendUnique adds a trimmed value to an array field, suppressing
// duplicates: adding an already-present value returns the sequence
// unchanged.
func AppendUnique(values []string, value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return values
	}
	for _, existing := range values {
		if existing == trimmed {
			return values
		}
	}
	return append(values, trimmed)
}

// MergePasted splits a pasted comma-separated string into trimmed, non-empty
// entries, deduplicates them against the existing values and against each
// other, and appends the survivors as one batch.
func MergePasted(values []string, pasted string) []string {
	seen := make(map[string]bool, len(values))
	for _, existing := range values {
		seen[existing] = true
	}

	for _, part := range strings.Split(pasted, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		values = append(values, trimmed)
	}
	return values
}
