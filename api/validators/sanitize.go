package validators

import "strings"

// SanitizeString trims surrounding whitespace and caps the result at maxLen
// runes. Inner whitespace is kept as typed. maxLen <= 0 means no cap.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) <= maxLen {
		return trimmed
	}
	return string(runes[:maxLen])
}

// NormalizeList lower-cases and trims values, dropping blanks and duplicates.
// Order of first appearance is kept.
func NormalizeList(values []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, raw := range values {
		v := strings.ToLower(strings.TrimSpace(raw))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
