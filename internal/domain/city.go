package domain

import "strings"

// City is one catalog record. Name is the ASCII display form of the city.
type City struct {
	Name    string `json:"city_ascii"`
	Country string `json:"country"`
	// ISO2 is optional; when empty it is resolved from Country.
	ISO2 string `json:"iso2,omitempty"`
}

// FoldQuery lowercases s for prefix comparison.
// No trimming and no locale rules: "  par" does not match "Paris".
func FoldQuery(s string) string {
	return strings.ToLower(s)
}

// NormalizeKey converts lookup input to its table key form.
// Examples: "France" -> "france", "  United Kingdom " -> "united kingdom"
func NormalizeKey(input string) string {
	normalized := strings.TrimSpace(input)
	normalized = strings.ToLower(normalized)
	return normalized
}
