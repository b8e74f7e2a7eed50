// Package flag converts ISO 3166-1 alpha-2 country codes and country display
// names into flag emoji built from Unicode regional indicator symbols.
//
// Every function here is total: invalid or unknown input yields Fallback.
package flag

import "github.com/baechuer/real-time-ressys/services/destination-service/internal/domain"

// RegionalIndicatorA is REGIONAL INDICATOR SYMBOL LETTER A (U+1F1E6).
const RegionalIndicatorA rune = 0x1F1E6

// Fallback is returned for anything that is not a usable country code.
const Fallback = "🌍"

// FromCode returns the flag glyph for a two-letter code, case-insensitively.
// The length check is on bytes, so multi-byte input always falls back.
func FromCode(code string) string {
	if len(code) != 2 {
		return Fallback
	}
	first, ok1 := indicator(code[0])
	second, ok2 := indicator(code[1])
	if !ok1 || !ok2 {
		return Fallback
	}
	return string([]rune{first, second})
}

func indicator(b byte) (rune, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if b < 'A' || b > 'Z' {
		return 0, false
	}
	return RegionalIndicatorA + rune(b-'A'), true
}

// IsCode reports whether s is exactly two ASCII letters.
func IsCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	_, ok1 := indicator(s[0])
	_, ok2 := indicator(s[1])
	return ok1 && ok2
}

// CodeForCountry resolves a country display name to its uppercase ISO2 code.
// A bare two-letter code is accepted as-is.
func CodeForCountry(name string) (string, bool) {
	key := domain.NormalizeKey(name)
	if key == "" {
		return "", false
	}
	if code, ok := countryCodes[key]; ok {
		return code, true
	}
	if IsCode(key) {
		return string([]byte{key[0] - ('a' - 'A'), key[1] - ('a' - 'A')}), true
	}
	return "", false
}

// ForCountry returns the flag for a country display name, or Fallback on a miss.
func ForCountry(name string) string {
	code, ok := CodeForCountry(name)
	if !ok {
		return Fallback
	}
	return FromCode(code)
}

// ForCity prefers the record's own ISO2 code and falls back to its country name.
func ForCity(c domain.City) (code string, glyph string) {
	if IsCode(c.ISO2) {
		code, _ = CodeForCountry(c.ISO2)
		return code, FromCode(code)
	}
	code, ok := CodeForCountry(c.Country)
	if !ok {
		return "", Fallback
	}
	return code, FromCode(code)
}
