package convert

import "strings"

// NormalizeName converts a vendor database name such as "HOLY_FRUS" into the
// display form "Holy Frus".
//
// Postcondition: empty input yields "".
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

// positive converts any int to its absolute value.
func positive(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// hardFallback is the last-resort stat value when both the vendor value and
// the per-field fallback are unusable.
const hardFallback = 350

// valueFallback returns the first non-zero of |value|, |fallback|, and the
// hard default. rAthena rejects zero values for most stat fields, so every
// numeric stat goes through this chain.
func valueFallback(value, fallback int) int {
	if p := positive(value); p > 0 {
		return p
	}
	if p := positive(fallback); p > 0 {
		return p
	}
	return hardFallback
}
