package tools

// ValidNPSN reports whether s is a well-formed NPSN: exactly 8 ASCII digits.
func ValidNPSN(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
