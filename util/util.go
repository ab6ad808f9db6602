package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsDigits reports whether s is non-empty and made only of decimal digits.
func IsDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsNumber(s[i]) {
			return false
		}
	}
	return true
}

// IsSignedDigits accepts an optional leading '-' followed by digits.
func IsSignedDigits(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		return IsDigits(s[1:])
	}
	return IsDigits(s)
}
