package validate

// Password reports whether a password meets the signup policy: at least 8
// characters, with at least one lowercase letter, one uppercase letter, one
// digit and one symbol from @$!%*?&, and nothing outside those classes.
func Password(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case c == '@' || c == '$' || c == '!' || c == '%' || c == '*' || c == '?' || c == '&':
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
