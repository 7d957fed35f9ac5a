package directory

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidPhone(phone string) bool {
	return len(phone) >= 1 && len(phone) <= 32
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
