package client

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailValidator is a syntactic sanity check, not a deliverability check.
type EmailValidator struct{}

func NewEmailValidator() EmailValidator {
	return EmailValidator{}
}

func (EmailValidator) IsValid(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}
