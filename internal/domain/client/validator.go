package client

import "order_pricing/internal/domain"

// EmailChecker reports whether an address is well formed.
type EmailChecker interface {
	IsValid(email string) bool
}

// Validator applies the registration rules on top of entity construction.
type Validator struct {
	emails EmailChecker
}

func NewValidator(emails EmailChecker) *Validator {
	return &Validator{emails: emails}
}

func (v *Validator) Validate(c Client) error {
	if isBlank(c.name) {
		return domain.NewValidationError("name", "client name must not be blank")
	}
	if isBlank(c.email) {
		return domain.NewValidationError("email", "client email must not be blank")
	}
	if !v.emails.IsValid(c.email) {
		return domain.NewValidationError("email", "invalid email format")
	}
	if isBlank(c.tier) {
		return domain.NewValidationError("tier", "client tier must not be blank")
	}
	return nil
}
