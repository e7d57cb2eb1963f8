package client

import (
	"strings"

	"order_pricing/internal/domain"
)

// Client is immutable; build it with NewClient.
type Client struct {
	name  string
	email string
	tier  string
}

// NewClient checks name, email and tier in that order and fails on the first
// blank one. Values are stored verbatim; trimming is only used for the check.
func NewClient(name, email, tier string) (Client, error) {
	if isBlank(name) {
		return Client{}, domain.NewValidationError("name", "client name must not be blank")
	}
	if isBlank(email) {
		return Client{}, domain.NewValidationError("email", "client email must not be blank")
	}
	if isBlank(tier) {
		return Client{}, domain.NewValidationError("tier", "client tier must not be blank")
	}
	return Client{name: name, email: email, tier: tier}, nil
}

func (c Client) Name() string  { return c.name }
func (c Client) Email() string { return c.email }
func (c Client) Tier() string  { return c.tier }

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
