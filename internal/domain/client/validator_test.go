package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_pricing/internal/domain"
)

func TestEmailValidator_IsValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.org", true},
		{"a@b.c", true},
		{"", false},
		{"plainaddress", false},
		{"user@domain", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user@@example.com", false},
		{"user name@example.com", false},
		{"user@example.", false},
	}

	v := NewEmailValidator()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValid(tt.email))
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(NewEmailValidator())

	ok, err := NewClient("Maria", "maria@example.com", "silver")
	require.NoError(t, err)
	assert.NoError(t, v.Validate(ok))

	bad, err := NewClient("Maria", "maria-at-example", "silver")
	require.NoError(t, err)

	err = v.Validate(bad)
	require.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "invalid email format", ve.Msg)
}

func TestValidator_ZeroClientFailsOnName(t *testing.T) {
	v := NewValidator(NewEmailValidator())

	err := v.Validate(Client{})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}
