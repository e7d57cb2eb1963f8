package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_pricing/internal/domain"
)

func TestNewClient_Valid(t *testing.T) {
	c, err := NewClient("João Silva", "joao@example.com", "gold")

	require.NoError(t, err)
	assert.Equal(t, "João Silva", c.Name())
	assert.Equal(t, "joao@example.com", c.Email())
	assert.Equal(t, "gold", c.Tier())
}

func TestNewClient_KeepsSurroundingWhitespace(t *testing.T) {
	c, err := NewClient("  Ana ", " ana@example.com", "silver  ")

	require.NoError(t, err)
	assert.Equal(t, "  Ana ", c.Name())
	assert.Equal(t, " ana@example.com", c.Email())
	assert.Equal(t, "silver  ", c.Tier())
}

func TestNewClient_BlankFields(t *testing.T) {
	tests := []struct {
		name      string
		in        [3]string
		wantField string
	}{
		{name: "empty name", in: [3]string{"", "a@b.com", "gold"}, wantField: "name"},
		{name: "whitespace name", in: [3]string{"   ", "a@b.com", "gold"}, wantField: "name"},
		{name: "empty email", in: [3]string{"Ana", "", "gold"}, wantField: "email"},
		{name: "tab email", in: [3]string{"Ana", "\t", "gold"}, wantField: "email"},
		{name: "empty tier", in: [3]string{"Ana", "a@b.com", ""}, wantField: "tier"},
		{name: "name checked before tier", in: [3]string{" ", "a@b.com", " "}, wantField: "name"},
		{name: "email checked before tier", in: [3]string{"Ana", "", ""}, wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.in[0], tt.in[1], tt.in[2])

			require.ErrorIs(t, err, domain.ErrValidation)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
