package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestor-clientes-api/internal/domain/cliente"
)

func TestValidateID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := ValidateID("42")
		require.NoError(t, err)
		assert.Equal(t, cliente.ID(42), id)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"non numeric", "abc"},
		{"empty", ""},
		{"zero", "0"},
		{"negative", "-7"},
		{"float", "1.5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateID(tt.raw)
			require.Error(t, err)
			assert.EqualError(t, err, "id deve ser um inteiro positivo")
		})
	}
}
