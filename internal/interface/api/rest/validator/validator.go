package validator

import (
	"errors"
	"strconv"

	"gestor-clientes-api/internal/domain/cliente"
)

// ValidateID converte o parâmetro de rota em um id numérico positivo.
func ValidateID(s string) (cliente.ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id deve ser um inteiro positivo")
	}

	return cliente.ID(id), nil
}
