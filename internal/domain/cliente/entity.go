package cliente

import (
	"strings"
	"time"
)

// Valores válidos de status. INATIVO marca a exclusão lógica: o registro
// nunca é removido fisicamente.
const (
	StatusAtivo    = "ATIVO"
	StatusInativo  = "INATIVO"
	StatusProspect = "PROSPECT"
)

type (
	ID      int64
	Cliente struct {
		ID       ID
		Nome     string
		Email    string
		Telefone string
		CPF      string
		Status   string

		CriadoEm     time.Time
		AtualizadoEm time.Time
	}
	Clientes []*Cliente

	CreateInput struct {
		Nome     string
		Email    string
		Telefone string
		CPF      string
		Status   string
	}
	// UpdateInput não carrega CPF: o campo é imutável após a criação.
	UpdateInput struct {
		Nome     string
		Email    string
		Telefone string
		Status   string
	}
)

func IsValidStatus(status string) bool {
	switch strings.ToUpper(status) {
	case StatusAtivo, StatusInativo, StatusProspect:
		return true
	}
	return false
}
