package cliente

import (
	"time"
)

type (
	Cliente struct {
		ID       int64
		Nome     string
		Email    string
		Telefone string
		CPF      string
		Status   string

		CriadoEm     time.Time
		AtualizadoEm time.Time
	}
	Clientes []*Cliente
)
