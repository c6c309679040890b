package cliente

import (
	domain "gestor-clientes-api/internal/domain/cliente"
)

// Timestamps saem no formato dia/mês/ano hora:minuto:segundo.
const timestampLayout = "02/01/2006 15:04:05"

func ToResponseCliente(cDomain domain.Cliente) Cliente {
	var c = Cliente{
		ID:           int64(cDomain.ID),
		Nome:         cDomain.Nome,
		Email:        cDomain.Email,
		Telefone:     cDomain.Telefone,
		CPF:          cDomain.CPF,
		Status:       cDomain.Status,
		CriadoEm:     cDomain.CriadoEm.Format(timestampLayout),
		AtualizadoEm: cDomain.AtualizadoEm.Format(timestampLayout),
	}

	return c
}

func ToResponseClientes(csDomain domain.Clientes) Clientes {
	cs := make(Clientes, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseCliente(*c)
	}

	return cs
}

func ToCreateInput(req CreateRequest) domain.CreateInput {
	return domain.CreateInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		CPF:      req.CPF,
		Status:   req.Status,
	}
}

func ToUpdateInput(req UpdateRequest) domain.UpdateInput {
	return domain.UpdateInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Status:   req.Status,
	}
}
