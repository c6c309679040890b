package cliente

import (
	domain "gestor-clientes-api/internal/domain/cliente"
)

func fromDBModel(model *Cliente) *domain.Cliente {
	var c = &domain.Cliente{
		ID:       domain.ID(model.ID),
		Nome:     model.Nome,
		Email:    model.Email,
		Telefone: model.Telefone,
		CPF:      model.CPF,
		Status:   model.Status,

		CriadoEm:     model.CriadoEm,
		AtualizadoEm: model.AtualizadoEm,
	}

	return c
}

func fromDBModels(models *Clientes) domain.Clientes {
	cs := make(domain.Clientes, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
