package ports

import (
	"context"

	"gestor-clientes-api/internal/domain/cliente"
)

type ClienteService interface {
	CreateCliente(ctx context.Context, input cliente.CreateInput) (*cliente.Cliente, error)
	FindClienteByID(ctx context.Context, id cliente.ID) (*cliente.Cliente, error)
	FindClientes(ctx context.Context, status, nome string) (cliente.Clientes, error)
	UpdateCliente(ctx context.Context, id cliente.ID, input cliente.UpdateInput) (*cliente.Cliente, error)
	DeleteCliente(ctx context.Context, id cliente.ID) error
}
