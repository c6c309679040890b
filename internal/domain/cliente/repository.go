package cliente

import (
	"context"
)

// Repository é o contrato de persistência exigido pelo serviço.
// As buscas pontuais retornam (nil, nil) quando não há registro.
// Todas as listagens retornam em ordem crescente de id.
type Repository interface {
	FetchClienteByID(ctx context.Context, id ID) (*Cliente, error)
	FetchClienteByEmail(ctx context.Context, email string) (*Cliente, error)
	FetchClienteByCPF(ctx context.Context, cpf string) (*Cliente, error)
	FetchClientes(ctx context.Context) (Clientes, error)
	FetchClientesByStatus(ctx context.Context, status string) (Clientes, error)
	FetchClientesByNome(ctx context.Context, nome string) (Clientes, error)
	FetchClientesByStatusAndNome(ctx context.Context, status, nome string) (Clientes, error)
	CreateCliente(ctx context.Context, req Cliente) (*Cliente, error)
	UpdateCliente(ctx context.Context, req Cliente) (*Cliente, error)
	InactivateCliente(ctx context.Context, id ID) (*Cliente, error)
}
