package cliente

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	domain "gestor-clientes-api/internal/domain/cliente"
	"gestor-clientes-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchClientes(ctx context.Context) (domain.Clientes, error) {
	return r.fetchList(ctx, SelectClientes)
}

func (r *Repository) FetchClientesByStatus(ctx context.Context, status string) (domain.Clientes, error) {
	return r.fetchList(ctx, SelectClientesByStatus, status)
}

func (r *Repository) FetchClientesByNome(ctx context.Context, nome string) (domain.Clientes, error) {
	return r.fetchList(ctx, SelectClientesByNome, nome)
}

func (r *Repository) FetchClientesByStatusAndNome(ctx context.Context, status, nome string) (domain.Clientes, error) {
	return r.fetchList(ctx, SelectClientesByStatusAndNome, status, nome)
}

func (r *Repository) fetchList(ctx context.Context, query string, args ...any) (domain.Clientes, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Clientes
	for rows.Next() {
		c := new(Cliente)

		if err = rows.Scan(
			&c.ID,
			&c.Nome,
			&c.Email,
			&c.Telefone,
			&c.CPF,
			&c.Status,

			&c.CriadoEm,
			&c.AtualizadoEm,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) FetchClienteByID(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
	return r.fetchOne(ctx, SelectClienteByID, int64(id))
}

func (r *Repository) FetchClienteByEmail(ctx context.Context, email string) (*domain.Cliente, error) {
	return r.fetchOne(ctx, SelectClienteByEmail, email)
}

func (r *Repository) FetchClienteByCPF(ctx context.Context, cpf string) (*domain.Cliente, error) {
	return r.fetchOne(ctx, SelectClienteByCPF, cpf)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*domain.Cliente, error) {
	c := new(Cliente)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.Nome,
		&c.Email,
		&c.Telefone,
		&c.CPF,
		&c.Status,

		&c.CriadoEm,
		&c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) CreateCliente(ctx context.Context, req domain.Cliente) (*domain.Cliente, error) {
	c := new(Cliente)

	err := r.db.QueryRow(
		ctx,
		InsertCliente,
		req.Nome, req.Email, req.Telefone, req.CPF, req.Status,
	).Scan(
		&c.ID,
		&c.Nome,
		&c.Email,
		&c.Telefone,
		&c.CPF,
		&c.Status,

		&c.CriadoEm,
		&c.AtualizadoEm,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, uniqueViolationError(err)
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) UpdateCliente(ctx context.Context, req domain.Cliente) (*domain.Cliente, error) {
	c := new(Cliente)

	err := r.db.QueryRow(ctx, UpdateClienteByID,
		req.Nome, req.Email, req.Telefone, req.Status, int64(req.ID),
	).Scan(
		&c.ID,
		&c.Nome,
		&c.Email,
		&c.Telefone,
		&c.CPF,
		&c.Status,

		&c.CriadoEm,
		&c.AtualizadoEm,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, uniqueViolationError(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) InactivateCliente(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
	c := new(Cliente)
	err := r.db.QueryRow(ctx, InactivateClienteByID, int64(id)).Scan(
		&c.ID,
		&c.Nome,
		&c.Email,
		&c.Telefone,
		&c.CPF,
		&c.Status,

		&c.CriadoEm,
		&c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func uniqueViolationError(err error) error {
	if strings.Contains(postgres.UniqueConstraint(err), "cpf") {
		return domain.ErrCPFJaCadastrado
	}
	return domain.ErrEmailJaCadastrado
}
