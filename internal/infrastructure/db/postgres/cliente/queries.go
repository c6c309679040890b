package cliente

// A tabela carrega unique constraints cliente_email_key e cliente_cpf_key;
// criado_em e atualizado_em têm DEFAULT now(). As constraints do banco são o
// ponto final de garantia de unicidade, não o pré-cheque do serviço.
const (
	SelectClientes = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		ORDER BY id ASC
	`
	SelectClientesByStatus = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE status = $1
		ORDER BY id ASC
	`
	SelectClientesByNome = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE nome ILIKE '%' || $1 || '%'
		ORDER BY id ASC
	`
	SelectClientesByStatusAndNome = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE status = $1 AND nome ILIKE '%' || $2 || '%'
		ORDER BY id ASC
	`
	SelectClienteByID = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE id = $1
	`
	SelectClienteByEmail = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE email = $1
	`
	SelectClienteByCPF = `
		SELECT id, nome, email, telefone, cpf, status, criado_em, atualizado_em
		FROM cliente
		WHERE cpf = $1
	`
	InsertCliente = `
		INSERT INTO cliente (nome, email, telefone, cpf, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, nome, email, telefone, cpf, status, criado_em, atualizado_em
	`
	UpdateClienteByID = `
		UPDATE cliente
		SET nome = $1,
		    email = $2,
		    telefone = $3,
		    status = $4,
		    atualizado_em = now()
		WHERE id = $5
		RETURNING
		  id, nome, email, telefone, cpf, status, criado_em, atualizado_em
	`
	InactivateClienteByID = `
		UPDATE cliente
		SET status = 'INATIVO',
		    atualizado_em = now()
		WHERE id = $1
		RETURNING
		  id, nome, email, telefone, cpf, status, criado_em, atualizado_em
	`
)
