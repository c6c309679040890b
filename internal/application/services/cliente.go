package services

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"gestor-clientes-api/internal/application/ports"
	domain "gestor-clientes-api/internal/domain/cliente"
	"gestor-clientes-api/internal/infrastructure/mq"
	clienteDTO "gestor-clientes-api/internal/interface/api/rest/dto/cliente"
)

type ClienteService struct {
	clienteRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewClienteService(
	clienteRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ClienteService {
	return &ClienteService{
		clienteRepository: clienteRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (cs *ClienteService) CreateCliente(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
	if utf8.RuneCountInString(strings.TrimSpace(input.Nome)) < 3 {
		return nil, domain.NewValidationError("O nome deve ter pelo menos 3 caracteres")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domain.NewValidationError("Email é obrigatório")
	}
	if !isEmailValid(input.Email) {
		return nil, domain.NewValidationError("Email inválido")
	}
	if !IsCPFValid(input.CPF) {
		return nil, domain.NewValidationError("CPF inválido")
	}
	existing, err := cs.clienteRepository.FetchClienteByCPF(ctx, input.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCPFJaCadastrado
	}
	existing, err = cs.clienteRepository.FetchClienteByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	if !IsTelefoneValid(input.Telefone) {
		return nil, domain.NewValidationError("Telefone inválido")
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = domain.StatusAtivo
	}
	if !domain.IsValidStatus(status) {
		return nil, domain.NewValidationError("Status inválido")
	}

	// O pré-cheque acima é rejeição antecipada; quem garante a unicidade
	// contra inserções concorrentes são as constraints do banco.
	c, err := cs.clienteRepository.CreateCliente(ctx, domain.Cliente{
		Nome:     input.Nome,
		Email:    input.Email,
		Telefone: input.Telefone,
		CPF:      input.CPF,
		Status:   strings.ToUpper(status),
	})
	if err != nil {
		return nil, err
	}

	cs.publishEvent(http.MethodPost, c)
	cs.mCounter.WithLabelValues("cliente_created_total").Inc()

	return c, nil
}

func (cs *ClienteService) FindClienteByID(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
	c, err := cs.clienteRepository.FetchClienteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrClienteNotFound
	}

	return c, nil
}

// FindClientes lista em ordem crescente de id. O filtro de status é comparado
// sem distinção de caixa; o de nome busca substring, também sem distinção.
// Um status desconhecido não é erro aqui: apenas resulta em lista vazia.
func (cs *ClienteService) FindClientes(ctx context.Context, status, nome string) (domain.Clientes, error) {
	switch {
	case status != "" && nome != "":
		return cs.clienteRepository.FetchClientesByStatusAndNome(ctx, strings.ToUpper(status), nome)
	case status != "":
		return cs.clienteRepository.FetchClientesByStatus(ctx, strings.ToUpper(status))
	case nome != "":
		return cs.clienteRepository.FetchClientesByNome(ctx, nome)
	default:
		return cs.clienteRepository.FetchClientes(ctx)
	}
}

func (cs *ClienteService) UpdateCliente(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error) {
	current, err := cs.clienteRepository.FetchClienteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrClienteNotFound
	}

	if utf8.RuneCountInString(strings.TrimSpace(input.Nome)) < 3 {
		return nil, domain.NewValidationError("O nome deve ter pelo menos 3 caracteres")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, domain.NewValidationError("Email é obrigatório")
	}
	if !isEmailValid(input.Email) {
		return nil, domain.NewValidationError("Email inválido")
	}
	if current.Email != input.Email {
		existing, err := cs.clienteRepository.FetchClienteByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailJaCadastrado
		}
	}
	if !IsTelefoneValid(input.Telefone) {
		return nil, domain.NewValidationError("Telefone inválido")
	}
	if !domain.IsValidStatus(input.Status) {
		return nil, domain.NewValidationError("Status inválido")
	}

	// CPF e criado_em nunca são tocados pela atualização.
	c, err := cs.clienteRepository.UpdateCliente(ctx, domain.Cliente{
		ID:       id,
		Nome:     input.Nome,
		Email:    input.Email,
		Telefone: input.Telefone,
		Status:   strings.ToUpper(input.Status),
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrClienteNotFound
	}

	cs.publishEvent(http.MethodPut, c)
	cs.mCounter.WithLabelValues("cliente_updated_total").Inc()

	return c, nil
}

// DeleteCliente é exclusão lógica: o registro vira INATIVO e segue
// recuperável pelas buscas.
func (cs *ClienteService) DeleteCliente(ctx context.Context, id domain.ID) error {
	current, err := cs.clienteRepository.FetchClienteByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrClienteNotFound
	}
	if strings.EqualFold(current.Status, domain.StatusInativo) {
		return domain.NewValidationError("Cliente já está inativo")
	}

	c, err := cs.clienteRepository.InactivateCliente(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrClienteNotFound
	}

	cs.publishEvent(http.MethodDelete, c)
	cs.mCounter.WithLabelValues("cliente_inactivated_total").Inc()

	return nil
}

func (cs *ClienteService) publishEvent(method string, c *domain.Cliente) {
	if c == nil {
		return
	}
	cs.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Method:    method,
		ClienteID: strconv.FormatInt(int64(c.ID), 10),
		Payload:   clienteDTO.ToResponseCliente(*c),
	}
}
