package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gestor-clientes-api/internal/application/ports"
	domain "gestor-clientes-api/internal/domain/cliente"
	"gestor-clientes-api/internal/interface/api/rest/dto/cliente"
)

type FakeClienteService struct {
	CreateClienteFunc   func(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error)
	FindClienteByIDFunc func(ctx context.Context, id domain.ID) (*domain.Cliente, error)
	FindClientesFunc    func(ctx context.Context, status, nome string) (domain.Clientes, error)
	UpdateClienteFunc   func(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error)
	DeleteClienteFunc   func(ctx context.Context, id domain.ID) error
}

func (f *FakeClienteService) CreateCliente(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
	if f.CreateClienteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateClienteFunc(ctx, input)
}
func (f *FakeClienteService) FindClienteByID(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
	if f.FindClienteByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindClienteByIDFunc(ctx, id)
}
func (f *FakeClienteService) FindClientes(ctx context.Context, status, nome string) (domain.Clientes, error) {
	if f.FindClientesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindClientesFunc(ctx, status, nome)
}
func (f *FakeClienteService) UpdateCliente(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error) {
	if f.UpdateClienteFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateClienteFunc(ctx, id, input)
}
func (f *FakeClienteService) DeleteCliente(ctx context.Context, id domain.ID) error {
	if f.DeleteClienteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteClienteFunc(ctx, id)
}

func setupRouter(t *testing.T, cs ports.ClienteService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewClienteController(r, cs, zap.NewNop())

	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validCreateRequest() cliente.CreateRequest {
	return cliente.CreateRequest{
		Nome:     "Maria Silva",
		Email:    "maria@teste.com",
		Telefone: "+55 (11) 98889-7789",
		CPF:      "111.444.777-35",
		Status:   "ATIVO",
	}
}

func someDomainCliente() *domain.Cliente {
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return &domain.Cliente{
		ID:           1,
		Nome:         "Maria Silva",
		Email:        "maria@teste.com",
		Telefone:     "+55 (11) 98889-7789",
		CPF:          "111.444.777-35",
		Status:       domain.StatusAtivo,
		CriadoEm:     created,
		AtualizadoEm: created,
	}
}

func TestClienteController_CreateClienteHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockCS     func() ports.ClienteService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 on malformed body",
			body:       `{"nome":`,
			mockCS:     func() ports.ClienteService { return &FakeClienteService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "400 on validation error",
			body: validCreateRequest(),
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					CreateClienteFunc: func(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
						return nil, domain.ErrCPFJaCadastrado
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    "CPF já cadastrado",
		},
		{
			name: "500 when service fails",
			body: validCreateRequest(),
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					CreateClienteFunc: func(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "falha ao processar a requisição",
		},
		{
			name: "201 success",
			body: validCreateRequest(),
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					CreateClienteFunc: func(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
						return someDomainCliente(), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS())

			rr := doReq(t, r, http.MethodPost, "/clientes", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErr != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantErr, resp["error"])
			}
		})
	}
}

func TestClienteController_CreateClienteHandler_ResponseShape(t *testing.T) {
	r := setupRouter(t, &FakeClienteService{
		CreateClienteFunc: func(ctx context.Context, input domain.CreateInput) (*domain.Cliente, error) {
			return someDomainCliente(), nil
		},
	})

	rr := doReq(t, r, http.MethodPost, "/clientes", validCreateRequest())
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp cliente.Cliente
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ATIVO", resp.Status)
	assert.Equal(t, "111.444.777-35", resp.CPF)
	assert.Equal(t, "15/01/2025 10:30:00", resp.CriadoEm)
	assert.Equal(t, "15/01/2025 10:30:00", resp.AtualizadoEm)
}

func TestClienteController_GetClienteHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockCS     func() ports.ClienteService
		wantStatus int
	}{
		{
			name:       "400 on non numeric id",
			path:       "/clientes/abc",
			mockCS:     func() ports.ClienteService { return &FakeClienteService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "404 when absent",
			path: "/clientes/99",
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					FindClienteByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
						return nil, domain.ErrClienteNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "200 success",
			path: "/clientes/1",
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					FindClienteByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Cliente, error) {
						return someDomainCliente(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS())

			rr := doReq(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestClienteController_GetClientesHandler(t *testing.T) {
	t.Run("200 with filters forwarded", func(t *testing.T) {
		var gotStatus, gotNome string
		r := setupRouter(t, &FakeClienteService{
			FindClientesFunc: func(ctx context.Context, status, nome string) (domain.Clientes, error) {
				gotStatus, gotNome = status, nome
				return domain.Clientes{someDomainCliente()}, nil
			},
		})

		rr := doReq(t, r, http.MethodGet, "/clientes?status=ATIVO&nome=maria", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ATIVO", gotStatus)
		assert.Equal(t, "maria", gotNome)

		var resp cliente.Clientes
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Maria Silva", resp[0].Nome)
	})

	t.Run("200 empty list is a JSON array", func(t *testing.T) {
		r := setupRouter(t, &FakeClienteService{
			FindClientesFunc: func(ctx context.Context, status, nome string) (domain.Clientes, error) {
				return domain.Clientes{}, nil
			},
		})

		rr := doReq(t, r, http.MethodGet, "/clientes", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", rr.Body.String())
	})

	t.Run("500 when service fails", func(t *testing.T) {
		r := setupRouter(t, &FakeClienteService{
			FindClientesFunc: func(ctx context.Context, status, nome string) (domain.Clientes, error) {
				return nil, errors.New("db error")
			},
		})

		rr := doReq(t, r, http.MethodGet, "/clientes", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestClienteController_UpdateClienteHandler(t *testing.T) {
	validBody := cliente.UpdateRequest{
		Nome:   "Maria Souza",
		Email:  "maria@teste.com",
		Status: "PROSPECT",
	}

	tests := []struct {
		name       string
		path       string
		body       any
		mockCS     func() ports.ClienteService
		wantStatus int
	}{
		{
			name:       "400 on non numeric id",
			path:       "/clientes/abc",
			body:       validBody,
			mockCS:     func() ports.ClienteService { return &FakeClienteService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "404 when absent",
			path: "/clientes/99",
			body: validBody,
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					UpdateClienteFunc: func(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error) {
						return nil, domain.ErrClienteNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "400 on validation error",
			path: "/clientes/1",
			body: validBody,
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					UpdateClienteFunc: func(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error) {
						return nil, domain.ErrEmailJaCadastrado
					},
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "200 success",
			path: "/clientes/1",
			body: validBody,
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					UpdateClienteFunc: func(ctx context.Context, id domain.ID, input domain.UpdateInput) (*domain.Cliente, error) {
						c := someDomainCliente()
						c.Nome = input.Nome
						return c, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS())

			rr := doReq(t, r, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestClienteController_DeleteClienteHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		mockCS     func() ports.ClienteService
		wantStatus int
	}{
		{
			name:       "400 on non numeric id",
			path:       "/clientes/abc",
			mockCS:     func() ports.ClienteService { return &FakeClienteService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "404 when absent",
			path: "/clientes/99",
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					DeleteClienteFunc: func(ctx context.Context, id domain.ID) error {
						return domain.ErrClienteNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "400 when already inactive",
			path: "/clientes/1",
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					DeleteClienteFunc: func(ctx context.Context, id domain.ID) error {
						return domain.NewValidationError("Cliente já está inativo")
					},
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "204 success",
			path: "/clientes/1",
			mockCS: func() ports.ClienteService {
				return &FakeClienteService{
					DeleteClienteFunc: func(ctx context.Context, id domain.ID) error {
						return nil
					},
				}
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.mockCS())

			rr := doReq(t, r, http.MethodDelete, tt.path, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestClienteController_ValidateCPFHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"400 on blank cpf", "/clientes/validate-cpf", http.StatusBadRequest, ""},
		{"valid cpf", "/clientes/validate-cpf?cpf=111.444.777-35", http.StatusOK, "Válido"},
		{"invalid cpf", "/clientes/validate-cpf?cpf=11111111111", http.StatusOK, "Inválido"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, &FakeClienteService{})

			rr := doReq(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}
