package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestor-clientes-api/internal/application/ports"
	"gestor-clientes-api/internal/application/services"
	domain "gestor-clientes-api/internal/domain/cliente"
	"gestor-clientes-api/internal/interface/api/rest/dto/cliente"
	"gestor-clientes-api/internal/interface/api/rest/validator"
)

type ClienteController struct {
	clienteService ports.ClienteService
	logger         *zap.Logger
}

func NewClienteController(
	r *gin.Engine,
	clienteService ports.ClienteService,
	logger *zap.Logger,
) *ClienteController {
	cc := &ClienteController{
		clienteService: clienteService,
		logger:         logger,
	}

	r.POST(RouteClientes, cc.CreateClienteHandler)
	r.GET(RouteClientes, cc.GetClientesHandler)
	r.GET(RouteValidateCPF, cc.ValidateCPFHandler)
	r.GET(RouteCliente, cc.GetClienteHandler)
	r.PUT(RouteCliente, cc.UpdateClienteHandler)
	r.DELETE(RouteCliente, cc.DeleteClienteHandler)

	return cc
}

func (cc *ClienteController) CreateClienteHandler(c *gin.Context) {
	var req cliente.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "corpo da requisição inválido",
			"details": err.Error(),
		})
		return
	}

	created, err := cc.clienteService.CreateCliente(c.Request.Context(), cliente.ToCreateInput(req))
	if err != nil {
		cc.respondServiceError(c, "CreateCliente() error", err)
		return
	}

	c.JSON(http.StatusCreated, cliente.ToResponseCliente(*created))
}

func (cc *ClienteController) GetClienteHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	found, err := cc.clienteService.FindClienteByID(c.Request.Context(), id)
	if err != nil {
		cc.respondServiceError(c, "FindClienteByID() error", err)
		return
	}

	c.JSON(http.StatusOK, cliente.ToResponseCliente(*found))
}

func (cc *ClienteController) GetClientesHandler(c *gin.Context) {
	clientes, err := cc.clienteService.FindClientes(
		c.Request.Context(),
		c.Query("status"),
		c.Query("nome"),
	)
	if err != nil {
		cc.respondServiceError(c, "FindClientes() error", err)
		return
	}

	c.JSON(http.StatusOK, cliente.ToResponseClientes(clientes))
}

func (cc *ClienteController) UpdateClienteHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	var req cliente.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "corpo da requisição inválido",
			"details": err.Error(),
		})
		return
	}

	updated, err := cc.clienteService.UpdateCliente(c.Request.Context(), id, cliente.ToUpdateInput(req))
	if err != nil {
		cc.respondServiceError(c, "UpdateCliente() error", err)
		return
	}

	c.JSON(http.StatusOK, cliente.ToResponseCliente(*updated))
}

func (cc *ClienteController) DeleteClienteHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	if err = cc.clienteService.DeleteCliente(c.Request.Context(), id); err != nil {
		cc.respondServiceError(c, "DeleteCliente() error", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *ClienteController) ValidateCPFHandler(c *gin.Context) {
	cpf := c.Query("cpf")
	if strings.TrimSpace(cpf) == "" {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "cpf é obrigatório"},
		)
		return
	}

	if services.IsCPFValid(cpf) {
		c.String(http.StatusOK, "Válido")
		return
	}
	c.String(http.StatusOK, "Inválido")
}

// respondServiceError é o único ponto de tradução de erro de domínio para
// status HTTP: não encontrado vira 404, violação de regra de negócio vira 400
// e o resto vira 500 com log.
func (cc *ClienteController) respondServiceError(c *gin.Context, op string, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrClienteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "falha ao processar a requisição"},
		)
		cc.logger.Error(op, zap.Error(err))
	}
}
