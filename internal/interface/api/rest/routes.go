package rest

const (
	RouteClientes    = "/clientes"
	RouteCliente     = RouteClientes + "/:id"
	RouteValidateCPF = RouteClientes + "/validate-cpf"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
