package cliente

type (
	Cliente struct {
		ID           int64  `json:"id"`
		Nome         string `json:"nome"`
		Email        string `json:"email"`
		Telefone     string `json:"telefone"`
		CPF          string `json:"cpf"`
		Status       string `json:"status"`
		CriadoEm     string `json:"criadoEm"`
		AtualizadoEm string `json:"atualizadoEm"`
	}
	Clientes []Cliente
)
