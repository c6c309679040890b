package cliente

type (
	CreateRequest struct {
		Nome     string `json:"nome"`
		Email    string `json:"email"`
		Telefone string `json:"telefone"`
		CPF      string `json:"cpf"`
		Status   string `json:"status"`
	}
	UpdateRequest struct {
		Nome     string `json:"nome"`
		Email    string `json:"email"`
		Telefone string `json:"telefone"`
		Status   string `json:"status"`
	}
)
