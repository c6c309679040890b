package cliente

import "errors"

// ErrClienteNotFound responde 404 na camada HTTP.
var ErrClienteNotFound = errors.New("cliente não encontrado")

// ValidationError cobre toda violação de regra de negócio: formato inválido,
// duplicidade, status desconhecido, cliente já inativo. Responde 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// Sentinelas de duplicidade, compartilhadas entre o pré-cheque do serviço e o
// mapeamento das unique constraints do banco.
var (
	ErrEmailJaCadastrado = NewValidationError("Email já cadastrado")
	ErrCPFJaCadastrado   = NewValidationError("CPF já cadastrado")
)
