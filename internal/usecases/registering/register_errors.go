package registering

import (
	"errors"
	"fmt"
)

// Erros de validação do cadastro
var (
	ErrMissingRequiredData  = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount        = errors.New("valor deve ser maior que zero")
	ErrInvalidInstallments  = errors.New("quantidade de parcelas deve ser maior que zero")
	ErrInvalidPeriod        = errors.New("período inválido")
	ErrNegativeValue        = errors.New("valor não pode ser negativo")
	ErrDuplicateReport      = errors.New("já existe relatório para o período")
	ErrRestaurantNotFound   = errors.New("restaurante não encontrado")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// ValidationError identifica o campo do formulário que falhou na validação
type ValidationError struct {
	Err   error  // Erro base
	Field string // Campo ofensor
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação apontando o campo ofensor
func NewValidationError(baseErr error, field string) *ValidationError {
	return &ValidationError{
		Err:   baseErr,
		Field: field,
	}
}
