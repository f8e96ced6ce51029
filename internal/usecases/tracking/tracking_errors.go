package tracking

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos para o contexto de rastreamento
var (
	// ErrMissingField indica que um evento chegou sem um campo obrigatório
	ErrMissingField = errors.New("campos obrigatórios ausentes")

	// Erros de armazenamento
	ErrAppendEvent = errors.New("erro ao gravar evento no log")
)

// MissingFieldError informa quais campos obrigatórios faltaram no evento
type MissingFieldError struct {
	Fields []string
}

// Error implementa a interface error
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), strings.Join(e.Fields, ", "))
}

// Unwrap retorna o erro base
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// NewMissingFieldError cria um novo MissingFieldError
func NewMissingFieldError(fields ...string) *MissingFieldError {
	return &MissingFieldError{Fields: fields}
}
