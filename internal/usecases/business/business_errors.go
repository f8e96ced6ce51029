package business

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos para o contexto de perfil de negócio
var (
	// ErrMissingField indica que o perfil chegou sem um campo obrigatório
	ErrMissingField = errors.New("campos obrigatórios ausentes")

	// Erros de banco de dados
	ErrSaveProfile  = errors.New("erro ao salvar perfil do negócio")
	ErrFetchProfile = errors.New("erro ao buscar perfil do negócio")
)

// MissingFieldError informa quais campos obrigatórios faltaram no perfil
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
