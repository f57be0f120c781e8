package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("dados inválidos")
	ErrNotFound           = errors.New("registro não encontrado")
	ErrConflict           = errors.New("registro duplicado")
	ErrForbidden          = errors.New("nível de aprovação insuficiente")
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	ErrInactiveUser       = errors.New("usuário inativo")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// mapRepoError converts repository errors into service sentinels.
// what names the entity for not-found messages.
func mapRepoError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referência inexistente", ErrValidation)
	default:
		return err
	}
}
