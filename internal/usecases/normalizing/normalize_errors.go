package normalizing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
)

var (
	// ErrMissingLeadingColumns indica que a planilha não tem as colunas Pack/Order#, Base# e Level
	ErrMissingLeadingColumns = errors.New("planilha sem as colunas obrigatórias pack/order, base e level")
)

// ValidationError representa uma planilha fora do layout esperado.
// É fatal para o upload: nenhum registro parcial é devolvido.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrorCode implementa apiErrors.CodedError
func (e *ValidationError) ErrorCode() string {
	return apiErrors.ErrInvalidSheet
}

func NewValidationError(err error, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Details: details,
	}
}
