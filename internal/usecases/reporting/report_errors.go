package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
)

var (
	ErrInvalidMonth    = errors.New("mês inválido")
	ErrInvalidYear     = errors.New("ano inválido")
	ErrSessionNotFound = errors.New("sessão de upload não encontrada ou expirada")
)

// ReportError é um erro com o código de API correspondente
type ReportError struct {
	Err       error
	Code      string
	SessionID string
	Details   string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func (e *ReportError) ErrorCode() string {
	return e.Code
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSessionNotFoundError(sessionID string) *ReportError {
	return &ReportError{
		Err:       ErrSessionNotFound,
		Code:      apiErrors.ErrSessionNotFound,
		SessionID: sessionID,
	}
}
