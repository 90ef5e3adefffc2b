package uploading

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de upload
var (
	// Erros de validação
	ErrFileRequired    = errors.New("arquivo da planilha é obrigatório")
	ErrUnsupportedFile = errors.New("formato de arquivo não suportado, envie um .xlsx")
	ErrUnreadableSheet = errors.New("não foi possível ler a planilha")

	// Erros de sessão
	ErrSessionNotFound = errors.New("sessão de upload não encontrada ou expirada")

	// Erros internos
	ErrGenerateID  = errors.New("erro ao gerar o id da sessão")
	ErrSaveSession = errors.New("erro ao salvar a sessão")
)

// UploadError é um erro com contexto adicional para uploads
type UploadError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	SessionID string // Sessão envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *UploadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func (e *UploadError) ErrorCode() string {
	return e.Code
}

func NewUploadError(err error, code string, details string) *UploadError {
	return &UploadError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSessionError(err error, code string, sessionID string) *UploadError {
	return &UploadError{
		Err:       err,
		Code:      code,
		SessionID: sessionID,
	}
}
