// Package uploading recebe a planilha enviada, normaliza e guarda o resultado em sessão
package uploading

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/clash-paysheet/infrastructure/repository"
	"github.com/vfg2006/clash-paysheet/infrastructure/spreadsheet"
	"github.com/vfg2006/clash-paysheet/internal/config"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/internal/usecases/normalizing"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
	"github.com/vfg2006/clash-paysheet/pkg/utils"
)

var supportedExtensions = []string{".xlsx", ".xlsm"}

type Uploader interface {
	Upload(ctx context.Context, fileName string, file io.Reader) (*domain.SheetSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*domain.SheetSessionResponse, error)
	GetRecords(ctx context.Context, sessionID string) ([]domain.NormalizedRecord, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Service struct {
	reader      spreadsheet.Reader
	sessionRepo repository.SheetSessionRepository
	ttl         time.Duration
	now         func() time.Time
	generateID  func() (string, error)
}

func NewService(reader spreadsheet.Reader, sessionRepo repository.SheetSessionRepository, cfg *config.Config) *Service {
	return &Service{
		reader:      reader,
		sessionRepo: sessionRepo,
		ttl:         cfg.Session.TTL,
		now:         time.Now,
		generateID:  utils.GenerateID,
	}
}

func (s *Service) Upload(ctx context.Context, fileName string, file io.Reader) (*domain.SheetSessionResponse, error) {
	if file == nil {
		return nil, NewUploadError(ErrFileRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if !IsSupportedFile(fileName) {
		return nil, NewUploadError(ErrUnsupportedFile, apiErrors.ErrInvalidFormat, fileName)
	}

	logger := log.ForContext(ctx)

	raw, err := s.reader.Read(file)
	if err != nil {
		logger.WithError(err).Warnf("sheets: falha ao ler %s", fileName)
		return nil, NewUploadError(ErrUnreadableSheet, apiErrors.ErrInvalidFormat, err.Error())
	}

	// ValidationError já carrega o código de API
	records, stats, err := normalizing.NormalizeWithStats(raw)
	if err != nil {
		logger.WithError(err).Warnf("sheets: planilha %s fora do layout esperado", fileName)
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewUploadError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	now := s.now()
	session := &domain.SheetSession{
		ID:        id,
		FileName:  fileName,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
		Records:   records,
		Stats:     stats,
	}

	if err := s.sessionRepo.Save(session); err != nil {
		return nil, NewUploadError(ErrSaveSession, apiErrors.ErrInternalServer, err.Error())
	}

	logger.WithFields(log.Fields{
		"session_id":         id,
		"sheet_name":         raw.Name,
		"sheet_data_rows":    stats.DataRows,
		"sheet_date_columns": stats.DateColumns,
		"sheet_skipped":      len(stats.SkippedColumns),
		"sheet_dropped":      stats.DroppedRecords,
		"sheet_records":      stats.Records,
	}).Info("sheets: planilha normalizada")

	return session.ToResponse(), nil
}

func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.SheetSessionResponse, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.ToResponse(), nil
}

func (s *Service) GetRecords(ctx context.Context, sessionID string) ([]domain.NormalizedRecord, error) {
	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Records, nil
}

func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	deleted, err := s.sessionRepo.Delete(sessionID)
	if err != nil {
		return NewUploadError(err, apiErrors.ErrInternalServer, "")
	}
	if !deleted {
		return NewSessionError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID)
	}

	log.ForContext(ctx).WithField("session_id", sessionID).Info("sheets: sessão removida")
	return nil
}

func (s *Service) getSession(sessionID string) (*domain.SheetSession, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, NewUploadError(err, apiErrors.ErrInternalServer, "")
	}
	if session == nil {
		return nil, NewSessionError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID)
	}
	return session, nil
}

// IsSupportedFile verifica a extensão do arquivo enviado
func IsSupportedFile(fileName string) bool {
	return slices.Contains(supportedExtensions, strings.ToLower(filepath.Ext(fileName)))
}
