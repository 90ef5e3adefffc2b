package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi"
	"github.com/vfg2006/clash-paysheet/infrastructure/repository"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

type Reporter interface {
	// GetReport monta o relatório mensal da planilha enviada na sessão
	GetReport(ctx context.Context, sessionID string, filters domain.ReportFilters) (*domain.ReportResult, error)
	// GetExchangeRate consulta a cotação atual; ok=false quando indisponível
	GetExchangeRate(ctx context.Context) *domain.ExchangeRateResponse
}

type Service struct {
	sessionRepo  repository.SheetSessionRepository
	rateProvider awesomeapi.RateProvider
}

func NewService(sessionRepo repository.SheetSessionRepository, rateProvider awesomeapi.RateProvider) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		rateProvider: rateProvider,
	}
}

func (s *Service) GetReport(ctx context.Context, sessionID string, filters domain.ReportFilters) (*domain.ReportResult, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"session_id": sessionID,
		"month":      filters.Month,
		"year":       filters.Year,
	})

	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar sessão: %w", err)
	}
	if session == nil {
		return nil, NewSessionNotFoundError(sessionID)
	}

	filtered := FilterByPeriod(session.Records, filters.Month, filters.Year)

	// Período vazio não exibe total, então não há o que converter
	var rate *float64
	if filters.Convert && len(filtered) > 0 {
		if value, ok := s.rateProvider.GetRate(ctx); ok {
			rate = &value
		} else {
			logger.Warn("Cotação indisponível, relatório sem conversão")
		}
	}

	report := buildPeriodReport(filtered, filters.Month, filters.Year, rate)
	logger.Debugf("Relatório gerado com %d registro(s)", len(report.Records))

	return report, nil
}

func (s *Service) GetExchangeRate(ctx context.Context) *domain.ExchangeRateResponse {
	rate, ok := s.rateProvider.GetRate(ctx)
	if !ok {
		return &domain.ExchangeRateResponse{Available: false}
	}
	return &domain.ExchangeRateResponse{Available: true, Rate: &rate}
}

// ValidateFilters exige mês entre 1 e 12 e ano positivo
func ValidateFilters(filters domain.ReportFilters) error {
	if filters.Month < 1 || filters.Month > 12 {
		return NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, fmt.Sprintf("month=%d", filters.Month))
	}
	if filters.Year <= 0 {
		return NewReportError(ErrInvalidYear, apiErrors.ErrInvalidRequest, fmt.Sprintf("year=%d", filters.Year))
	}
	return nil
}
