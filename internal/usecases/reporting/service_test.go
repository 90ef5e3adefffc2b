package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ratemocks "github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi/mocks"
	"github.com/vfg2006/clash-paysheet/infrastructure/repository/mocks"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_GetReport(t *testing.T) {
	session := &domain.SheetSession{
		ID: "sess-1",
		Records: []domain.NormalizedRecord{
			record(1, 12, 2024, time.January, 100),
			record(1, 12, 2024, time.January, 50),
		},
	}

	tests := []struct {
		name     string
		filters  domain.ReportFilters
		setup    func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider)
		validate func(t *testing.T, report *domain.ReportResult, err error)
	}{
		{
			name:    "Relatório sem conversão não consulta a cotação",
			filters: domain.ReportFilters{Month: 1, Year: 2024},
			setup: func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {
				repo.EXPECT().Get("sess-1").Return(session, nil)
			},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 150.0, report.Summary.TotalValue)
				assert.Nil(t, report.Summary.ConvertedTotal)
			},
		},
		{
			name:    "Relatório com conversão",
			filters: domain.ReportFilters{Month: 1, Year: 2024, Convert: true},
			setup: func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {
				repo.EXPECT().Get("sess-1").Return(session, nil)
				rates.EXPECT().GetRate(gomock.Any()).Return(5.0, true)
			},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				require.NoError(t, err)
				require.NotNil(t, report.Summary.ConvertedTotal)
				assert.Equal(t, 750.0, *report.Summary.ConvertedTotal)
				assert.Equal(t, "R$ 750,00", report.Summary.FormattedConvertedTotal)
			},
		},
		{
			name:    "Falha na cotação não impede o relatório",
			filters: domain.ReportFilters{Month: 1, Year: 2024, Convert: true},
			setup: func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {
				repo.EXPECT().Get("sess-1").Return(session, nil)
				rates.EXPECT().GetRate(gomock.Any()).Return(0.0, false)
			},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 150.0, report.Summary.TotalValue)
				assert.Nil(t, report.Summary.Rate)
				assert.Nil(t, report.Summary.ConvertedTotal)
				assert.Empty(t, report.Summary.FormattedConvertedTotal)
			},
		},
		{
			name:    "Período vazio com conversão não consulta a cotação",
			filters: domain.ReportFilters{Month: 2, Year: 2024, Convert: true},
			setup: func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {
				repo.EXPECT().Get("sess-1").Return(session, nil)
				rates.EXPECT().GetRate(gomock.Any()).Times(0)
			},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				require.NoError(t, err)
				assert.True(t, report.Empty)
				assert.Nil(t, report.Summary.Rate)
				assert.Nil(t, report.Summary.ConvertedTotal)
			},
		},
		{
			name:    "Sessão inexistente",
			filters: domain.ReportFilters{Month: 1, Year: 2024},
			setup: func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {
				repo.EXPECT().Get("sess-1").Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				assert.Nil(t, report)
				assert.True(t, errors.Is(err, ErrSessionNotFound))
				assert.Equal(t, apiErrors.ErrSessionNotFound, apiErrors.FromError(err).Code)
			},
		},
		{
			name:    "Mês inválido",
			filters: domain.ReportFilters{Month: 13, Year: 2024},
			setup:   func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				assert.Nil(t, report)
				assert.True(t, errors.Is(err, ErrInvalidMonth))
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErrors.FromError(err).Code)
			},
		},
		{
			name:    "Ano inválido",
			filters: domain.ReportFilters{Month: 1, Year: 0},
			setup:   func(repo *mocks.MockSheetSessionRepository, rates *ratemocks.MockRateProvider) {},
			validate: func(t *testing.T, report *domain.ReportResult, err error) {
				assert.Nil(t, report)
				assert.True(t, errors.Is(err, ErrInvalidYear))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSheetSessionRepository(ctrl)
			rates := ratemocks.NewMockRateProvider(ctrl)
			tt.setup(repo, rates)

			service := NewService(repo, rates)
			report, err := service.GetReport(context.Background(), "sess-1", tt.filters)
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetExchangeRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := ratemocks.NewMockRateProvider(ctrl)
	gomock.InOrder(
		rates.EXPECT().GetRate(gomock.Any()).Return(5.25, true),
		rates.EXPECT().GetRate(gomock.Any()).Return(0.0, false),
	)

	service := NewService(nil, rates)

	available := service.GetExchangeRate(context.Background())
	assert.True(t, available.Available)
	require.NotNil(t, available.Rate)
	assert.Equal(t, 5.25, *available.Rate)

	unavailable := service.GetExchangeRate(context.Background())
	assert.False(t, unavailable.Available)
	assert.Nil(t, unavailable.Rate)
}
