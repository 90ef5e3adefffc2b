package uploading

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clash-paysheet/infrastructure/repository"
	repomocks "github.com/vfg2006/clash-paysheet/infrastructure/repository/mocks"
	"github.com/vfg2006/clash-paysheet/infrastructure/spreadsheet"
	"github.com/vfg2006/clash-paysheet/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/clash-paysheet/internal/config"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/internal/usecases/normalizing"
	"github.com/vfg2006/clash-paysheet/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testConfig() *config.Config {
	return &config.Config{Session: config.Session{TTL: time.Hour}}
}

func newTestService(reader spreadsheet.Reader, repo repository.SheetSessionRepository) *Service {
	service := NewService(reader, repo, testConfig())
	service.now = fixedClock
	service.generateID = func() (string, error) { return "sess-1", nil }
	return service
}

func validSheet() domain.RawSheet {
	return domain.RawSheet{
		Name: "Sales",
		Rows: [][]string{
			{"placeholder"},
			{"Pack/Order#", "Base#", "Level", "2024-01-15", "2024-01-31"},
			{"10", "1", "TH12", "100", "50"},
		},
	}
}

func TestService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Read(gomock.Any()).Return(validSheet(), nil)

	repo := repository.NewSheetSessionRepository(fixedClock)
	service := newTestService(reader, repo)

	resp, err := service.Upload(context.Background(), "sales.xlsx", strings.NewReader("conteúdo"))
	require.NoError(t, err)

	assert.Equal(t, "sess-1", resp.ID)
	assert.Equal(t, "sales.xlsx", resp.FileName)
	assert.Equal(t, 2, resp.Records)
	assert.Equal(t, fixedNow.Add(time.Hour), resp.ExpiresAt)
	assert.Equal(t, 2, resp.Stats.DateColumns)
	require.NotNil(t, resp.Periods)
	assert.Equal(t, []int{2024}, resp.Periods.Years)

	stored, err := repo.Get("sess-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Records, 2)
}

func TestService_UploadFailures(t *testing.T) {
	tests := []struct {
		name         string
		fileName     string
		file         func() *strings.Reader
		setup        func(reader *mocks.MockReader, repo *repomocks.MockSheetSessionRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Extensão não suportada",
			fileName:     "sales.csv",
			file:         func() *strings.Reader { return strings.NewReader("a,b") },
			setup:        func(reader *mocks.MockReader, repo *repomocks.MockSheetSessionRepository) {},
			expectedErr:  ErrUnsupportedFile,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Arquivo ilegível",
			fileName: "sales.xlsx",
			file:     func() *strings.Reader { return strings.NewReader("not a zip") },
			setup: func(reader *mocks.MockReader, repo *repomocks.MockSheetSessionRepository) {
				reader.EXPECT().Read(gomock.Any()).Return(domain.RawSheet{}, spreadsheet.ErrUnreadableWorkbook)
			},
			expectedErr:  ErrUnreadableSheet,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "Planilha sem colunas obrigatórias",
			fileName: "sales.xlsx",
			file:     func() *strings.Reader { return strings.NewReader("x") },
			setup: func(reader *mocks.MockReader, repo *repomocks.MockSheetSessionRepository) {
				reader.EXPECT().Read(gomock.Any()).Return(domain.RawSheet{Rows: [][]string{{""}, {"A", "B"}}}, nil)
			},
			expectedErr:  normalizing.ErrMissingLeadingColumns,
			expectedCode: apiErrors.ErrInvalidSheet,
		},
		{
			name:     "Falha ao salvar a sessão",
			fileName: "sales.xlsx",
			file:     func() *strings.Reader { return strings.NewReader("x") },
			setup: func(reader *mocks.MockReader, repo *repomocks.MockSheetSessionRepository) {
				reader.EXPECT().Read(gomock.Any()).Return(validSheet(), nil)
				repo.EXPECT().Save(gomock.Any()).Return(errors.New("boom"))
			},
			expectedErr:  ErrSaveSession,
			expectedCode: apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := mocks.NewMockReader(ctrl)
			repo := repomocks.NewMockSheetSessionRepository(ctrl)
			tt.setup(reader, repo)

			service := newTestService(reader, repo)
			resp, err := service.Upload(context.Background(), tt.fileName, tt.file())

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.Equal(t, tt.expectedCode, apiErrors.FromError(err).Code)
		})
	}
}

func TestService_UploadRealWorkbook(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"Clash Champs"}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{"Pack/Order#", "Base#", "Level", "2024-03-01", "2024-04-01"}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{1, 100, "CTh15", 25.5, 30}))
	require.NoError(t, file.SetSheetRow(sheet, "A4", &[]any{2, 101, "TH9", nil, 12}))

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	repo := repository.NewSheetSessionRepository(fixedClock)
	service := newTestService(spreadsheet.NewXLSXReader(), repo)

	resp, err := service.Upload(context.Background(), "Paysheet.XLSX", &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Records)
	assert.Equal(t, 1, resp.Stats.DroppedRecords)

	records, err := service.GetRecords(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 101.0, *records[0].BaseID)
	assert.Equal(t, 9, records[0].Level)
}

func TestService_SessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Read(gomock.Any()).Return(validSheet(), nil)

	repo := repository.NewSheetSessionRepository(fixedClock)
	service := newTestService(reader, repo)
	ctx := context.Background()

	created, err := service.Upload(ctx, "sales.xlsx", strings.NewReader("x"))
	require.NoError(t, err)

	got, err := service.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, service.DeleteSession(ctx, created.ID))

	_, err = service.GetSession(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.Equal(t, apiErrors.ErrSessionNotFound, apiErrors.FromError(err).Code)

	err = service.DeleteSession(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))

	_, err = service.GetRecords(ctx, "missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestService_SessionExpiresWithSharedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Read(gomock.Any()).Return(validSheet(), nil)

	current := time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	repo := repository.NewSheetSessionRepository(clock)
	service := newTestService(reader, repo)
	service.now = clock
	ctx := context.Background()

	created, err := service.Upload(ctx, "sales.xlsx", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, current.Add(time.Hour), created.ExpiresAt)

	current = current.Add(59 * time.Minute)
	_, err = service.GetSession(ctx, created.ID)
	require.NoError(t, err)

	current = current.Add(time.Minute)
	_, err = service.GetSession(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestIsSupportedFile(t *testing.T) {
	assert.True(t, IsSupportedFile("a.xlsx"))
	assert.True(t, IsSupportedFile("A.XLSX"))
	assert.True(t, IsSupportedFile("macro.xlsm"))
	assert.False(t, IsSupportedFile("a.xls"))
	assert.False(t, IsSupportedFile("a.csv"))
	assert.False(t, IsSupportedFile(""))
}
