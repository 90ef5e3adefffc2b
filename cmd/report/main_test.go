package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"Clash Champs"}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{"Pack/Order#", "Base#", "Level", "2024-01-15", "2024-01-31"}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{10, 1, "TH12", 1000, 234.5}))

	path := filepath.Join(t.TempDir(), "paysheet.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"report"}, args...))
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	path := writeWorkbook(t)

	out, err := run(t, "--file", path, "--month", "1", "--year", "2024", "--rate", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Relatório de January 2024")
	assert.Contains(t, out, "Total: $ 1.234,50")
	assert.Contains(t, out, "Total convertido: R$ 6.172,50")
	assert.Contains(t, out, "$ 1.234,50")
}

func TestReportCommand_EmptyPeriod(t *testing.T) {
	path := writeWorkbook(t)

	out, err := run(t, "--file", path, "--month", "3", "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Nenhum dado para o período selecionado")
}

func TestReportCommand_JSON(t *testing.T) {
	path := writeWorkbook(t)

	out, err := run(t, "--file", path, "--month", "1", "--year", "2024", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"formatted_total": "$ 1.234,50"`)
	assert.NotContains(t, out, "converted_total")
}

func TestReportCommand_LiveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"USDBRL":{"bid":"2"}}`))
	}))
	defer server.Close()

	path := writeWorkbook(t)

	out, err := run(t, "--file", path, "--month", "1", "--year", "2024", "--live-rate", "--rate-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Total convertido: R$ 2.469,00")
}

func TestReportCommand_LiveRateUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	path := writeWorkbook(t)

	out, err := run(t, "--file", path, "--month", "1", "--year", "2024", "--live-rate", "--rate-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Cotação indisponível")
	assert.NotContains(t, out, "Total convertido")
}

func TestReportCommand_InvalidArguments(t *testing.T) {
	path := writeWorkbook(t)

	_, err := run(t, "--file", path, "--month", "13", "--year", "2024")
	assert.Error(t, err)

	_, err = run(t, "--file", filepath.Join(t.TempDir(), "missing.xlsx"), "--month", "1", "--year", "2024")
	assert.Error(t, err)
}

func TestPeriodsCommand(t *testing.T) {
	path := writeWorkbook(t)

	out, err := run(t, "periods", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Anos: [2024]")
	assert.Contains(t, out, "12 December")
}

func TestPeriodsCommand_JSON(t *testing.T) {
	path := writeWorkbook(t)

	out, err := run(t, "periods", "--file", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"years\": [\n\t\t2024\n\t]")
	assert.Contains(t, out, `"name": "December"`)
}
