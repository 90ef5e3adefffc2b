package spreadsheet

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildPaysheet(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Clash Champs Paysheet"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Pack/Order#", "Base#", "Level", "2024-01-15"}))

	// Cabeçalho gravado como data nativa do Excel (serial 45322 = 2024-01-31)
	require.NoError(t, f.SetCellValue(sheet, "E2", 45322))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "E2", "E2", style))
	require.NoError(t, f.SetCellValue(sheet, "F2", "Total"))

	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{1001, 77, "TH12", 100, 50, 150}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{1002, 78, "CTh17", 200.5}))

	_, err = f.NewSheet("Outra")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Outra", "A1", "ignorada"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXReader_Read(t *testing.T) {
	raw, err := NewXLSXReader().Read(buildPaysheet(t))
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", raw.Name)
	require.Len(t, raw.Rows, 4)
	assert.Equal(t, []string{"Clash Champs Paysheet"}, raw.Rows[0])
	assert.Equal(t, []string{"Pack/Order#", "Base#", "Level", "2024-01-15", "2024-01-31T00:00:00", "Total"}, raw.Rows[1])
	assert.Equal(t, []string{"1001", "77", "TH12", "100", "50", "150"}, raw.Rows[2])
	assert.Equal(t, []string{"1002", "78", "CTh17", "200.5"}, raw.Rows[3])
}

func TestXLSXReader_ReadInvalidFile(t *testing.T) {
	_, err := NewXLSXReader().Read(bytes.NewBufferString("não é uma planilha"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadableWorkbook))
}

func TestIsDateFormat(t *testing.T) {
	assert.True(t, IsDateFormat("dd/mm/yyyy"))
	assert.True(t, IsDateFormat("mmm-yy"))
	assert.False(t, IsDateFormat("#,##0.00"))
	assert.False(t, IsDateFormat(`"Day"0`))
	assert.False(t, IsDateFormat("[Red]0.00"))
}
