// Package spreadsheet lê a primeira aba de arquivos .xlsx como uma grade de texto
package spreadsheet

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/xuri/excelize/v2"
)

// headerRowIndex é a linha do cabeçalho real; a linha 0 é descartável
const headerRowIndex = 1

var (
	ErrUnreadableWorkbook = errors.New("arquivo não é uma planilha xlsx válida")
	ErrNoSheets           = errors.New("planilha não possui abas")
)

//go:generate mockgen -source=xlsx.go -destination=mocks/mock_reader.go -package=mocks

// Reader converte um arquivo de planilha em domain.RawSheet
type Reader interface {
	Read(r io.Reader) (domain.RawSheet, error)
}

type XLSXReader struct{}

func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

func (x *XLSXReader) Read(r io.Reader) (domain.RawSheet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return domain.RawSheet{}, errors.Wrap(ErrUnreadableWorkbook, err.Error())
	}
	defer file.Close()

	return ReadFirstSheet(file)
}

// ReadFirstSheet lê a primeira aba do workbook com os valores crus das células.
// Células de data no cabeçalho são convertidas de número serial para ISO 8601.
func ReadFirstSheet(file *excelize.File) (domain.RawSheet, error) {
	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawSheet{}, ErrNoSheets
	}
	name := sheets[0]

	rows, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.RawSheet{}, errors.Wrapf(err, "erro ao ler linhas da aba %q", name)
	}

	if len(rows) > headerRowIndex {
		date1904 := false
		if props, err := file.GetWorkbookProps(); err == nil && props.Date1904 != nil {
			date1904 = *props.Date1904
		}
		convertHeaderDates(file, name, rows[headerRowIndex], date1904)
	}

	return domain.RawSheet{Name: name, Rows: rows}, nil
}

func convertHeaderDates(file *excelize.File, sheet string, header []string, date1904 bool) {
	for col, value := range header {
		serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}

		axis, err := excelize.CoordinatesToCellName(col+1, headerRowIndex+1)
		if err != nil || !isDateCell(file, sheet, axis) {
			continue
		}

		date, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			continue
		}
		header[col] = date.Format("2006-01-02T15:04:05")
	}
}

func isDateCell(file *excelize.File, sheet, axis string) bool {
	styleID, err := file.GetCellStyle(sheet, axis)
	if err != nil || styleID == 0 {
		return false
	}

	style, err := file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	if style.CustomNumFmt != nil {
		return IsDateFormat(*style.CustomNumFmt)
	}

	return isBuiltInDateFormat(style.NumFmt)
}

// Formatos numéricos embutidos do Excel que representam datas
func isBuiltInDateFormat(numFmt int) bool {
	switch {
	case numFmt >= 14 && numFmt <= 22:
		return true
	case numFmt >= 27 && numFmt <= 36:
		return true
	case numFmt >= 45 && numFmt <= 47:
		return true
	case numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

var formatLiterals = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

// IsDateFormat indica se um formato personalizado contém componentes de data
func IsDateFormat(format string) bool {
	cleaned := strings.ToLower(formatLiterals.ReplaceAllString(format, ""))
	return strings.ContainsAny(cleaned, "dy")
}

