// Package normalizing converte a planilha de vendas (formato largo) em registros
// mensais no formato longo. Todas as funções são puras.
package normalizing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/pkg/utils"
)

// Posição fixa das colunas de identificação
const (
	packOrderColumn = 0
	baseColumn      = 1
	levelColumn     = 2
	identityColumns = 3

	headerRow    = 1
	firstDataRow = 2
)

var levelDigits = regexp.MustCompile(`\d+`)

// longRow é uma linha despivotada antes do filtro; nil representa valor ausente
type longRow struct {
	packOrderID *float64
	baseID      *float64
	level       *int
	period      *time.Time
	value       *float64
}

// Normalize converte a primeira aba da planilha em registros mensais
func Normalize(sheet domain.RawSheet) ([]domain.NormalizedRecord, error) {
	records, _, err := NormalizeWithStats(sheet)
	return records, err
}

// NormalizeWithStats faz o mesmo que Normalize e também informa o que foi descartado
func NormalizeWithStats(sheet domain.RawSheet) ([]domain.NormalizedRecord, domain.NormalizeStats, error) {
	stats := domain.NormalizeStats{SkippedColumns: []string{}}

	// Sem cabeçalho (apenas a linha descartável, ou nada) não há o que normalizar
	if len(sheet.Rows) <= headerRow {
		return []domain.NormalizedRecord{}, stats, nil
	}

	width := tableWidth(sheet.Rows[headerRow:])
	if width < identityColumns {
		return nil, stats, NewValidationError(
			ErrMissingLeadingColumns,
			fmt.Sprintf("a planilha tem %d coluna(s), são necessárias ao menos %d", width, identityColumns),
		)
	}

	header := sheet.Rows[headerRow]
	data := sheet.Rows[firstDataRow:]
	stats.DataRows = len(data)

	periods := columnPeriods(header, width, &stats)
	rows := unpivot(data, periods, width)

	records := make([]domain.NormalizedRecord, 0, len(rows))
	for _, row := range rows {
		// Colunas que não são datas são descartadas por inteiro
		if row.period == nil {
			continue
		}
		if row.value == nil || row.level == nil {
			stats.DroppedRecords++
			continue
		}

		records = append(records, domain.NormalizedRecord{
			PackOrderID: row.packOrderID,
			BaseID:      row.baseID,
			Level:       *row.level,
			Period:      *row.period,
			Value:       *row.value,
		})
	}

	SortRecords(records)
	stats.Records = len(records)

	return records, stats, nil
}

// columnPeriods interpreta cada rótulo do cabeçalho como data, já truncada para o mês
func columnPeriods(header []string, width int, stats *domain.NormalizeStats) []*time.Time {
	periods := make([]*time.Time, width)
	for col := identityColumns; col < width; col++ {
		label := cell(header, col)
		date, ok := utils.ParseDateLabel(label)
		if !ok {
			stats.SkippedColumns = append(stats.SkippedColumns, label)
			continue
		}

		period := utils.FirstDayOfMonth(date)
		periods[col] = &period
		stats.DateColumns++
	}
	return periods
}

// unpivot gera uma linha por (base, coluna de data), coluna a coluna
func unpivot(data [][]string, periods []*time.Time, width int) []longRow {
	type identity struct {
		packOrderID *float64
		baseID      *float64
		level       *int
	}

	identities := make([]identity, len(data))
	for i, raw := range data {
		identities[i] = identity{
			packOrderID: utils.ParseNumber(cell(raw, packOrderColumn)),
			baseID:      utils.ParseNumber(cell(raw, baseColumn)),
			level:       ExtractLevel(cell(raw, levelColumn)),
		}
	}

	rows := make([]longRow, 0, len(data)*(width-identityColumns))
	for col := identityColumns; col < width; col++ {
		for i, raw := range data {
			rows = append(rows, longRow{
				packOrderID: identities[i].packOrderID,
				baseID:      identities[i].baseID,
				level:       identities[i].level,
				period:      periods[col],
				value:       utils.ParseNumber(cell(raw, col)),
			})
		}
	}
	return rows
}

// ExtractLevel extrai a primeira sequência de dígitos do rótulo ("CTh17" → 17)
func ExtractLevel(label string) *int {
	digits := levelDigits.FindString(label)
	if digits == "" {
		return nil
	}

	level, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &level
}

// SortRecords ordena por (base, nível, período) decrescente; bases nulas ficam no fim
func SortRecords(records []domain.NormalizedRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if c := compareDesc(a.BaseID, b.BaseID); c != 0 {
			return c < 0
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.Period.After(b.Period)
	})
}

func compareDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	}
	return 0
}

func tableWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
