package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/clash-paysheet/internal/domain"
	"github.com/vfg2006/clash-paysheet/pkg/utils"
)

const (
	emptyChartTitle = "No data for the selected period"
	chartXAxisTitle = "Number of Bases Sold"
	chartYAxisTitle = "Level"
)

// BuildReport monta o relatório do mês/ano a partir dos registros normalizados.
// rate é a cotação USD-BRL; nil omite a conversão.
func BuildReport(records []domain.NormalizedRecord, month, year int, rate *float64) *domain.ReportResult {
	return buildPeriodReport(FilterByPeriod(records, month, year), month, year, rate)
}

// buildPeriodReport recebe os registros já filtrados para o mês/ano
func buildPeriodReport(filtered []domain.NormalizedRecord, month, year int, rate *float64) *domain.ReportResult {
	monthName := domain.MonthName(month)
	title := fmt.Sprintf("%s %d", monthName, year)

	result := &domain.ReportResult{
		Month:     month,
		MonthName: monthName,
		Year:      year,
		Title:     title,
		Levels:    AggregateByLevel(filtered),
		Records:   filtered,
	}

	if len(filtered) == 0 {
		result.Empty = true
		result.Chart = domain.Chart{
			Title:      emptyChartTitle,
			XAxisTitle: chartXAxisTitle,
			YAxisTitle: chartYAxisTitle,
			Categories: []int{},
			Bars:       []domain.ChartBar{},
		}
		return result
	}

	result.Summary = Summarize(filtered, rate)
	result.Chart = buildChart(result.Levels, title)

	return result
}

// FilterByPeriod mantém os registros do mês/ano exatos
func FilterByPeriod(records []domain.NormalizedRecord, month, year int) []domain.NormalizedRecord {
	filtered := make([]domain.NormalizedRecord, 0)
	for _, record := range records {
		if record.Period.Year() == year && record.Period.Month() == time.Month(month) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Summarize soma todos os registros filtrados, inclusive níveis fora de 9-17
func Summarize(records []domain.NormalizedRecord, rate *float64) domain.Summary {
	var total float64
	for _, record := range records {
		total += record.Value
	}

	summary := domain.Summary{
		TotalValue:     total,
		FormattedTotal: utils.FormatCurrency(domain.SourceCurrencySymbol, total),
	}

	if rate != nil {
		rateValue := *rate
		converted := total * rateValue
		summary.Rate = &rateValue
		summary.ConvertedTotal = &converted
		summary.FormattedConvertedTotal = utils.FormatCurrency(domain.ConvertedCurrencySymbol, converted)
	}

	return summary
}

// AggregateByLevel agrupa por nível e reindexa em 9..17; níveis ausentes ficam zerados
func AggregateByLevel(records []domain.NormalizedRecord) []domain.LevelAggregate {
	byLevel := make(map[int]*domain.LevelAggregate)
	for _, record := range records {
		agg, ok := byLevel[record.Level]
		if !ok {
			agg = &domain.LevelAggregate{Level: record.Level}
			byLevel[record.Level] = agg
		}
		agg.TotalValue += record.Value
		agg.BaseCount++
	}

	levels := make([]domain.LevelAggregate, 0, domain.MaxLevel-domain.MinLevel+1)
	for _, level := range domain.LevelDomain() {
		agg := domain.LevelAggregate{Level: level}
		if found, ok := byLevel[level]; ok {
			agg = *found
		}
		agg.FormattedValue = utils.FormatCurrency(domain.SourceCurrencySymbol, agg.TotalValue)
		levels = append(levels, agg)
	}

	return levels
}

func buildChart(levels []domain.LevelAggregate, title string) domain.Chart {
	chart := domain.Chart{
		Title:      fmt.Sprintf("Sales by Level - %s", title),
		XAxisTitle: chartXAxisTitle,
		YAxisTitle: chartYAxisTitle,
		Categories: domain.LevelDomain(),
		Bars:       make([]domain.ChartBar, 0, len(levels)),
	}

	for _, level := range levels {
		chart.Bars = append(chart.Bars, domain.ChartBar{
			Level:      level.Level,
			BaseCount:  level.BaseCount,
			TotalValue: level.TotalValue,
			Text:       level.FormattedValue,
		})
	}

	return chart
}
