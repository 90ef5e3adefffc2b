package domain

const (
	MinLevel = 9
	MaxLevel = 17

	SourceCurrencySymbol    = "$"
	ConvertedCurrencySymbol = "R$"
)

// LevelDomain retorna os níveis exibidos no relatório, sempre de 9 a 17
func LevelDomain() []int {
	levels := make([]int, 0, MaxLevel-MinLevel+1)
	for level := MinLevel; level <= MaxLevel; level++ {
		levels = append(levels, level)
	}
	return levels
}

// ReportFilters representa o mês/ano escolhido pelo usuário
type ReportFilters struct {
	Month   int
	Year    int
	Convert bool // Busca a cotação USD-BRL para exibir o total convertido
}

// LevelAggregate representa o total vendido de um nível no período
type LevelAggregate struct {
	Level          int     `json:"level"`
	TotalValue     float64 `json:"total_value"`
	BaseCount      int     `json:"base_count"`
	FormattedValue string  `json:"formatted_value"`
}

type Summary struct {
	TotalValue              float64  `json:"total_value"`
	FormattedTotal          string   `json:"formatted_total"`
	Rate                    *float64 `json:"rate,omitempty"`
	ConvertedTotal          *float64 `json:"converted_total,omitempty"`
	FormattedConvertedTotal string   `json:"formatted_converted_total,omitempty"`
}

type ChartBar struct {
	Level      int     `json:"level"`
	BaseCount  int     `json:"base_count"`
	TotalValue float64 `json:"total_value"`
	Text       string  `json:"text"`
}

// Chart contém os dados do gráfico de barras horizontais (bases vendidas por nível)
type Chart struct {
	Title      string     `json:"title"`
	XAxisTitle string     `json:"x_axis_title"`
	YAxisTitle string     `json:"y_axis_title"`
	Categories []int      `json:"categories"`
	Bars       []ChartBar `json:"bars"`
}

// ReportResult é o relatório mensal entregue para a camada de apresentação
type ReportResult struct {
	Month     int                `json:"month"`
	MonthName string             `json:"month_name"`
	Year      int                `json:"year"`
	Title     string             `json:"title"`
	Empty     bool               `json:"empty"`
	Summary   Summary            `json:"summary"`
	Levels    []LevelAggregate   `json:"levels"`
	Chart     Chart              `json:"chart"`
	Records   []NormalizedRecord `json:"records"`
}
