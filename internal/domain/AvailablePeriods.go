package domain

import "sort"

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthOption representa uma opção do seletor de mês
type MonthOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// AvailablePeriods representa os anos presentes na planilha e a tabela fixa de meses
type AvailablePeriods struct {
	Years  []int         `json:"years"`
	Months []MonthOption `json:"months"`
}

// MonthName retorna o nome em inglês do mês (1-12), ou vazio se inválido
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

func MonthOptions() []MonthOption {
	options := make([]MonthOption, 0, len(monthNames))
	for i, name := range monthNames {
		options = append(options, MonthOption{Number: i + 1, Name: name})
	}
	return options
}

// AvailableYears retorna os anos distintos dos registros em ordem crescente
func AvailableYears(records []NormalizedRecord) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, record := range records {
		year := record.Period.Year()
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

func NewAvailablePeriods(records []NormalizedRecord) *AvailablePeriods {
	return &AvailablePeriods{
		Years:  AvailableYears(records),
		Months: MonthOptions(),
	}
}
