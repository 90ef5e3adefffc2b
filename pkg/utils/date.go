package utils

import (
	"strings"
	"time"
)

// Formatos aceitos no cabeçalho das colunas de data
var dateLabelLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2006",
	"Jan 2006",
	"02-Jan-2006",
}

// ParseDateLabel interpreta o rótulo de uma coluna como data
func ParseDateLabel(label string) (time.Time, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLabelLayouts {
		if date, err := time.Parse(layout, label); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// FirstDayOfMonth trunca a data para o primeiro dia do mês, em UTC
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
