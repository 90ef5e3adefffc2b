package utils

import (
	"math"
	"strconv"
	"strings"
)

// swapSeparators troca "," por "." e vice-versa em uma única passada
var swapSeparators = strings.NewReplacer(",", ".", ".", ",")

// ParseNumber converte o conteúdo de uma célula em número.
// Valores vazios ou não numéricos (incluindo NaN e infinito) retornam nil.
func ParseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}

// FormatCurrency formata o valor no padrão brasileiro: "$ 1.234.567,89".
// Primeiro formata com "," para milhar e "." para decimal, depois troca os separadores.
func FormatCurrency(symbol string, value float64) string {
	formatted := strconv.FormatFloat(value, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	intPart, fracPart, _ := strings.Cut(formatted, ".")
	formatted = groupThousands(intPart) + "." + fracPart

	return symbol + " " + sign + swapSeparators.Replace(formatted)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
