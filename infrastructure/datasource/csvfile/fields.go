package csvfile

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// primaryDateLayout é o formato dia/mês/ano usado pelo arquivo de origem
const primaryDateLayout = "02/01/2006"

// fallbackDateLayouts cobre os formatos aceitos por um parse genérico
// independente de cultura (mês antes do dia quando ambíguo).
var fallbackDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/06",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
}

// parseText remove espaços nas extremidades; campo ausente vira string vazia
func parseText(value string, ok bool) string {
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// parseDecimal remove símbolos de moeda, separadores de milhar e espaços antes
// de converter. Retorna ok=false quando o valor não é um número válido.
func parseDecimal(value string, currencySymbols []string) (decimal.Decimal, bool) {
	cleaned := value
	for _, symbol := range currencySymbols {
		if symbol == "" {
			continue
		}
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if !isPlainNumber(cleaned) {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// isPlainNumber aceita sinal opcional, dígitos e no máximo um ponto decimal
func isPlainNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	digits := 0
	dots := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// parseDate tenta o formato dia/mês/ano e depois os formatos genéricos.
// O resultado não tem componente de horário.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(primaryDateLayout, value); err == nil {
		return truncateToDate(t), true
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return truncateToDate(t), true
		}
	}

	return time.Time{}, false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
