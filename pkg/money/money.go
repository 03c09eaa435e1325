// Package money formata valores monetários no padrão brasileiro.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format devolve o valor com duas casas decimais e vírgula como separador,
// por exemplo "1234,56".
func Format(value decimal.Decimal) string {
	return strings.Replace(value.StringFixed(2), ".", ",", 1)
}

// FormatFloat é um atalho para valores já representados como float64.
func FormatFloat(value float64) string {
	return Format(decimal.NewFromFloat(value))
}
