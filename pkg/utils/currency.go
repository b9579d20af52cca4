package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrencyBRL formata um valor em reais no padrão brasileiro,
// por exemplo 12345.6 vira "R$ 12.345,60"
func FormatCurrencyBRL(value float64) string {
	return brPrinter.Sprintf("R$ %v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercentBR formata um percentual com duas casas no padrão
// brasileiro, por exemplo 3.2 vira "3,20%"
func FormatPercentBR(value float64) string {
	return brPrinter.Sprintf("%v%%", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
