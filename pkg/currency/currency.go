// Package currency es la frontera de presentación de montos: catálogo de monedas,
// redondeo a la escala estándar ISO 4217 y formato con símbolo y separador de miles.
//
// Regla de redondeo única: mitad alejándose de cero (decimal.Round) a la escala de la
// moneda. La vista previa, la API y el PDF pasan por Format, así que nunca difieren en un centavo.
package currency

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

// defaultScale se usa cuando el código no es ISO 4217 reconocido.
const defaultScale int32 = 2

// ErrInvalidAmount el texto no contiene un monto legible.
var ErrInvalidAmount = errors.New("currency: monto inválido")

// Info moneda del catálogo del editor.
type Info struct {
	Code   string
	Symbol string
	Name   string
}

var catalog = []Info{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "CNY", Symbol: "CN¥", Name: "Chinese Yuan"},
	{Code: "AED", Symbol: "AED", Name: "UAE Dirham"},
}

// Catalog devuelve una copia del catálogo.
func Catalog() []Info {
	return append([]Info(nil), catalog...)
}

// Normalize pasa el código a mayúsculas sin espacios.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup busca el código en el catálogo.
func Lookup(code string) (Info, bool) {
	code = Normalize(code)
	for _, c := range catalog {
		if c.Code == code {
			return c, true
		}
	}
	return Info{}, false
}

// IsKnown indica si el código es ISO 4217 reconocido (esté o no en el catálogo).
func IsKnown(code string) bool {
	_, err := xcurrency.ParseISO(Normalize(code))
	return err == nil
}

// Scale decimales estándar de la moneda (2 para USD/EUR, 0 para JPY).
// Códigos desconocidos usan 2.
func Scale(code string) int32 {
	unit, err := xcurrency.ParseISO(Normalize(code))
	if err != nil {
		return defaultScale
	}
	scale, _ := xcurrency.Standard.Rounding(unit)
	return int32(scale)
}

// Symbol símbolo de la moneda: el del catálogo, el propio código si es ISO válido,
// o vacío si el código no se reconoce (formato decimal genérico).
func Symbol(code string) string {
	if info, ok := Lookup(code); ok {
		return info.Symbol
	}
	if IsKnown(code) {
		return Normalize(code)
	}
	return ""
}

// Round redondea el monto a la escala de la moneda.
func Round(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(Scale(code))
}

// MinorUnits convierte a la unidad mínima (centavos para USD, yenes para JPY).
func MinorUnits(amount decimal.Decimal, code string) int64 {
	scale := Scale(code)
	return Round(amount, code).Shift(scale).IntPart()
}

// Format devuelve el monto redondeado con símbolo y separador de miles.
// Ej: (1234.5, "USD") → "$1,234.50"; (-3, "AED") → "-AED 3.00"; (1234, "JPY") → "¥1,234".
func Format(amount decimal.Decimal, code string) string {
	scale := Scale(code)
	rounded := amount.Round(scale)

	digits := rounded.Abs().StringFixed(scale)
	intPart, fracPart, hasFrac := strings.Cut(digits, ".")

	var b strings.Builder
	if rounded.Sign() < 0 {
		b.WriteByte('-')
	}
	if sym := Symbol(code); sym != "" {
		b.WriteString(sym)
		if endsWithLetter(sym) {
			b.WriteByte(' ')
		}
	}
	b.WriteString(groupThousands(intPart))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// Parse es la inversa de Format: quita signo, símbolo y separadores de miles.
func Parse(display, code string) (decimal.Decimal, error) {
	s := strings.TrimSpace(display)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if sym := Symbol(code); sym != "" {
		s = strings.TrimPrefix(s, sym)
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, display)
	}
	if negative {
		v = v.Neg()
	}
	return v, nil
}

// groupThousands inserta comas de miles en un string de dígitos.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func endsWithLetter(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsLetter(r[len(r)-1])
}
