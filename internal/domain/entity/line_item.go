package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea facturable. El importe nunca se guarda: se recalcula con Amount.
type LineItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Amount devuelve cantidad * precio unitario.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}
