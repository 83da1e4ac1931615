// Package totals calcula la cascada monetaria de una factura:
// subtotal → descuento → base gravable → impuesto → envío → total → saldo.
//
// El orden de los pasos es la regla de negocio; cada paso depende solo de los anteriores.
// Ninguna función de este paquete falla ni redondea: el redondeo es responsabilidad de
// la capa de presentación (pkg/currency).
package totals

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Adjustments parámetros de ajuste aplicados sobre el subtotal.
type Adjustments struct {
	DiscountType  entity.AdjustmentMode
	DiscountValue decimal.Decimal
	TaxType       entity.AdjustmentMode
	TaxValue      decimal.Decimal
	Shipping      decimal.Decimal
	AmountPaid    decimal.Decimal
}

// Summary cifras derivadas. Se recalcula en cada lectura y nunca se persiste.
type Summary struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableBase    decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	Total          decimal.Decimal
	AmountPaid     decimal.Decimal
	BalanceDue     decimal.Decimal
}

// Compute aplica la cascada. Acepta cualquier valor (negativos incluidos) y lo propaga
// aritméticamente: un descuento mayor que el subtotal produce base e impuesto negativos.
func Compute(items []entity.LineItem, adj Adjustments) Summary {
	subtotal := lo.Reduce(items, func(acc decimal.Decimal, item entity.LineItem, _ int) decimal.Decimal {
		return acc.Add(item.Amount())
	}, decimal.Zero)

	discount := applyMode(adj.DiscountType, adj.DiscountValue, subtotal)
	taxable := subtotal.Sub(discount)
	tax := applyMode(adj.TaxType, adj.TaxValue, taxable)
	total := taxable.Add(tax).Add(adj.Shipping)

	return Summary{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableBase:    taxable,
		TaxAmount:      tax,
		ShippingAmount: adj.Shipping,
		Total:          total,
		AmountPaid:     adj.AmountPaid,
		BalanceDue:     total.Sub(adj.AmountPaid),
	}
}

// ForInvoice calcula el resumen de una factura completa.
func ForInvoice(inv entity.Invoice) Summary {
	return Compute(inv.Items, AdjustmentsOf(inv))
}

// AdjustmentsOf extrae los parámetros de ajuste de la factura.
func AdjustmentsOf(inv entity.Invoice) Adjustments {
	return Adjustments{
		DiscountType:  inv.DiscountType,
		DiscountValue: inv.DiscountValue,
		TaxType:       inv.TaxType,
		TaxValue:      inv.TaxValue,
		Shipping:      inv.Shipping,
		AmountPaid:    inv.AmountPaid,
	}
}

// Round redondea cada cifra de forma independiente a places decimales
// (mitad alejándose de cero, igual que currency.Round).
func (s Summary) Round(places int32) Summary {
	return Summary{
		Subtotal:       s.Subtotal.Round(places),
		DiscountAmount: s.DiscountAmount.Round(places),
		TaxableBase:    s.TaxableBase.Round(places),
		TaxAmount:      s.TaxAmount.Round(places),
		ShippingAmount: s.ShippingAmount.Round(places),
		Total:          s.Total.Round(places),
		AmountPaid:     s.AmountPaid.Round(places),
		BalanceDue:     s.BalanceDue.Round(places),
	}
}

// applyMode: porcentaje sobre base si el modo es percent; cualquier otro modo es importe fijo.
func applyMode(mode entity.AdjustmentMode, value, base decimal.Decimal) decimal.Decimal {
	if mode == entity.AdjustmentPercent {
		return base.Mul(value.Div(hundred))
	}
	return value
}
