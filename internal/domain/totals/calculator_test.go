package totals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(qty, price string) entity.LineItem {
	return entity.LineItem{Quantity: d(qty), UnitPrice: d(price)}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", field, want, got.String())
}

func assertInvariants(t *testing.T, s totals.Summary) {
	t.Helper()
	assert.True(t, s.TaxableBase.Equal(s.Subtotal.Sub(s.DiscountAmount)), "taxableBase = subtotal - discount")
	assert.True(t, s.Total.Equal(s.TaxableBase.Add(s.TaxAmount).Add(s.ShippingAmount)), "total = base + tax + shipping")
	assert.True(t, s.BalanceDue.Equal(s.Total.Sub(s.AmountPaid)), "balance = total - paid")
}

func TestCompute_EscenarioDiseno(t *testing.T) {
	s := totals.Compute(
		[]entity.LineItem{item("40", "100"), item("20", "120")},
		totals.Adjustments{
			DiscountType:  entity.AdjustmentPercent,
			DiscountValue: decimal.Zero,
			TaxType:       entity.AdjustmentPercent,
			TaxValue:      d("10"),
		},
	)

	assertDec(t, "6400", s.Subtotal, "subtotal")
	assertDec(t, "0", s.DiscountAmount, "discount")
	assertDec(t, "640", s.TaxAmount, "tax")
	assertDec(t, "7040", s.Total, "total")
	assertDec(t, "7040", s.BalanceDue, "balance")
	assertInvariants(t, s)
}

func TestCompute_SinLineas(t *testing.T) {
	s := totals.Compute(nil, totals.Adjustments{
		DiscountType:  entity.AdjustmentPercent,
		DiscountValue: d("15"),
		TaxType:       entity.AdjustmentPercent,
		TaxValue:      d("21"),
		Shipping:      d("12.50"),
		AmountPaid:    d("5"),
	})

	assertDec(t, "0", s.Subtotal, "subtotal")
	assertDec(t, "12.50", s.Total, "total == shipping")
	assertDec(t, "7.50", s.BalanceDue, "balance == shipping - paid")
	assertInvariants(t, s)
}

func TestCompute_ModosImporte(t *testing.T) {
	s := totals.Compute(
		[]entity.LineItem{item("3", "19.99")},
		totals.Adjustments{
			DiscountType:  entity.AdjustmentAmount,
			DiscountValue: d("9.97"),
			TaxType:       entity.AdjustmentAmount,
			TaxValue:      d("4.25"),
			Shipping:      d("7"),
			AmountPaid:    d("20"),
		},
	)

	assertDec(t, "59.97", s.Subtotal, "subtotal")
	assertDec(t, "9.97", s.DiscountAmount, "discount")
	assertDec(t, "50", s.TaxableBase, "base")
	assertDec(t, "4.25", s.TaxAmount, "tax")
	assertDec(t, "61.25", s.Total, "total")
	assertDec(t, "41.25", s.BalanceDue, "balance")
	assertInvariants(t, s)
}

func TestCompute_ImpuestoSobreBaseConDescuento(t *testing.T) {
	s := totals.Compute(
		[]entity.LineItem{item("1", "200")},
		totals.Adjustments{
			DiscountType:  entity.AdjustmentPercent,
			DiscountValue: d("25"),
			TaxType:       entity.AdjustmentPercent,
			TaxValue:      d("8"),
		},
	)

	assertDec(t, "50", s.DiscountAmount, "discount")
	assertDec(t, "150", s.TaxableBase, "base")
	assertDec(t, "12", s.TaxAmount, "tax")
	assertDec(t, "162", s.Total, "total")
}

func TestCompute_DescuentoMayorQueSubtotalSePropaga(t *testing.T) {
	s := totals.Compute(
		[]entity.LineItem{item("1", "100")},
		totals.Adjustments{
			DiscountType:  entity.AdjustmentAmount,
			DiscountValue: d("150"),
			TaxType:       entity.AdjustmentPercent,
			TaxValue:      d("10"),
		},
	)

	assertDec(t, "-50", s.TaxableBase, "base")
	assertDec(t, "-5", s.TaxAmount, "tax")
	assertDec(t, "-55", s.Total, "total")
	assertInvariants(t, s)
}

func TestCompute_ValoresDegenerados(t *testing.T) {
	s := totals.Compute(
		[]entity.LineItem{item("-2", "10"), item("0", "999"), item("1", "-3")},
		totals.Adjustments{
			DiscountType:  entity.AdjustmentPercent,
			DiscountValue: d("-10"),
			TaxType:       entity.AdjustmentPercent,
			TaxValue:      d("-5"),
			Shipping:      d("-1"),
			AmountPaid:    d("100"),
		},
	)

	assertDec(t, "-23", s.Subtotal, "subtotal")
	assertDec(t, "2.3", s.DiscountAmount, "discount")
	assertDec(t, "-25.3", s.TaxableBase, "base")
	assertDec(t, "1.265", s.TaxAmount, "tax")
	assertInvariants(t, s)
}

func TestCompute_ValorCeroIgnoraModo(t *testing.T) {
	items := []entity.LineItem{item("7", "13.37")}
	for _, mode := range []entity.AdjustmentMode{entity.AdjustmentPercent, entity.AdjustmentAmount, ""} {
		s := totals.Compute(items, totals.Adjustments{
			DiscountType: mode, DiscountValue: decimal.Zero,
			TaxType: mode, TaxValue: decimal.Zero,
		})
		assert.True(t, s.DiscountAmount.IsZero(), "modo %q", mode)
		assert.True(t, s.TaxAmount.IsZero(), "modo %q", mode)
		assert.True(t, s.Total.Equal(s.Subtotal), "modo %q", mode)
	}
}

func TestCompute_ModoDesconocidoEsImporte(t *testing.T) {
	s := totals.Compute([]entity.LineItem{item("1", "100")}, totals.Adjustments{
		DiscountType: "weird", DiscountValue: d("10"),
	})
	assertDec(t, "10", s.DiscountAmount, "discount")
}

func TestCompute_Determinista(t *testing.T) {
	items := []entity.LineItem{item("1.5", "33.333"), item("2", "0.01")}
	adj := totals.Adjustments{
		DiscountType: entity.AdjustmentPercent, DiscountValue: d("3.5"),
		TaxType: entity.AdjustmentPercent, TaxValue: d("19"),
		Shipping: d("4.99"),
	}
	assert.Equal(t, totals.Compute(items, adj), totals.Compute(items, adj))
}

func TestCompute_NoMutaEntradas(t *testing.T) {
	items := []entity.LineItem{item("2", "5")}
	before := items[0]
	_ = totals.Compute(items, totals.Adjustments{})
	assert.Equal(t, before, items[0])
}

func TestForInvoice_UsaCamposDeLaFactura(t *testing.T) {
	inv := entity.Invoice{
		Items:         []entity.LineItem{item("1", "1500")},
		DiscountType:  entity.AdjustmentPercent,
		DiscountValue: decimal.Zero,
		TaxType:       entity.AdjustmentPercent,
		TaxValue:      d("5"),
		Shipping:      d("10"),
		AmountPaid:    d("500"),
	}

	s := totals.ForInvoice(inv)

	assertDec(t, "75", s.TaxAmount, "tax")
	assertDec(t, "1585", s.Total, "total")
	assertDec(t, "1085", s.BalanceDue, "balance")
}

func TestSummary_Round(t *testing.T) {
	s := totals.Summary{Subtotal: d("10.005"), TaxAmount: d("-0.125"), Total: d("3.3349")}.Round(2)

	assertDec(t, "10.01", s.Subtotal, "subtotal")
	assertDec(t, "-0.13", s.TaxAmount, "tax")
	assertDec(t, "3.33", s.Total, "total")
}
