package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk219/Send-My-Invoice/internal/application/analytics"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/kv"
)

func invoice(id string, status entity.InvoiceStatus, code string, month time.Month, amount int64) entity.Invoice {
	return entity.Invoice{
		ID:        id,
		Number:    id,
		IssueDate: time.Date(2024, month, 5, 0, 0, 0, 0, time.UTC),
		Status:    status,
		Items: []entity.LineItem{
			{ID: "1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(amount)},
		},
		TaxType:  entity.AdjustmentPercent,
		TaxValue: decimal.NewFromInt(10),
		Currency: code,
	}
}

func TestDashboard_AgrupaPorEstadoYMoneda(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewInvoiceRepository(kv.NewMemoryStore())
	for _, inv := range []entity.Invoice{
		invoice("a", entity.InvoiceStatusPaid, "USD", time.September, 1000),
		invoice("b", entity.InvoiceStatusPaid, "USD", time.October, 500),
		invoice("c", entity.InvoiceStatusSent, "USD", time.October, 200),
		invoice("d", entity.InvoiceStatusOverdue, "USD", time.August, 100),
		invoice("e", entity.InvoiceStatusDraft, "USD", time.October, 9999),
		invoice("f", entity.InvoiceStatusPaid, "EUR", time.October, 300),
	} {
		require.NoError(t, repo.Save(ctx, inv))
	}

	got, err := analytics.NewDashboardUseCase(repo).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, got.InvoiceCount)
	assert.Equal(t, 3, got.CountsByStatus["paid"])
	assert.Equal(t, 1, got.CountsByStatus["draft"])
	require.Len(t, got.Currencies, 2)

	eur, usd := got.Currencies[0], got.Currencies[1]
	assert.Equal(t, "EUR", eur.Currency)
	assert.True(t, eur.TotalRevenue.Equal(decimal.NewFromInt(330)))

	assert.Equal(t, "USD", usd.Currency)
	assert.True(t, usd.TotalRevenue.Equal(decimal.NewFromInt(1650)))
	assert.True(t, usd.Outstanding.Equal(decimal.NewFromInt(330)))
	assert.True(t, usd.Overdue.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, "$1,650.00", usd.FormattedRevenue)

	require.Len(t, usd.MonthlyRevenue, 2)
	assert.Equal(t, "2024-09", usd.MonthlyRevenue[0].Month)
	assert.True(t, usd.MonthlyRevenue[0].Revenue.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, "2024-10", usd.MonthlyRevenue[1].Month)
}

func TestDashboard_SinFacturas(t *testing.T) {
	got, err := analytics.NewDashboardUseCase(kv.NewInvoiceRepository(kv.NewMemoryStore())).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.InvoiceCount)
	assert.Empty(t, got.Currencies)
	assert.Equal(t, 0, got.CountsByStatus["paid"])
}
