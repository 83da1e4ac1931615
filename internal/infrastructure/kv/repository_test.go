package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/kv"
)

func sampleInvoice(id, number string) entity.Invoice {
	return entity.Invoice{
		ID:        id,
		Number:    number,
		ClientID:  "c1",
		IssueDate: time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, 11, 7, 0, 0, 0, 0, time.UTC),
		Status:    entity.InvoiceStatusDraft,
		Items: []entity.LineItem{
			{ID: "i1", Description: "Diseño", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(150)},
		},
		TaxType:  entity.AdjustmentPercent,
		TaxValue: decimal.NewFromInt(10),
		Currency: "USD",
		Template: entity.TemplateModern,
		Layout:   entity.LayoutPortrait,
	}
}

func TestInvoiceRepository_SaveInsertaAlInicio(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewInvoiceRepository(kv.NewMemoryStore())

	require.NoError(t, repo.Save(ctx, sampleInvoice("a", "INV-2024-0001")))
	require.NoError(t, repo.Save(ctx, sampleInvoice("b", "INV-2024-0002")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)

	nums, err := repo.Numbers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-2024-0002", "INV-2024-0001"}, nums)
}

func TestInvoiceRepository_SaveReemplazaPorID(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewInvoiceRepository(kv.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, sampleInvoice("a", "INV-2024-0001")))

	upd := sampleInvoice("a", "INV-2024-0001")
	upd.Status = entity.InvoiceStatusPaid
	require.NoError(t, repo.Save(ctx, upd))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)

	list, _ := repo.List(ctx)
	assert.Len(t, list, 1)
}

func TestInvoiceRepository_RoundTripConservaCampos(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewInvoiceRepository(kv.NewMemoryStore())
	in := sampleInvoice("a", "INV-2024-0001")
	in.Labels = entity.Labels{Title: "FACTURA"}
	in.Shipping = decimal.RequireFromString("12.5")
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.IssueDate, got.IssueDate)
	assert.True(t, got.Shipping.Equal(in.Shipping))
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "FACTURA", got.Labels.Title)
	assert.Nil(t, got.LegacyTaxRate)
}

func TestInvoiceRepository_LeeRegistroHeredadoConTaxRate(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	raw := `[{"id":"old","number":"INV-2023-0001","clientId":"c1","issueDate":"2023-01-05",
	"dueDate":"bad-date","status":"sent","items":[{"id":"x","description":"d","quantity":2,"unitPrice":50}],
	"taxRate":8,"template":"desconocida","layout":"portrait"}]`
	require.NoError(t, store.Set(ctx, kv.KeyInvoices, []byte(raw)))

	repo := kv.NewInvoiceRepository(store)
	got, err := repo.GetByID(ctx, "old")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.LegacyTaxRate)
	assert.True(t, got.LegacyTaxRate.Equal(decimal.NewFromInt(8)))
	assert.True(t, got.NeedsTaxMigration())
	assert.True(t, got.DueDate.IsZero())
	assert.Equal(t, entity.TemplateModern, got.Template)
}

func TestInvoiceRepository_BlobCorruptoDevuelveError(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kv.KeyInvoices, []byte("{no-json")))

	_, err := kv.NewInvoiceRepository(store).List(ctx)
	assert.Error(t, err)
}

func TestInvoiceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewInvoiceRepository(kv.NewMemoryStore())
	require.NoError(t, repo.Save(ctx, sampleInvoice("a", "INV-2024-0001")))
	require.NoError(t, repo.Delete(ctx, "a"))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewClientRepository(kv.NewMemoryStore())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Save(ctx, entity.Client{ID: "c1", Name: "TechFlow"}))
	require.NoError(t, repo.Save(ctx, entity.Client{ID: "c2", Name: "Green Earth"}))
	require.NoError(t, repo.Save(ctx, entity.Client{ID: "c1", Name: "TechFlow Inc."}))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "TechFlow Inc.", list[0].Name)

	require.NoError(t, repo.Delete(ctx, "c2"))
	got, err := repo.GetByID(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepository_VacioDevuelveNil(t *testing.T) {
	repo := kv.NewProfileRepository(kv.NewMemoryStore())
	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepository_SaveYGet(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewProfileRepository(kv.NewMemoryStore())
	p := entity.DefaultProfile()
	p.Phone = "+57 300 000 0000"
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p, *got)
}
