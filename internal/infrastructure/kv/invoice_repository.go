package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository guarda todas las facturas como un blob bajo KeyInvoices,
// la más reciente primero.
type InvoiceRepository struct {
	store repository.KVStore
	mu    sync.Mutex
}

func NewInvoiceRepository(store repository.KVStore) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

func (r *InvoiceRepository) load(ctx context.Context) ([]invoiceRecord, error) {
	raw, _, err := r.store.Get(ctx, KeyInvoices)
	if err != nil {
		return nil, fmt.Errorf("leer facturas: %w", err)
	}
	return decodeList[invoiceRecord](raw, KeyInvoices)
}

func (r *InvoiceRepository) persist(ctx context.Context, recs []invoiceRecord) error {
	if recs == nil {
		recs = []invoiceRecord{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("codificar facturas: %w", err)
	}
	if err := r.store.Set(ctx, KeyInvoices, raw); err != nil {
		return fmt.Errorf("guardar facturas: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(recs, func(rec invoiceRecord, _ int) entity.Invoice { return rec.toEntity() }), nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := lo.Find(recs, func(rec invoiceRecord) bool { return rec.ID == id })
	if !ok {
		return nil, nil
	}
	inv := rec.toEntity()
	return &inv, nil
}

func (r *InvoiceRepository) Save(ctx context.Context, invoice entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	rec := toInvoiceRecord(invoice)
	if _, idx, ok := lo.FindIndexOf(recs, func(x invoiceRecord) bool { return x.ID == invoice.ID }); ok {
		recs[idx] = rec
	} else {
		recs = append([]invoiceRecord{rec}, recs...)
	}
	return r.persist(ctx, recs)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.persist(ctx, lo.Reject(recs, func(rec invoiceRecord, _ int) bool { return rec.ID == id }))
}

func (r *InvoiceRepository) Numbers(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(recs, func(rec invoiceRecord, _ int) string { return rec.Number }), nil
}
