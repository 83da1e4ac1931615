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

var _ repository.ClientRepository = (*ClientRepository)(nil)

// ClientRepository guarda la lista de clientes como un blob bajo KeyClients.
type ClientRepository struct {
	store repository.KVStore
	mu    sync.Mutex
}

func NewClientRepository(store repository.KVStore) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) load(ctx context.Context) ([]clientRecord, error) {
	raw, _, err := r.store.Get(ctx, KeyClients)
	if err != nil {
		return nil, fmt.Errorf("leer clientes: %w", err)
	}
	return decodeList[clientRecord](raw, KeyClients)
}

func (r *ClientRepository) persist(ctx context.Context, recs []clientRecord) error {
	if recs == nil {
		recs = []clientRecord{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("codificar clientes: %w", err)
	}
	if err := r.store.Set(ctx, KeyClients, raw); err != nil {
		return fmt.Errorf("guardar clientes: %w", err)
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(recs, func(c clientRecord, _ int) entity.Client { return c.toEntity() }), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := lo.Find(recs, func(c clientRecord) bool { return c.ID == id })
	if !ok {
		return nil, nil
	}
	c := rec.toEntity()
	return &c, nil
}

func (r *ClientRepository) Save(ctx context.Context, client entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	rec := toClientRecord(client)
	if _, idx, ok := lo.FindIndexOf(recs, func(c clientRecord) bool { return c.ID == client.ID }); ok {
		recs[idx] = rec
	} else {
		recs = append(recs, rec)
	}
	return r.persist(ctx, recs)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.persist(ctx, lo.Reject(recs, func(c clientRecord, _ int) bool { return c.ID == id }))
}
