package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository guarda el perfil bajo KeyProfile.
type ProfileRepository struct {
	store repository.KVStore
	mu    sync.Mutex
}

func NewProfileRepository(store repository.KVStore) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok, err := r.store.Get(ctx, KeyProfile)
	if err != nil {
		return nil, fmt.Errorf("leer perfil: %w", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var rec profileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", KeyProfile, err)
	}
	p := rec.toEntity()
	return &p, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, err := json.Marshal(toProfileRecord(profile))
	if err != nil {
		return fmt.Errorf("codificar perfil: %w", err)
	}
	if err := r.store.Set(ctx, KeyProfile, raw); err != nil {
		return fmt.Errorf("guardar perfil: %w", err)
	}
	return nil
}
