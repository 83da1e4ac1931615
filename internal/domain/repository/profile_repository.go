package repository

import (
	"context"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia del perfil del negocio.
type ProfileRepository interface {
	// Get devuelve nil, nil si aún no hay perfil guardado.
	Get(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile entity.Profile) error
}
