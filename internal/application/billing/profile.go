package billing

import (
	"context"
	"fmt"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
)

// currentProfile devuelve el perfil guardado o el perfil por defecto si aún no existe.
func currentProfile(ctx context.Context, repo repository.ProfileRepository) (entity.Profile, error) {
	p, err := repo.Get(ctx)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("obtener perfil: %w", err)
	}
	if p == nil {
		return entity.DefaultProfile(), nil
	}
	return *p, nil
}
