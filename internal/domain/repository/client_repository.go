package repository

import (
	"context"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	List(ctx context.Context) ([]entity.Client, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	// Save inserta o reemplaza por ID.
	Save(ctx context.Context, client entity.Client) error
	Delete(ctx context.Context, id string) error
}
