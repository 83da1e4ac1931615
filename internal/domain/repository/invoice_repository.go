package repository

import (
	"context"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve las facturas en el orden guardado (más reciente primero).
	List(ctx context.Context) ([]entity.Invoice, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Save reemplaza por ID o inserta al inicio de la lista.
	Save(ctx context.Context, invoice entity.Invoice) error
	Delete(ctx context.Context, id string) error
	// Numbers devuelve los números de todas las facturas (entrada del generador).
	Numbers(ctx context.Context) ([]string, error)
}
