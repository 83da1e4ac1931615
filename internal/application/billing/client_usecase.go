package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	now := uc.now()
	client := entity.Client{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("guardar cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// Update reemplaza nombre, email y dirección.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	client, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	client.Name = strings.TrimSpace(in.Name)
	client.Email = strings.TrimSpace(in.Email)
	client.Address = in.Address
	client.UpdatedAt = uc.now()
	if err := uc.repo.Save(ctx, *client); err != nil {
		return nil, fmt.Errorf("guardar cliente: %w", err)
	}
	return toClientResponse(*client), nil
}

// Get devuelve un cliente por id.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(*client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return lo.Map(list, func(c entity.Client, _ int) *dto.ClientResponse { return toClientResponse(c) }), nil
}

// Delete elimina el cliente. Las facturas que lo referencian se conservan sin cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	return nil
}

func (uc *ClientUseCase) get(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func toClientResponse(c entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email, Address: c.Address}
}
