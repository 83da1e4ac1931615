package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

// ProfileUseCase lectura y edición del perfil del negocio emisor.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devuelve el perfil guardado o el perfil por defecto.
func (uc *ProfileUseCase) Get(ctx context.Context) (*dto.ProfileResponse, error) {
	p, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// Update reemplaza el perfil. La moneda debe ser un código ISO 4217 reconocido.
func (uc *ProfileUseCase) Update(ctx context.Context, in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	code := currency.Normalize(in.Currency)
	if !currency.IsKnown(code) {
		return nil, fmt.Errorf("%w: moneda %q no reconocida", domain.ErrInvalidInput, in.Currency)
	}
	prev, err := uc.current(ctx)
	if err != nil {
		return nil, err
	}

	font := entity.FontFamily(in.FontFamily)
	if font == "" {
		font = entity.FontSans
	}
	p := entity.Profile{
		ID:                 prev.ID,
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Address:            in.Address,
		Phone:              in.Phone,
		LogoURL:            in.LogoURL,
		BrandColor:         in.BrandColor,
		TaxID:              in.TaxID,
		Currency:           code,
		DefaultPaymentLink: in.DefaultPaymentLink,
		InvoiceFormat:      strings.TrimSpace(in.InvoiceFormat),
		FontFamily:         font,
		Website:            in.Website,
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("guardar perfil: %w", err)
	}
	return toProfileResponse(p), nil
}

func (uc *ProfileUseCase) current(ctx context.Context) (entity.Profile, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("obtener perfil: %w", err)
	}
	if p == nil {
		return entity.DefaultProfile(), nil
	}
	return *p, nil
}

func toProfileResponse(p entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Address:            p.Address,
		Phone:              p.Phone,
		LogoURL:            p.LogoURL,
		BrandColor:         p.BrandColor,
		TaxID:              p.TaxID,
		Currency:           p.Currency,
		CurrencySymbol:     currency.Symbol(p.Currency),
		DefaultPaymentLink: p.DefaultPaymentLink,
		InvoiceFormat:      p.InvoiceFormat,
		FontFamily:         string(p.FontFamily),
		Website:            p.Website,
	}
}
