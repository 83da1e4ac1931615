package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/numbering"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

const (
	draftDueDays     = 14
	draftItemLabel   = "Consultation"
	draftDefaultNote = "Thank you for your business!"
)

// InvoiceUseCase ciclo de vida de la factura: borrador, preview, guardado, consulta y borrado.
type InvoiceUseCase struct {
	invoices      repository.InvoiceRepository
	clients       repository.ClientRepository
	profiles      repository.ProfileRepository
	numbers       *numbering.Generator
	defaultFormat string
	now           func() time.Time
	log           *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso. defaultFormat se usa cuando el perfil no tiene formato.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	profiles repository.ProfileRepository,
	numbers *numbering.Generator,
	defaultFormat string,
	log *logger.Logger,
) *InvoiceUseCase {
	if defaultFormat == "" {
		defaultFormat = numbering.DefaultFormat
	}
	return &InvoiceUseCase{
		invoices:      invoices,
		clients:       clients,
		profiles:      profiles,
		numbers:       numbers,
		defaultFormat: defaultFormat,
		now:           time.Now,
		log:           log.Component("invoices"),
	}
}

// WithClock fija el reloj de fechas de emisión y auditoría (tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// NewDraft arma una factura nueva sin persistirla: siguiente número según el formato
// del perfil, vence en 14 días y trae una línea de ejemplo.
func (uc *InvoiceUseCase) NewDraft(ctx context.Context) (*dto.InvoiceResponse, error) {
	profile, err := currentProfile(ctx, uc.profiles)
	if err != nil {
		return nil, err
	}
	next, err := uc.nextNumber(ctx, uc.formatOf(profile))
	if err != nil {
		return nil, err
	}

	today := truncateDay(uc.now())
	inv := entity.Invoice{
		ID:        uuid.NewString(),
		Number:    next,
		IssueDate: today,
		DueDate:   today.AddDate(0, 0, draftDueDays),
		Status:    entity.InvoiceStatusDraft,
		Items: []entity.LineItem{
			{ID: uuid.NewString(), Description: draftItemLabel, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero},
		},
		Notes:        draftDefaultNote,
		DiscountType: entity.AdjustmentPercent,
		TaxType:      entity.AdjustmentPercent,
		Currency:     currency.Normalize(profile.Currency),
		Template:     entity.DefaultTemplate,
		Layout:       entity.LayoutPortrait,
		PaymentLink:  profile.DefaultPaymentLink,
	}
	return toInvoiceResponse(inv, nil), nil
}

// NextNumber siguiente número para un formato arbitrario; vacío usa el del perfil.
func (uc *InvoiceUseCase) NextNumber(ctx context.Context, format string) (*dto.NextNumberResponse, error) {
	if format == "" {
		profile, err := currentProfile(ctx, uc.profiles)
		if err != nil {
			return nil, err
		}
		format = uc.formatOf(profile)
	}
	next, err := uc.nextNumber(ctx, format)
	if err != nil {
		return nil, err
	}
	return &dto.NextNumberResponse{Format: format, Prefix: uc.numbers.Prefix(format), Next: next}, nil
}

// Preview totales de un body sin guardar (se invoca en cada cambio del editor).
func (uc *InvoiceUseCase) Preview(ctx context.Context, in dto.InvoiceRequest) (*dto.TotalsDTO, error) {
	code := in.Currency
	if code == "" {
		profile, err := currentProfile(ctx, uc.profiles)
		if err != nil {
			return nil, err
		}
		code = profile.Currency
	}
	items := lo.Map(in.Items, func(it dto.LineItemDTO, _ int) entity.LineItem {
		return entity.LineItem{ID: it.ID, Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	})
	out := ToTotalsDTO(totals.Compute(items, adjustmentsOf(in)), currency.Normalize(code))
	return &out, nil
}

// Create guarda una factura nueva. Si el body trae id se respeta (borradores de NewDraft).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ID != "" {
		existing, err := uc.invoices.GetByID(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("obtener factura: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: ya existe una factura con id %s", domain.ErrConflict, in.ID)
		}
	}
	inv, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	now := uc.now()
	inv.CreatedAt, inv.UpdatedAt = now, now
	return uc.persist(ctx, inv)
}

// Update reemplaza la factura id con el contenido del body.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	in.ID = id
	inv, err := uc.build(ctx, in)
	if err != nil {
		return nil, err
	}
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = uc.now()
	return uc.persist(ctx, inv)
}

// Get devuelve la factura con sus totales.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(*inv, uc.clientOf(ctx, inv.ClientID)), nil
}

// List todas las facturas, la más reciente primero.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	clients, err := uc.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	byID := lo.SliceToMap(clients, func(c entity.Client) (string, entity.Client) { return c.ID, c })

	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		var client *entity.Client
		if c, ok := byID[inv.ClientID]; ok {
			client = &c
		}
		out = append(out, toInvoiceResponse(inv, client))
	}
	return out, nil
}

// Delete elimina la factura. Los huecos no se rellenan: el generador avanza sobre el máximo vigente.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar factura: %w", err)
	}
	uc.log.Info().Str("invoice_id", id).Msg("factura eliminada")
	return nil
}

// ── internos ──────────────────────────────────────────────────────────────────

func (uc *InvoiceUseCase) build(ctx context.Context, in dto.InvoiceRequest) (entity.Invoice, error) {
	if in.Number == "" {
		return entity.Invoice{}, fmt.Errorf("%w: number es obligatorio", domain.ErrInvalidInput)
	}
	profile, err := currentProfile(ctx, uc.profiles)
	if err != nil {
		return entity.Invoice{}, err
	}
	inv, err := fromInvoiceRequest(in, profile.Currency)
	if err != nil {
		return entity.Invoice{}, err
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = truncateDay(uc.now())
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.AddDate(0, 0, draftDueDays)
	}
	if inv.ClientID != "" {
		if c := uc.clientOf(ctx, inv.ClientID); c == nil {
			return entity.Invoice{}, fmt.Errorf("%w: el cliente %s no existe", domain.ErrInvalidInput, inv.ClientID)
		}
	}
	return inv, nil
}

// persist valida que el número no lo use otra factura y guarda.
func (uc *InvoiceUseCase) persist(ctx context.Context, inv entity.Invoice) (*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	if lo.ContainsBy(list, func(o entity.Invoice) bool { return o.Number == inv.Number && o.ID != inv.ID }) {
		return nil, fmt.Errorf("%w: el número %s ya está en uso", domain.ErrDuplicate, inv.Number)
	}
	if err := uc.invoices.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("number", inv.Number).Msg("factura guardada")
	return toInvoiceResponse(inv, uc.clientOf(ctx, inv.ClientID)), nil
}

func (uc *InvoiceUseCase) load(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// clientOf devuelve nil si no hay cliente o ya no existe; el error de lectura solo se registra.
func (uc *InvoiceUseCase) clientOf(ctx context.Context, id string) *entity.Client {
	if id == "" {
		return nil
	}
	c, err := uc.clients.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.log.Warn().Err(err).Str("client_id", id).Msg("no se pudo leer el cliente")
	}
	return c
}

func (uc *InvoiceUseCase) nextNumber(ctx context.Context, format string) (string, error) {
	existing, err := uc.invoices.Numbers(ctx)
	if err != nil {
		return "", fmt.Errorf("leer números existentes: %w", err)
	}
	return uc.numbers.Next(format, existing), nil
}

func (uc *InvoiceUseCase) formatOf(p entity.Profile) string {
	if p.InvoiceFormat != "" {
		return p.InvoiceFormat
	}
	return uc.defaultFormat
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
