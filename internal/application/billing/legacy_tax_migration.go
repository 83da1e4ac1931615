package billing

import (
	"context"
	"fmt"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

// LegacyTaxMigration convierte el campo heredado taxRate (solo porcentaje) al par
// taxType/taxValue. Se ejecuta de forma explícita desde cmd/migrate_tax; la carga
// normal de facturas nunca aplica esta conversión.
type LegacyTaxMigration struct {
	invoices repository.InvoiceRepository
	log      *logger.Logger
}

// NewLegacyTaxMigration construye la migración.
func NewLegacyTaxMigration(invoices repository.InvoiceRepository, log *logger.Logger) *LegacyTaxMigration {
	return &LegacyTaxMigration{invoices: invoices, log: log.Component("migrate_tax")}
}

// MigrationResult ids migrados y total revisado.
type MigrationResult struct {
	Scanned  int
	Migrated []string
}

// Run migra los registros que solo tienen taxRate. Con dryRun no escribe nada.
// Registros que ya tienen taxType conservan sus valores.
func (m *LegacyTaxMigration) Run(ctx context.Context, dryRun bool) (*MigrationResult, error) {
	list, err := m.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}

	res := &MigrationResult{Scanned: len(list)}
	for _, inv := range list {
		if !inv.NeedsTaxMigration() {
			continue
		}
		migrated := inv.Clone()
		migrated.TaxType = entity.AdjustmentPercent
		migrated.TaxValue = *inv.LegacyTaxRate
		migrated.LegacyTaxRate = nil

		if !dryRun {
			if err := m.invoices.Save(ctx, migrated); err != nil {
				return res, fmt.Errorf("guardar factura %s: %w", inv.ID, err)
			}
		}
		res.Migrated = append(res.Migrated, inv.ID)
		m.log.Info().
			Str("invoice_id", inv.ID).
			Str("tax_value", migrated.TaxValue.String()).
			Bool("dry_run", dryRun).
			Msg("taxRate migrado")
	}
	return res, nil
}
