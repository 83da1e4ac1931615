// Package analytics contiene los casos de uso de estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

// DashboardUseCase resume ingresos y cartera a partir de todas las facturas guardadas.
//
// Reglas:
//   - paid            → total_revenue
//   - sent | overdue  → outstanding
//   - overdue         → overdue
//
// Cada factura aporta su total calculado con totals.ForInvoice y las cifras se
// agrupan por moneda.
type DashboardUseCase struct {
	invoices repository.InvoiceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoices repository.InvoiceRepository) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices}
}

type bucket struct {
	revenue     decimal.Decimal
	outstanding decimal.Decimal
	overdue     decimal.Decimal
	monthly     map[string]decimal.Decimal
}

// GetSummary construye el DashboardDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar facturas: %w", err)
	}

	counts := map[string]int{
		string(entity.InvoiceStatusDraft):   0,
		string(entity.InvoiceStatusSent):    0,
		string(entity.InvoiceStatusPaid):    0,
		string(entity.InvoiceStatusOverdue): 0,
	}
	buckets := make(map[string]*bucket)

	for _, inv := range list {
		counts[string(inv.Status)]++

		code := currency.Normalize(inv.Currency)
		b, ok := buckets[code]
		if !ok {
			b = &bucket{monthly: make(map[string]decimal.Decimal)}
			buckets[code] = b
		}

		total := totals.ForInvoice(inv).Total
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			b.revenue = b.revenue.Add(total)
			if !inv.IssueDate.IsZero() {
				month := inv.IssueDate.Format("2006-01")
				b.monthly[month] = b.monthly[month].Add(total)
			}
		case entity.InvoiceStatusSent:
			b.outstanding = b.outstanding.Add(total)
		case entity.InvoiceStatusOverdue:
			b.outstanding = b.outstanding.Add(total)
			b.overdue = b.overdue.Add(total)
		}
	}

	codes := lo.Keys(buckets)
	sort.Strings(codes)

	out := &dto.DashboardDTO{
		InvoiceCount:   len(list),
		CountsByStatus: counts,
		Currencies:     make([]dto.CurrencyStatsDTO, 0, len(codes)),
	}
	for _, code := range codes {
		b := buckets[code]
		out.Currencies = append(out.Currencies, dto.CurrencyStatsDTO{
			Currency:             code,
			TotalRevenue:         b.revenue,
			Outstanding:          b.outstanding,
			Overdue:              b.overdue,
			FormattedRevenue:     currency.Format(b.revenue, code),
			FormattedOutstanding: currency.Format(b.outstanding, code),
			FormattedOverdue:     currency.Format(b.overdue, code),
			MonthlyRevenue:       monthlySeries(b.monthly),
		})
	}
	return out, nil
}

// monthlySeries ordena los meses de forma ascendente.
func monthlySeries(m map[string]decimal.Decimal) []dto.MonthlyPointDTO {
	months := lo.Keys(m)
	sort.Strings(months)
	return lo.Map(months, func(k string, _ int) dto.MonthlyPointDTO {
		return dto.MonthlyPointDTO{Month: k, Revenue: m[k]}
	})
}
