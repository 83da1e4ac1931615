package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
// Los montos se agrupan por moneda: no se suman cifras de monedas distintas.
type DashboardDTO struct {
	InvoiceCount   int                `json:"invoice_count"`
	CountsByStatus map[string]int     `json:"counts_by_status"`
	Currencies     []CurrencyStatsDTO `json:"currencies"`
}

// CurrencyStatsDTO totales de una moneda.
type CurrencyStatsDTO struct {
	Currency             string            `json:"currency"`
	TotalRevenue         decimal.Decimal   `json:"total_revenue"` // facturas pagadas
	Outstanding          decimal.Decimal   `json:"outstanding"`   // enviadas + vencidas
	Overdue              decimal.Decimal   `json:"overdue"`
	FormattedRevenue     string            `json:"formatted_revenue"`
	FormattedOutstanding string            `json:"formatted_outstanding"`
	FormattedOverdue     string            `json:"formatted_overdue"`
	MonthlyRevenue       []MonthlyPointDTO `json:"monthly_revenue"`
}

// MonthlyPointDTO ingreso pagado de un mes (YYYY-MM, por fecha de emisión).
type MonthlyPointDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}
