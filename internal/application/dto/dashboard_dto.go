package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso más el feed de actividad reciente.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayCosts  decimal.Decimal `json:"today_costs"`
	TodayMargin decimal.Decimal `json:"today_margin"`

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyCosts  decimal.Decimal `json:"monthly_costs"`
	MonthlyMargin decimal.Decimal `json:"monthly_margin"`

	// Últimos movimientos (ventas y compras mezcladas, más reciente primero)
	RecentActivity []ActivityDTO `json:"recent_activity"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// ActivityDTO entrada del feed de actividad reciente.
type ActivityDTO struct {
	Type        string          `json:"type"` // "sale" | "purchase"
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
