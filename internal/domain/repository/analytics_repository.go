package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityEntry entrada del feed de actividad reciente del dashboard.
type ActivityEntry struct {
	Type        string // "sale" | "purchase"
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos por ventas y costos por compras
	// en el rango de fechas dado (cero si no hay registros).
	GetSalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)

	// GetRecentActivity devuelve las últimas `limit` ventas y compras
	// mezcladas, más reciente primero.
	GetRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}
