package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devuelve ingresos por ventas y costos por compras del
// rango. Usa COALESCE para devolver cero si no hay filas en el período.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	from, to time.Time,
) (revenue, cost decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(total) FROM sales     WHERE date BETWEEN $1 AND $2), 0) AS revenue,
	    COALESCE((SELECT SUM(total) FROM purchases WHERE date BETWEEN $1 AND $2), 0) AS cost`

	err = r.pool.QueryRow(ctx, query, from, to).Scan(&revenue, &cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, cost, nil
}

// GetRecentActivity mezcla las últimas ventas y compras, más reciente primero.
func (r *AnalyticsRepo) GetRecentActivity(ctx context.Context, limit int) ([]repository.ActivityEntry, error) {
	const query = `
	SELECT type, date, description, amount FROM (
	    SELECT 'sale' AS type, s.date,
	           'Venta #' || s.number || ' (' ||
	               (SELECT COUNT(*) FROM sale_items si WHERE si.sale_id = s.id) || ' productos)' AS description,
	           s.total AS amount
	    FROM sales s
	    UNION ALL
	    SELECT 'purchase' AS type, p.date,
	           'Compra: ' || p.quantity || ' x ' || p.product AS description,
	           p.total AS amount
	    FROM purchases p
	) activity
	ORDER BY date DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetRecentActivity: %w", err)
	}
	defer rows.Close()

	var entries []repository.ActivityEntry
	for rows.Next() {
		var e repository.ActivityEntry
		if err := rows.Scan(&e.Type, &e.Date, &e.Description, &e.Amount); err != nil {
			return nil, fmt.Errorf("analytics.GetRecentActivity scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
