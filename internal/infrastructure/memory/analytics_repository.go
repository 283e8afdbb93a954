package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// AnalyticsRepository calcula las métricas del dashboard recorriendo el
// historial de ventas y compras del store.
type AnalyticsRepository struct {
	store *Store
}

// NewAnalyticsRepository crea el repositorio sobre el store dado.
func NewAnalyticsRepository(store *Store) *AnalyticsRepository {
	return &AnalyticsRepository{store: store}
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

func (r *AnalyticsRepository) GetSalesMetrics(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	revenue := decimal.Zero
	for _, s := range r.store.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			revenue = revenue.Add(s.Total)
		}
	}
	cost := decimal.Zero
	for _, p := range r.store.purchases {
		if !p.Date.Before(from) && !p.Date.After(to) {
			cost = cost.Add(p.Total)
		}
	}
	return revenue, cost, nil
}

func (r *AnalyticsRepository) GetRecentActivity(ctx context.Context, limit int) ([]repository.ActivityEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]repository.ActivityEntry, 0, len(r.store.sales)+len(r.store.purchases))
	for _, s := range r.store.sales {
		entries = append(entries, repository.ActivityEntry{
			Type:        "sale",
			Date:        s.Date,
			Description: fmt.Sprintf("Venta #%d (%d productos)", s.Number, len(s.Items)),
			Amount:      s.Total,
		})
	}
	for _, p := range r.store.purchases {
		entries = append(entries, repository.ActivityEntry{
			Type:        "purchase",
			Date:        p.Date,
			Description: fmt.Sprintf("Compra: %d x %s", p.Quantity, p.Product),
			Amount:      p.Total,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
