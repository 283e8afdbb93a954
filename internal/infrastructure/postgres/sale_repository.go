package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con
// pool o tx). Las líneas viven en sale_items con FK a sales.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y sus líneas. El consecutivo Number lo asigna
// la secuencia de la tabla y se devuelve sobre la entidad.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sales (id, date, total, created_by, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 RETURNING number`,
		sale.ID, sale.Date, sale.Total, sale.CreatedBy,
	).Scan(&sale.Number)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range sale.Items {
		item := &sale.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.SaleID = sale.ID
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO sale_items (id, sale_id, product_id, name, unit_price, quantity, subtotal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, item.SaleID, item.ProductID, item.Name,
			item.UnitPrice, item.Quantity, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT id, number, date, total, created_by FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.Number, &s.Date, &s.Total, &s.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List devuelve ventas con sus líneas, más reciente primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	return r.list(
		`SELECT id, number, date, total, created_by
		 FROM sales ORDER BY number DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
}

// ListByDateRange devuelve las ventas cuyo Date cae en [from, to].
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	return r.list(
		`SELECT id, number, date, total, created_by
		 FROM sales WHERE date BETWEEN $1 AND $2 ORDER BY number DESC`,
		from, to,
	)
}

// Delete elimina la venta y sus líneas (FK ON DELETE CASCADE). No revierte stock.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Number, &s.Date, &s.Total, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range list {
		items, err := r.itemsFor(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) itemsFor(saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, product_id, name, unit_price, quantity, subtotal
		 FROM sale_items WHERE sale_id = $1 ORDER BY name`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Name,
			&it.UnitPrice, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
