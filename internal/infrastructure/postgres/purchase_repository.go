package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx). La columna product guarda el NOMBRE del producto
// al momento de la compra, no un FK.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, supplier, product, quantity, unit_cost, total, date, created_by`

func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, supplier, product, quantity, unit_cost, total, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Supplier, purchase.Product, purchase.Quantity,
		purchase.UnitCost, purchase.Total, purchase.Date, purchase.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(),
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id,
	).Scan(&p.ID, &p.Supplier, &p.Product, &p.Quantity, &p.UnitCost, &p.Total, &p.Date, &p.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	return r.list(
		`SELECT `+purchaseColumns+` FROM purchases ORDER BY date DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
}

func (r *PurchaseRepo) ListByDateRange(from, to time.Time) ([]*entity.Purchase, error) {
	return r.list(
		`SELECT `+purchaseColumns+` FROM purchases WHERE date BETWEEN $1 AND $2 ORDER BY date DESC`,
		from, to,
	)
}

func (r *PurchaseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepo) list(query string, args ...any) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Supplier, &p.Product, &p.Quantity,
			&p.UnitCost, &p.Total, &p.Date, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
