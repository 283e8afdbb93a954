package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coffee-urbantech/pos-api/internal/application/purchases"
	"github.com/coffee-urbantech/pos-api/internal/application/sales"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

var _ sales.TxRunner = (*SaleTxRunner)(nil)
var _ purchases.TxRunner = (*PurchaseTxRunner)(nil)

// SaleTxRunner ejecuta el commit de una venta dentro de una transacción
// PostgreSQL: descuento de stock e inserción del registro histórico, todo o
// nada.
type SaleTxRunner struct {
	pool *pgxpool.Pool
}

// NewSaleTxRunner construye el runner con el pool.
func NewSaleTxRunner(pool *pgxpool.Pool) *SaleTxRunner {
	return &SaleTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *SaleTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PurchaseTxRunner ejecuta el alta o la reversa de una compra dentro de una
// transacción PostgreSQL.
type PurchaseTxRunner struct {
	pool *pgxpool.Pool
}

// NewPurchaseTxRunner construye el runner con el pool.
func NewPurchaseTxRunner(pool *pgxpool.Pool) *PurchaseTxRunner {
	return &PurchaseTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *PurchaseTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewPurchaseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
