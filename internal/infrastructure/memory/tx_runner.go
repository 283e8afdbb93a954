package memory

import (
	"context"

	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// Los TxRunner en memoria emulan transacciones con snapshot/rollback: se
// copia el estado del store antes de ejecutar fn y se restaura completo si
// fn falla. Un mutex propio serializa las transacciones, así que dos
// commits concurrentes nunca se pisan.

// SaleTxRunner implementa sales.TxRunner sobre el store en memoria.
type SaleTxRunner struct {
	store *Store
}

// NewSaleTxRunner crea el runner de ventas sobre el store dado.
func NewSaleTxRunner(store *Store) *SaleTxRunner {
	return &SaleTxRunner{store: store}
}

// Run ejecuta fn con los repositorios del flujo de ventas. Si fn devuelve
// error, el estado del store queda exactamente como antes de la llamada.
func (r *SaleTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	snap := r.store.takeSnapshot()
	if err := fn(NewProductRepository(r.store), NewSaleRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// PurchaseTxRunner implementa purchases.TxRunner sobre el store en memoria.
type PurchaseTxRunner struct {
	store *Store
}

// NewPurchaseTxRunner crea el runner de compras sobre el store dado.
func NewPurchaseTxRunner(store *Store) *PurchaseTxRunner {
	return &PurchaseTxRunner{store: store}
}

// Run ejecuta fn con los repositorios del flujo de compras, con la misma
// semántica de rollback que el runner de ventas.
func (r *PurchaseTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	snap := r.store.takeSnapshot()
	if err := fn(NewProductRepository(r.store), NewPurchaseRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
