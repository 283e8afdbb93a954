package purchases

import (
	"context"

	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios del flujo de compras. El alta y la reversa de una compra
// mutan stock e historial juntos o no mutan nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
