package sales

import (
	"context"

	"github.com/coffee-urbantech/pos-api/internal/domain/cart"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando
// repositorios atados a esa transacción. Garantiza que el commit de una
// venta sea todo-o-nada: o se descuenta el stock de TODAS las líneas y se
// guarda el registro histórico, o no se muta nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// CartStore guarda la venta en curso de cada usuario. El carrito es estado
// transitorio: se descarta en el commit o con un clear explícito, y nunca
// toca el inventario por sí mismo.
type CartStore interface {
	// Get devuelve el carrito del usuario; uno vacío si no existe.
	Get(ctx context.Context, userID string) (*cart.Cart, error)
	// Update aplica fn al carrito del usuario como una unidad atómica por
	// llave: dos peticiones concurrentes del mismo usuario no se pisan el
	// leer-modificar-escribir. Si fn devuelve error no se persiste nada.
	// fn puede reintentarse; debe operar solo sobre el carrito recibido.
	Update(ctx context.Context, userID string, fn func(c *cart.Cart) error) error
	Delete(ctx context.Context, userID string) error
}
