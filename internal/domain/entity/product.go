package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto del menú.
const (
	CategoryBebidas = "Bebidas"
	CategoryComida  = "Comida"
	CategoryPostres = "Postres"
	CategoryOtros   = "Otros"
)

// Product representa un producto del inventario con su stock vivo.
// Stock nunca es negativo: toda mutación pasa por AdjustStock del
// repositorio, que aplica el clamp en cero de forma centralizada.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de adquisición (puede ser cero si no se conoce)
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
