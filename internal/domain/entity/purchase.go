package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierNA valor por defecto cuando el formulario no indica proveedor.
const SupplierNA = "N/A"

// Purchase es el registro histórico de una compra a proveedor. A diferencia
// de las ventas, una compra sí tiene reversa: al eliminarla se descuenta del
// stock la misma cantidad, con clamp en cero.
//
// Product es el NOMBRE del producto al momento de la compra, no su ID: el
// flujo de compras cruza por nombre. Si el producto se renombra después,
// la reversa deja de encontrar coincidencia y no ajusta stock (fragilidad
// conocida del flujo de compras).
type Purchase struct {
	ID        string
	Supplier  string
	Product   string
	Quantity  int64
	UnitCost  decimal.Decimal
	Total     decimal.Decimal
	Date      time.Time
	CreatedBy string
}
