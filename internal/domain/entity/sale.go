package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es la copia por valor de una línea de venta al momento del commit.
// Guarda nombre y precio del producto en ese instante: ediciones posteriores
// del producto no alteran el historial.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
	Subtotal  decimal.Decimal
}

// Sale es el registro histórico inmutable de una venta confirmada.
// Number es un consecutivo monotónico asignado por el repositorio al
// persistir; ID es el identificador estable del registro.
type Sale struct {
	ID        string
	Number    int64
	Date      time.Time
	Items     []SaleItem
	Total     decimal.Decimal
	CreatedBy string
}
