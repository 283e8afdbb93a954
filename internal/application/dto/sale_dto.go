package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest entrada para agregar una unidad de producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// ChangeCartQuantityRequest entrada para ajustar la cantidad de una línea.
// Delta puede ser negativo; si la cantidad resultante es <= 0 la línea se
// elimina.
type ChangeCartQuantityRequest struct {
	Delta int64 `json:"delta"`
}

// CartItemResponse línea del carrito en curso.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito en curso con su total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// SaleItemResponse línea histórica de una venta.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID     string             `json:"id"`
	Number int64              `json:"number"`
	Date   time.Time          `json:"date"`
	Items  []SaleItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

// SaleListResponse historial de ventas paginado, más reciente primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
