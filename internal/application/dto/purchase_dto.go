package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest entrada del formulario de compras.
// Product es el NOMBRE del producto (el formulario de compras selecciona
// por nombre). Quantity y UnitCost llegan como texto y se parsean con
// validación explícita; UnitCost vacío usa el precio de venta actual del
// producto como costo (regla de negocio heredada, no un bug).
type RegisterPurchaseRequest struct {
	Supplier string `json:"supplier"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	UnitCost string `json:"unit_cost"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID       string          `json:"id"`
	Supplier string          `json:"supplier"`
	Product  string          `json:"product"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Total    decimal.Decimal `json:"total"`
	Date     time.Time       `json:"date"`
}

// PurchaseListResponse historial de compras paginado, más reciente primero.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
