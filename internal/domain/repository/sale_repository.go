package repository

import (
	"time"

	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el historial de ventas.
// Las ventas son inmutables una vez creadas: no hay Update.
type SaleRepository interface {
	// Create persiste la venta con sus líneas y asigna el consecutivo
	// monotónico Number sobre la entidad recibida.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas con sus líneas, más reciente primero.
	List(limit, offset int) ([]*entity.Sale, error)
	// ListByDateRange devuelve las ventas cuyo Date cae en [from, to].
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
	// Delete elimina el registro histórico. No tiene reversa de stock:
	// las ventas se consideran finales.
	Delete(id string) error
}
