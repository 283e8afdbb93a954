package repository

import (
	"time"

	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para el historial de compras.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// List devuelve compras más reciente primero.
	List(limit, offset int) ([]*entity.Purchase, error)
	ListByDateRange(from, to time.Time) ([]*entity.Purchase, error)
	Delete(id string) error
}
