package memory

import (
	"time"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// SaleRepository implementación en memoria de repository.SaleRepository.
type SaleRepository struct {
	store *Store
}

// NewSaleRepository crea el repositorio sobre el store dado.
func NewSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store}
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

// Create persiste la venta y asigna el consecutivo Number.
func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.saleSeq++
	sale.Number = r.store.saleSeq
	r.store.sales = append([]*entity.Sale{copySale(sale)}, r.store.sales...)
	return nil
}

func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.sales {
		if s.ID == id {
			return copySale(s), nil
		}
	}
	return nil, nil
}

func (r *SaleRepository) List(limit, offset int) ([]*entity.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]*entity.Sale, len(r.store.sales))
	for i, s := range r.store.sales {
		all[i] = copySale(s)
	}
	return paginate(all, limit, offset), nil
}

func (r *SaleRepository) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Sale, 0)
	for _, s := range r.store.sales {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, copySale(s))
		}
	}
	return out, nil
}

func (r *SaleRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.sales {
		if s.ID == id {
			r.store.sales = append(r.store.sales[:i], r.store.sales[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
