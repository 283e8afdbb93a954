package memory

import (
	"time"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// PurchaseRepository implementación en memoria de repository.PurchaseRepository.
type PurchaseRepository struct {
	store *Store
}

// NewPurchaseRepository crea el repositorio sobre el store dado.
func NewPurchaseRepository(store *Store) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

func (r *PurchaseRepository) Create(purchase *entity.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.purchases = append([]*entity.Purchase{copyPurchase(purchase)}, r.store.purchases...)
	return nil
}

func (r *PurchaseRepository) GetByID(id string) (*entity.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.purchases {
		if p.ID == id {
			return copyPurchase(p), nil
		}
	}
	return nil, nil
}

func (r *PurchaseRepository) List(limit, offset int) ([]*entity.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]*entity.Purchase, len(r.store.purchases))
	for i, p := range r.store.purchases {
		all[i] = copyPurchase(p)
	}
	return paginate(all, limit, offset), nil
}

func (r *PurchaseRepository) ListByDateRange(from, to time.Time) ([]*entity.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Purchase, 0)
	for _, p := range r.store.purchases {
		if !p.Date.Before(from) && !p.Date.After(to) {
			out = append(out, copyPurchase(p))
		}
	}
	return out, nil
}

func (r *PurchaseRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, p := range r.store.purchases {
		if p.ID == id {
			r.store.purchases = append(r.store.purchases[:i], r.store.purchases[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
