package memory

import (
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
	"github.com/coffee-urbantech/pos-api/pkg/normalize"
)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	store *Store
}

// NewProductRepository crea el repositorio sobre el store dado.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.products[product.ID] = copyProduct(product)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (r *ProductRepository) FindByName(name string) (*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.products {
		if p.Name == name {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := copyProduct(product)
	// El stock solo se mueve por AdjustStockBy*: Update no lo pisa.
	updated.Stock = current.Stock
	r.store.products[product.ID] = updated
	return nil
}

func (r *ProductRepository) AdjustStockByID(id string, delta int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = clampStock(p.Stock + delta)
	return nil
}

// AdjustStockByName ajusta el stock del producto con ese nombre exacto.
// Si ningún producto coincide (por ejemplo tras un rename) es un no-op.
func (r *ProductRepository) AdjustStockByName(name string, delta int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.Name == name {
			p.Stock = clampStock(p.Stock + delta)
			return nil
		}
	}
	return nil
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	all := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		all = append(all, copyProduct(p))
	}
	sortProductsByName(all)
	return paginate(all, limit, offset), nil
}

// Search recorre el catálogo completo aplicando el filtro y recién después
// pagina: una coincidencia fuera de la página pedida cuenta en el total y
// aparece en su página.
func (r *ProductRepository) Search(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	matched := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if filter.AvailableOnly && p.Stock <= 0 {
			continue
		}
		if filter.Search != "" &&
			!normalize.ContainsFold(p.Name, filter.Search) &&
			!normalize.ContainsFold(p.Description, filter.Search) {
			continue
		}
		matched = append(matched, copyProduct(p))
	}
	sortProductsByName(matched)
	return paginate(matched, filter.Limit, filter.Offset), len(matched), nil
}

func (r *ProductRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

func clampStock(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
