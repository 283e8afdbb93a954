package repository

import "github.com/coffee-urbantech/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// AdjustStockByID / AdjustStockByName son el ÚNICO camino para mutar stock:
// aplican stock = max(stock + delta, 0) de forma atómica. El clamp en cero
// vive aquí y no en los callers para que ninguna reversa pueda dejar stock
// negativo. Las ventas cruzan por ID; las compras cruzan por NOMBRE
// (fragilidad heredada: renombrar un producto rompe la coincidencia con
// compras antiguas y el ajuste se vuelve un no-op).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// FindByName busca por nombre exacto (llave de cruce del flujo de
	// compras). Devuelve (nil, nil) si no hay coincidencia.
	FindByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	AdjustStockByID(id string, delta int64) error
	AdjustStockByName(name string, delta int64) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search lista los productos que cumplen el filtro, ordenados por
	// nombre, y el total de coincidencias sin paginar. El filtro se aplica
	// ANTES de Limit/Offset: una coincidencia nunca queda fuera por caer
	// en otra página del catálogo.
	Search(filter ProductFilter) ([]*entity.Product, int, error)
	Delete(id string) error
}

// ProductFilter criterios del listado de productos. Search es un substring
// comparado contra nombre y descripción sin distinguir mayúsculas ni
// tildes; vacío no filtra. AvailableOnly omite productos sin stock.
type ProductFilter struct {
	Search        string
	AvailableOnly bool
	Limit         int
	Offset        int
}
