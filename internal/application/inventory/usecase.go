// Package inventory contiene los casos de uso del libro de inventario:
// el CRUD de productos y sus reglas de validación. El stock NO se edita
// por aquí; solo cambia vía ventas, compras y reversas.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// parseMoney parsea un decimal no negativo. Texto vacío no es válido
// cuando required es true; si no, vale cero. Nunca se coerciona entrada
// malformada a 0: eso corrompería precio o stock.
func parseMoney(s string, required bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}

// parseStock parsea una cantidad entera no negativa.
func parseStock(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, domain.ErrInvalidInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || !d.IsInteger() {
		return 0, domain.ErrInvalidInput
	}
	return d.IntPart(), nil
}

// Create valida y crea un producto nuevo. Toda la entrada numérica se
// valida antes de tocar el repositorio (all-or-nothing).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := parseMoney(in.Price, true)
	if err != nil {
		return nil, err
	}
	cost, err := parseMoney(in.Cost, false)
	if err != nil {
		return nil, err
	}
	stock, err := parseStock(in.Stock)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByName(strings.TrimSpace(in.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := in.Category
	if category == "" {
		category = entity.CategoryOtros
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    category,
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos descriptivos y de precio de un producto.
// No modifica Stock. Renombrar un producto rompe el cruce por nombre con
// las compras ya registradas (comportamiento heredado, ver entity.Purchase).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		price, err := parseMoney(*in.Price, true)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if in.Cost != nil {
		cost, err := parseMoney(*in.Cost, false)
		if err != nil {
			return nil, err
		}
		product.Cost = cost
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación y búsqueda por substring sin
// distinguir mayúsculas ni tildes ("cafe" encuentra "Café Americano").
// Con availableOnly se omiten productos sin stock (pantalla de ventas).
// El repositorio filtra antes de paginar: Total es el número de
// coincidencias del catálogo completo, no el tamaño de la página.
func (uc *ProductUseCase) List(search string, availableOnly bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.Search(repository.ProductFilter{
		Search:        strings.TrimSpace(search),
		AvailableOnly: availableOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un producto por ID. No toca el historial: las ventas y
// compras guardan copias por valor de nombre y precio.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
