// Package purchases contiene el registro de compras a proveedor y su
// reversa: eliminar una compra descuenta del stock la cantidad comprada,
// con clamp en cero.
package purchases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// PurchaseUseCase registro, listado y reversa de compras.
type PurchaseUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Register valida el formulario de compra, suma la cantidad al stock del
// producto (cruce por NOMBRE) y crea el registro histórico, todo en una
// transacción.
//
// Si el formulario no trae costo unitario se usa el precio de venta actual
// del producto como costo. Es una regla de negocio heredada; no se cambia
// sin confirmación del negocio.
func (uc *PurchaseUseCase) Register(ctx context.Context, userID string, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	productName := strings.TrimSpace(in.Product)
	if productName == "" {
		return nil, domain.ErrInvalidPurchase
	}
	quantity, err := parseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.FindByName(productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	unitCost, err := resolveUnitCost(in.UnitCost, product)
	if err != nil {
		return nil, err
	}

	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" {
		supplier = entity.SupplierNA
	}

	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		Supplier:  supplier,
		Product:   productName,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Total:     unitCost.Mul(decimal.NewFromInt(quantity)),
		Date:      time.Now(),
		CreatedBy: userID,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := productRepo.AdjustStockByName(purchase.Product, purchase.Quantity); err != nil {
			return err
		}
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// Delete revierte una compra: descuenta del stock la cantidad comprada
// (clamp en cero si ventas intermedias ya la consumieron) y elimina el
// registro. Si el producto fue renombrado después de la compra, el ajuste
// por nombre no encuentra coincidencia y el stock queda como está.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := productRepo.AdjustStockByName(purchase.Product, -purchase.Quantity); err != nil {
			return err
		}
		return purchaseRepo.Delete(id)
	})
}

// List devuelve el historial de compras, más reciente primero.
func (uc *PurchaseUseCase) List(limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// parseQuantity parsea una cantidad entera estrictamente positiva.
func parseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, domain.ErrInvalidPurchase
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.IntPart() <= 0 {
		return 0, domain.ErrInvalidPurchase
	}
	return d.IntPart(), nil
}

// resolveUnitCost devuelve el costo unitario: el del formulario si viene
// (debe ser > 0), o el precio de venta actual del producto si no.
func resolveUnitCost(s string, product *entity.Product) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return product.Price, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, domain.ErrInvalidPurchase
	}
	return d, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:       p.ID,
		Supplier: p.Supplier,
		Product:  p.Product,
		Quantity: p.Quantity,
		UnitCost: p.UnitCost,
		Total:    p.Total,
		Date:     p.Date,
	}
}
