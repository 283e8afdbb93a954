// Package sales contiene el carrito por usuario y el commit de ventas:
// el único camino por el que una venta en curso se vuelve historial
// inmutable y descuenta inventario.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/cart"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// SaleUseCase operaciones del carrito y commit de ventas.
type SaleUseCase struct {
	cartStore   CartStore
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	cartStore CartStore,
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *SaleUseCase {
	return &SaleUseCase{
		cartStore:   cartStore,
		txRunner:    txRunner,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// GetCart devuelve la venta en curso del usuario.
func (uc *SaleUseCase) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	c, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// AddItem agrega una unidad del producto al carrito del usuario. Si el
// producto ya está en el carrito se incrementa su cantidad; nunca se
// duplica la línea. Rechaza con ErrInsufficientStock sin modificar nada.
func (uc *SaleUseCase) AddItem(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	var out *dto.CartResponse
	err = uc.cartStore.Update(ctx, userID, func(c *cart.Cart) error {
		if err := c.AddItem(product); err != nil {
			return err
		}
		out = toCartResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeQuantity aplica delta a la línea del producto. Cantidad resultante
// <= 0 elimina la línea; por encima del stock rechaza con
// ErrInsufficientStock y el carrito queda intacto.
func (uc *SaleUseCase) ChangeQuantity(ctx context.Context, userID, productID string, delta int64) (*dto.CartResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	var out *dto.CartResponse
	err = uc.cartStore.Update(ctx, userID, func(c *cart.Cart) error {
		if err := c.ChangeQuantity(product, delta); err != nil {
			return err
		}
		out = toCartResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveItem elimina la línea del producto sin condición.
func (uc *SaleUseCase) RemoveItem(ctx context.Context, userID, productID string) (*dto.CartResponse, error) {
	var out *dto.CartResponse
	err := uc.cartStore.Update(ctx, userID, func(c *cart.Cart) error {
		c.Remove(productID)
		out = toCartResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearCart vacía la venta en curso sin tocar el inventario.
func (uc *SaleUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartStore.Delete(ctx, userID)
}

// CommitSale confirma la venta en curso: re-valida CADA línea contra el
// stock vivo antes de mutar, descuenta el stock de todas las líneas,
// crea el registro histórico con copias por valor y limpia el carrito.
//
// El commit es todo-o-nada: si alguna línea supera el stock (posible si
// otra venta consumió stock después del add), se rechaza completo con
// ErrInsufficientStock y el inventario no cambia.
func (uc *SaleUseCase) CommitSale(ctx context.Context, userID string) (*dto.SaleResponse, error) {
	c, err := uc.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      now,
		CreatedBy: userID,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Validar todas las líneas antes de descontar la primera
		for _, item := range c.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if item.Quantity > product.Stock {
				return domain.ErrInsufficientStock
			}
		}

		total := decimal.Zero
		for _, item := range c.Items {
			if err := productRepo.AdjustStockByID(item.ProductID, -item.Quantity); err != nil {
				return err
			}
			sale.Items = append(sale.Items, entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal,
			})
			total = total.Add(item.Subtotal)
		}
		sale.Total = total
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	_ = uc.cartStore.Delete(ctx, userID)
	return toSaleResponse(sale), nil
}

// List devuelve el historial de ventas, más reciente primero.
func (uc *SaleUseCase) List(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una venta del historial. Sin reversa de stock: las ventas
// son finales; solo desaparece el registro.
func (uc *SaleUseCase) Delete(id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(id)
}

func toCartResponse(c *cart.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.CartResponse{Items: items, Total: c.Total()}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:     s.ID,
		Number: s.Number,
		Date:   s.Date,
		Items:  items,
		Total:  s.Total,
	}
}
