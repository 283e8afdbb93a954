// Package cart implementa el acumulador de la venta en curso: el conjunto
// transitorio de líneas que todavía no se confirma. No toca el inventario;
// solo lo consulta para rechazar cantidades por encima del stock disponible.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

// Item línea de la venta en curso. Congela nombre y precio al momento de
// agregar: un cambio de precio posterior no afecta la línea ya agregada.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Cart venta en curso. Serializable a JSON para poder guardarse en un
// CartStore externo (Redis) además del store en memoria.
type Cart struct {
	Items []Item `json:"items"`
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// find devuelve el índice de la línea del producto, o -1.
func (c *Cart) find(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem agrega una unidad del producto. Si ya existe una línea para ese
// producto incrementa su cantidad (nunca hay dos líneas del mismo producto).
// Rechaza con ErrInsufficientStock si la cantidad resultante supera el stock.
func (c *Cart) AddItem(p *entity.Product) error {
	if p == nil {
		return domain.ErrNotFound
	}
	if i := c.find(p.ID); i >= 0 {
		item := &c.Items[i]
		if item.Quantity+1 > p.Stock {
			return domain.ErrInsufficientStock
		}
		item.Quantity++
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		return nil
	}
	if p.Stock < 1 {
		return domain.ErrInsufficientStock
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Subtotal:  p.Price,
	})
	return nil
}

// ChangeQuantity aplica delta a la cantidad de la línea del producto.
// Resultado <= 0 elimina la línea; resultado > stock rechaza con
// ErrInsufficientStock dejando el carrito intacto. Si el producto no está
// en el carrito la operación es un no-op.
func (c *Cart) ChangeQuantity(p *entity.Product, delta int64) error {
	if p == nil {
		return domain.ErrNotFound
	}
	i := c.find(p.ID)
	if i < 0 {
		return nil
	}
	newQty := c.Items[i].Quantity + delta
	if newQty <= 0 {
		c.Remove(p.ID)
		return nil
	}
	if newQty > p.Stock {
		return domain.ErrInsufficientStock
	}
	item := &c.Items[i]
	item.Quantity = newQty
	item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(newQty))
	return nil
}

// Remove elimina la línea del producto sin condición.
func (c *Cart) Remove(productID string) {
	if i := c.find(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear vacía el carrito sin tocar el inventario (distinto de un commit).
func (c *Cart) Clear() {
	c.Items = nil
}

// IsEmpty indica si no hay líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total suma de subtotales. Pura, sin efectos.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Subtotal)
	}
	return total
}
