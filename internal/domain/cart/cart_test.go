package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/cart"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

func producto(id, name string, price string, stock int64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

// Agregar dos veces el mismo producto incrementa la cantidad de la línea;
// nunca se duplica la línea.
func TestAddItem_MismoProductoIncrementaCantidad(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café Americano", "2.50", 10)

	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))

	require.Len(t, c.Items, 1, "no debe haber dos líneas del mismo producto")
	assert.Equal(t, int64(2), c.Items[0].Quantity)
	assert.True(t, c.Items[0].Subtotal.Equal(decimal.RequireFromString("5.00")),
		"subtotal debe ser precio x cantidad")
}

// La línea congela nombre y precio al momento de agregar.
func TestAddItem_CongelaNombreYPrecio(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café Americano", "2.50", 10)
	require.NoError(t, c.AddItem(p))

	// Cambios posteriores al producto no afectan la línea
	p.Name = "Café Renombrado"
	p.Price = decimal.RequireFromString("9.99")

	assert.Equal(t, "Café Americano", c.Items[0].Name)
	assert.True(t, c.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
}

func TestAddItem_SinStockRechaza(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Croissant", "1.80", 0)

	err := c.AddItem(p)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, c.IsEmpty(), "el carrito debe quedar intacto")
}

func TestAddItem_PorEncimaDelStockRechaza(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Croissant", "1.80", 2)

	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))
	err := c.AddItem(p)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), c.Items[0].Quantity, "la cantidad no debe cambiar")
}

// Cantidad resultante <= 0 elimina la línea en vez de dejar cantidad negativa.
func TestChangeQuantity_CeroONegativoEliminaLinea(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café Americano", "2.50", 10)
	require.NoError(t, c.AddItem(p))

	require.NoError(t, c.ChangeQuantity(p, -1))
	assert.True(t, c.IsEmpty())

	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.ChangeQuantity(p, -5))
	assert.True(t, c.IsEmpty())
}

func TestChangeQuantity_PorEncimaDelStockRechaza(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café Americano", "2.50", 3)
	require.NoError(t, c.AddItem(p))

	err := c.ChangeQuantity(p, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(1), c.Items[0].Quantity, "el carrito debe quedar intacto")
}

// Ajustar un producto que no está en el carrito es un no-op.
func TestChangeQuantity_ProductoAusenteNoOp(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café Americano", "2.50", 10)

	require.NoError(t, c.ChangeQuantity(p, 3))
	assert.True(t, c.IsEmpty())
}

func TestTotal_SumaSubtotales(t *testing.T) {
	c := cart.New()
	cafe := producto("p1", "Café Americano", "2.50", 10)
	croissant := producto("p2", "Croissant", "1.80", 10)

	require.NoError(t, c.AddItem(cafe))
	require.NoError(t, c.AddItem(cafe))
	require.NoError(t, c.AddItem(croissant))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("6.80")),
		"2 x 2.50 + 1 x 1.80 = 6.80")
}

func TestClear_VaciaSinTocarNada(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(producto("p1", "Café Americano", "2.50", 10)))

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}
