package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/purchases"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/memory"
)

const testUserID = "admin-1"

type fixture struct {
	store *memory.Store
	uc    *purchases.PurchaseUseCase
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	uc := purchases.NewPurchaseUseCase(
		memory.NewPurchaseTxRunner(store),
		memory.NewProductRepository(store),
		memory.NewPurchaseRepository(store),
	)
	return &fixture{store: store, uc: uc, ctx: context.Background()}
}

func (f *fixture) seedProduct(t *testing.T, name, price string, stock int64) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  entity.CategoryComida,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, memory.NewProductRepository(f.store).Create(p))
	return p
}

func (f *fixture) stockOf(t *testing.T, productID string) int64 {
	t.Helper()
	p, err := memory.NewProductRepository(f.store).GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// Comprar 10 aguacates a 5.00: total 50.00 y el stock sube en 10.
func TestRegister_SumaStockYGuardaHistorial(t *testing.T) {
	f := newFixture(t)
	aguacate := f.seedProduct(t, "Aguacate", "8.00", 5)

	out, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Supplier: "Frutas del Valle",
		Product:  "Aguacate",
		Quantity: "10",
		UnitCost: "5.00",
	})
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("50.00")), "10 x 5.00 = 50.00")
	assert.Equal(t, "Frutas del Valle", out.Supplier)
	assert.Equal(t, int64(15), f.stockOf(t, aguacate.ID), "el stock sube de 5 a 15")
}

// Sin costo unitario en el formulario se usa el precio de venta actual.
func TestRegister_CostoVacioUsaPrecioDeVenta(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Aguacate", "8.00", 5)

	out, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Product:  "Aguacate",
		Quantity: "3",
	})
	require.NoError(t, err)

	assert.True(t, out.UnitCost.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("24.00")))
	assert.Equal(t, entity.SupplierNA, out.Supplier, "proveedor vacío queda como N/A")
}

func TestRegister_ProductoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Product:  "No Existe",
		Quantity: "3",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "Aguacate", "8.00", 5)

	cases := []struct {
		name string
		in   dto.RegisterPurchaseRequest
	}{
		{"sin producto", dto.RegisterPurchaseRequest{Quantity: "3"}},
		{"cantidad vacía", dto.RegisterPurchaseRequest{Product: "Aguacate"}},
		{"cantidad cero", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "0"}},
		{"cantidad negativa", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "-2"}},
		{"cantidad no numérica", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "abc"}},
		{"cantidad fraccionaria", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "2.5"}},
		{"costo cero", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "3", UnitCost: "0"}},
		{"costo malformado", dto.RegisterPurchaseRequest{Product: "Aguacate", Quantity: "3", UnitCost: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Register(f.ctx, testUserID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidPurchase)
		})
	}

	// Nada de lo anterior debe haber tocado stock ni historial
	p, err := memory.NewProductRepository(f.store).FindByName("Aguacate")
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)
	list, err := f.uc.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

// Revertir una compra descuenta exactamente la cantidad comprada.
func TestDelete_RevierteStock(t *testing.T) {
	f := newFixture(t)
	aguacate := f.seedProduct(t, "Aguacate", "8.00", 5)

	out, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Product:  "Aguacate",
		Quantity: "10",
		UnitCost: "5.00",
	})
	require.NoError(t, err)
	require.Equal(t, int64(15), f.stockOf(t, aguacate.ID))

	require.NoError(t, f.uc.Delete(f.ctx, out.ID))

	assert.Equal(t, int64(5), f.stockOf(t, aguacate.ID), "vuelve al stock previo a la compra")
	list, err := f.uc.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

// Si ventas intermedias ya consumieron unidades, la reversa nunca deja
// stock negativo: se aplica clamp en cero.
func TestDelete_ReversaConClampEnCero(t *testing.T) {
	f := newFixture(t)
	aguacate := f.seedProduct(t, "Aguacate", "8.00", 0)

	out, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Product:  "Aguacate",
		Quantity: "5",
		UnitCost: "5.00",
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), f.stockOf(t, aguacate.ID))

	// Se venden 2 unidades por fuera de este flujo
	require.NoError(t, memory.NewProductRepository(f.store).AdjustStockByID(aguacate.ID, -2))
	require.Equal(t, int64(3), f.stockOf(t, aguacate.ID))

	require.NoError(t, f.uc.Delete(f.ctx, out.ID))

	assert.Equal(t, int64(0), f.stockOf(t, aguacate.ID), "3 - 5 se clampa en 0")
}

// Renombrar el producto después de la compra rompe el cruce por nombre:
// la reversa no encuentra coincidencia y el stock queda como está.
func TestDelete_ProductoRenombradoNoAjustaStock(t *testing.T) {
	f := newFixture(t)
	aguacate := f.seedProduct(t, "Aguacate", "8.00", 5)

	out, err := f.uc.Register(f.ctx, testUserID, dto.RegisterPurchaseRequest{
		Product:  "Aguacate",
		Quantity: "10",
		UnitCost: "5.00",
	})
	require.NoError(t, err)
	require.Equal(t, int64(15), f.stockOf(t, aguacate.ID))

	repo := memory.NewProductRepository(f.store)
	p, err := repo.GetByID(aguacate.ID)
	require.NoError(t, err)
	p.Name = "Aguacate Hass"
	require.NoError(t, repo.Update(p))

	require.NoError(t, f.uc.Delete(f.ctx, out.ID))

	assert.Equal(t, int64(15), f.stockOf(t, aguacate.ID),
		"sin coincidencia por nombre el ajuste es un no-op")
}

func TestDelete_CompraInexistente(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.uc.Delete(f.ctx, "no-existe"), domain.ErrNotFound)
}
