package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/reports"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/memory"
)

type fixture struct {
	store *memory.Store
	uc    *reports.ReportUseCase
	ctx   context.Context
}

func newFixture() *fixture {
	store := memory.NewStore()
	uc := reports.NewReportUseCase(
		memory.NewSaleRepository(store),
		memory.NewPurchaseRepository(store),
		memory.NewProductRepository(store),
		nil,
	)
	return &fixture{store: store, uc: uc, ctx: context.Background()}
}

func (f *fixture) seedProduct(t *testing.T, name, category, cost string, stock int64) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Price:     decimal.RequireFromString("1.00"),
		Cost:      decimal.RequireFromString(cost),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, memory.NewProductRepository(f.store).Create(p))
	return p
}

func (f *fixture) seedSale(t *testing.T, date time.Time, items ...entity.SaleItem) {
	t.Helper()
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	sale := &entity.Sale{
		ID:    uuid.New().String(),
		Date:  date,
		Items: items,
		Total: total,
	}
	require.NoError(t, memory.NewSaleRepository(f.store).Create(sale))
}

func saleItem(productID, name, unitPrice string, qty int64) entity.SaleItem {
	price := decimal.RequireFromString(unitPrice)
	return entity.SaleItem{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      name,
		UnitPrice: price,
		Quantity:  qty,
		Subtotal:  price.Mul(decimal.NewFromInt(qty)),
	}
}

func (f *fixture) seedPurchase(t *testing.T, date time.Time, product, total string) {
	t.Helper()
	require.NoError(t, memory.NewPurchaseRepository(f.store).Create(&entity.Purchase{
		ID:      uuid.New().String(),
		Product: product,
		Total:   decimal.RequireFromString(total),
		Date:    date,
	}))
}

func TestGenerate_ResumenFinanciero(t *testing.T) {
	f := newFixture()
	cafe := f.seedProduct(t, "Café Americano", entity.CategoryBebidas, "0.80", 20)
	now := time.Now()

	f.seedSale(t, now, saleItem(cafe.ID, cafe.Name, "2.50", 2)) // 5.00
	f.seedSale(t, now, saleItem(cafe.ID, cafe.Name, "2.50", 1)) // 2.50
	f.seedPurchase(t, now, "Café Americano", "3.00")

	report, err := f.uc.Generate(f.ctx, dto.PeriodToday)
	require.NoError(t, err)

	s := report.Summary
	assert.True(t, s.TotalRevenue.Equal(decimal.RequireFromString("7.50")))
	assert.True(t, s.TotalCosts.Equal(decimal.RequireFromString("3.00")))
	assert.Equal(t, 2, s.TotalTransactions)
	assert.True(t, s.AvgTicket.Equal(decimal.RequireFromString("3.75")))
	assert.True(t, s.NetProfit.Equal(decimal.RequireFromString("4.50")))
	assert.True(t, s.ProfitMargin.Equal(decimal.RequireFromString("60.0")), "margen 4.50 / 7.50")
}

func TestGenerate_PeriodoInvalido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Generate(f.ctx, "quarter")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Las ventas de fuera del período no cuentan.
func TestGenerate_FiltraPorPeriodo(t *testing.T) {
	f := newFixture()
	cafe := f.seedProduct(t, "Café Americano", entity.CategoryBebidas, "0.80", 20)
	now := time.Now()

	f.seedSale(t, now, saleItem(cafe.ID, cafe.Name, "2.50", 1))
	f.seedSale(t, now.AddDate(0, 0, -30), saleItem(cafe.ID, cafe.Name, "2.50", 4))

	report, err := f.uc.Generate(f.ctx, dto.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.TotalTransactions)
	assert.True(t, report.Summary.TotalRevenue.Equal(decimal.RequireFromString("2.50")))
}

// Las líneas de productos ya eliminados del inventario se agrupan en Otros.
func TestGenerate_VentasPorCategoria(t *testing.T) {
	f := newFixture()
	cafe := f.seedProduct(t, "Café Americano", entity.CategoryBebidas, "0.80", 20)
	now := time.Now()

	f.seedSale(t, now,
		saleItem(cafe.ID, cafe.Name, "2.50", 2),            // 5.00 Bebidas
		saleItem("borrado", "Brownie Retirado", "3.00", 1), // 3.00 sin producto vivo
	)

	report, err := f.uc.Generate(f.ctx, dto.PeriodToday)
	require.NoError(t, err)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, entity.CategoryBebidas, report.ByCategory[0].Category, "ordenado por ingreso desc")
	assert.True(t, report.ByCategory[0].Revenue.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, entity.CategoryOtros, report.ByCategory[1].Category)
	assert.True(t, report.ByCategory[1].Revenue.Equal(decimal.RequireFromString("3.00")))
}

// El top de productos agrega por el nombre congelado en el historial.
func TestGenerate_TopProductos(t *testing.T) {
	f := newFixture()
	cafe := f.seedProduct(t, "Café Americano", entity.CategoryBebidas, "0.80", 20)
	te := f.seedProduct(t, "Té Chai", entity.CategoryBebidas, "0.50", 10)
	now := time.Now()

	f.seedSale(t, now, saleItem(cafe.ID, cafe.Name, "2.50", 4)) // 10.00
	f.seedSale(t, now, saleItem(te.ID, te.Name, "3.00", 1))     // 3.00

	report, err := f.uc.Generate(f.ctx, dto.PeriodToday)
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Café Americano", report.TopProducts[0].Name)
	assert.Equal(t, int64(4), report.TopProducts[0].Quantity)
	assert.Equal(t, "Té Chai", report.TopProducts[1].Name)
}

// Estado del inventario: < 8 Crítico, < 16 Bajo, resto Normal; valorado
// al costo.
func TestGenerate_EstadoDelInventario(t *testing.T) {
	f := newFixture()
	f.seedProduct(t, "Azúcar", entity.CategoryOtros, "2.00", 3)
	f.seedProduct(t, "Café en grano", entity.CategoryOtros, "10.00", 12)
	f.seedProduct(t, "Vasos", entity.CategoryOtros, "0.10", 200)

	report, err := f.uc.Generate(f.ctx, dto.PeriodToday)
	require.NoError(t, err)

	require.Len(t, report.InventoryRows, 3)
	byName := map[string]dto.InventoryRowDTO{}
	for _, r := range report.InventoryRows {
		byName[r.Name] = r
	}
	assert.Equal(t, dto.StockStatusCritico, byName["Azúcar"].Status)
	assert.Equal(t, dto.StockStatusBajo, byName["Café en grano"].Status)
	assert.Equal(t, dto.StockStatusNormal, byName["Vasos"].Status)
	assert.True(t, byName["Café en grano"].Value.Equal(decimal.RequireFromString("120.00")),
		"12 unidades x 10.00 de costo")
}

func TestGeneratePDF_SinGenerador(t *testing.T) {
	f := newFixture()
	_, err := f.uc.GeneratePDF(f.ctx, dto.PeriodToday)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
