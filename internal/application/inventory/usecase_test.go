package inventory_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/inventory"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/memory"
)

func newUseCase() (*inventory.ProductUseCase, *memory.Store) {
	store := memory.NewStore()
	return inventory.NewProductUseCase(memory.NewProductRepository(store)), store
}

func create(t *testing.T, uc *inventory.ProductUseCase, name, price, stock string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:  name,
		Price: price,
		Stock: stock,
	})
	require.NoError(t, err)
	return out
}

func TestCreate_ProductoValido(t *testing.T) {
	uc, _ := newUseCase()

	out := create(t, uc, "Café Americano", "2.50", "10")

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, int64(10), out.Stock)
	assert.Equal(t, "Otros", out.Category, "sin categoría explícita cae en Otros")
}

// La entrada numérica malformada se rechaza antes de mutar; nunca se
// coerciona a cero.
func TestCreate_EntradaNumericaInvalida(t *testing.T) {
	uc, _ := newUseCase()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Price: "2.50", Stock: "10"}},
		{"precio vacío", dto.CreateProductRequest{Name: "Café", Stock: "10"}},
		{"precio malformado", dto.CreateProductRequest{Name: "Café", Price: "abc", Stock: "10"}},
		{"precio negativo", dto.CreateProductRequest{Name: "Café", Price: "-1", Stock: "10"}},
		{"stock vacío", dto.CreateProductRequest{Name: "Café", Price: "2.50"}},
		{"stock negativo", dto.CreateProductRequest{Name: "Café", Price: "2.50", Stock: "-5"}},
		{"stock fraccionario", dto.CreateProductRequest{Name: "Café", Price: "2.50", Stock: "1.5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	list, err := uc.List("", false, 100, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "ninguna entrada inválida debe crear producto")
}

func TestCreate_NombreDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	create(t, uc, "Café Americano", "2.50", "10")

	_, err := uc.Create(dto.CreateProductRequest{Name: "Café Americano", Price: "3.00", Stock: "5"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// La búsqueda ignora mayúsculas y tildes: "cafe" encuentra "Café Americano".
func TestList_BusquedaSinTildes(t *testing.T) {
	uc, _ := newUseCase()
	create(t, uc, "Café Americano", "2.50", "10")
	create(t, uc, "Té Chai", "3.00", "5")
	create(t, uc, "Croissant", "1.80", "0")

	list, err := uc.List("cafe", false, 100, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Café Americano", list.Items[0].Name)

	list, err = uc.List("TÉ", false, 100, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Té Chai", list.Items[0].Name)
}

// availableOnly omite productos sin stock (pantalla de ventas).
func TestList_SoloDisponibles(t *testing.T) {
	uc, _ := newUseCase()
	create(t, uc, "Café Americano", "2.50", "10")
	create(t, uc, "Croissant", "1.80", "0")

	list, err := uc.List("", true, 100, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Café Americano", list.Items[0].Name)
}

// El filtro se aplica sobre el catálogo completo, no sobre una página:
// un producto que ordena después del límite pedido igual debe aparecer.
func TestList_BusquedaMasAllaDeLaPrimeraPagina(t *testing.T) {
	uc, _ := newUseCase()
	for i := 1; i <= 25; i++ {
		create(t, uc, fmt.Sprintf("Producto %02d", i), "1.00", "10")
	}
	create(t, uc, "Zanahoria", "0.50", "10") // ordena de último

	list, err := uc.List("zanahoria", false, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Zanahoria", list.Items[0].Name)
	assert.Equal(t, 1, list.Page.Total)
}

// La paginación corre sobre los resultados ya filtrados: páginas
// consecutivas no se saltan ni repiten coincidencias, y Total es el número
// de coincidencias del catálogo completo.
func TestList_PaginacionSobreResultadosFiltrados(t *testing.T) {
	uc, _ := newUseCase()
	for i := 1; i <= 30; i++ {
		create(t, uc, fmt.Sprintf("Café %02d", i), "1.00", "10")
	}
	for i := 1; i <= 5; i++ {
		create(t, uc, fmt.Sprintf("Arepa %02d", i), "1.00", "10")
	}

	first, err := uc.List("cafe", false, 10, 0)
	require.NoError(t, err)
	second, err := uc.List("cafe", false, 10, 10)
	require.NoError(t, err)

	require.Len(t, first.Items, 10)
	require.Len(t, second.Items, 10)
	assert.Equal(t, 30, first.Page.Total)
	assert.Equal(t, "Café 01", first.Items[0].Name)
	assert.Equal(t, "Café 11", second.Items[0].Name, "la segunda página continúa donde terminó la primera")
}

// availableOnly también filtra antes de paginar: el único producto con
// stock no puede quedar oculto detrás de una página de agotados.
func TestList_SoloDisponiblesMasAllaDeLaPagina(t *testing.T) {
	uc, _ := newUseCase()
	for i := 1; i <= 20; i++ {
		create(t, uc, fmt.Sprintf("Agotado %02d", i), "1.00", "0")
	}
	create(t, uc, "Zanahoria", "0.50", "5")

	list, err := uc.List("", true, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Zanahoria", list.Items[0].Name)
	assert.Equal(t, 1, list.Page.Total)
}

func TestUpdate_NoTocaStock(t *testing.T) {
	uc, _ := newUseCase()
	p := create(t, uc, "Café Americano", "2.50", "10")

	newPrice := "3.00"
	out, err := uc.Update(p.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(decimal.RequireFromString("3.00")))
	assert.Equal(t, int64(10), out.Stock, "el stock solo cambia por ventas y compras")
}

func TestUpdate_PrecioInvalidoRechaza(t *testing.T) {
	uc, _ := newUseCase()
	p := create(t, uc, "Café Americano", "2.50", "10")

	bad := "no-numérico"
	_, err := uc.Update(p.ID, dto.UpdateProductRequest{Price: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El producto conserva su precio original
	out, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("2.50")))
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Producto(t *testing.T) {
	uc, _ := newUseCase()
	p := create(t, uc, "Café Americano", "2.50", "10")

	require.NoError(t, uc.Delete(p.ID))
	_, err := uc.GetByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(p.ID), domain.ErrNotFound)
}
