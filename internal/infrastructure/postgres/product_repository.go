package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
	"github.com/coffee-urbantech/pos-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, category, price, cost, stock, created_at, updated_at`

// Create persiste un producto nuevo. name_folded y description_folded
// guardan el texto plegado (minúsculas, sin tildes) para que Search filtre
// en SQL sin depender de extensiones como unaccent.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, category, price, cost, stock, created_at, updated_at, name_folded, description_folded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.Cost, product.Stock, product.CreatedAt, product.UpdatedAt,
		normalize.Fold(product.Name), normalize.Fold(product.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByName busca por nombre exacto (llave de cruce del flujo de compras).
func (r *ProductRepo) FindByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// Update actualiza los datos del producto. El stock no se toca aquí: solo
// se mueve por AdjustStockByID / AdjustStockByName.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, price = $5, cost = $6, updated_at = $7,
		    name_folded = $8, description_folded = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.Cost, product.UpdatedAt,
		normalize.Fold(product.Name), normalize.Fold(product.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStockByID aplica stock = GREATEST(stock + delta, 0) de forma atómica.
func (r *ProductRepo) AdjustStockByID(id string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = GREATEST(stock + $2, 0), updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStockByName igual que AdjustStockByID pero cruzando por nombre
// exacto. Sin coincidencia es un no-op (el producto pudo ser renombrado o
// eliminado después de la compra).
func (r *ProductRepo) AdjustStockByName(name string, delta int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = GREATEST(stock + $2, 0), updated_at = now() WHERE name = $1`,
		name, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock by name: %w", err)
	}
	return nil
}

// List lista productos ordenados por nombre con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Cost, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

const productSearchWhere = `
	WHERE ($1 = '' OR name_folded LIKE '%' || $1 || '%' OR description_folded LIKE '%' || $1 || '%')
	  AND (NOT $2 OR stock > 0)`

// Search filtra en SQL, antes de LIMIT/OFFSET, para que una coincidencia
// nunca quede fuera por caer en otra página. Devuelve también el total de
// coincidencias sin paginar.
func (r *ProductRepo) Search(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	ctx := context.Background()
	folded := normalize.Fold(filter.Search)

	var total int
	countQuery := `SELECT COUNT(*) FROM products` + productSearchWhere
	if err := r.q.QueryRow(ctx, countQuery, folded, filter.AvailableOnly).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + productSearchWhere +
		` ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, folded, filter.AvailableOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Cost, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Delete elimina el producto. El historial de ventas y compras no se toca.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Cost, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
