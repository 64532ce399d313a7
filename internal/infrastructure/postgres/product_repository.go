package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Todas las lecturas aplanan el nombre de la categoría vía JOIN.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.img_url, p.img_url_local,
	p.sku, p.stock, p.creation_date, p.update_date, p.category_id, c.name`

const productSelect = `
	SELECT ` + productColumns + `
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// Create persiste un nuevo producto. Devuelve domain.ErrDuplicate si el nombre
// o el SKU ya existen.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, img_url, img_url_local,
			sku, stock, creation_date, update_date, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price,
		product.ImgURL, product.ImgURLLocal, product.SKU, product.Stock,
		product.CreationDate, product.UpdateDate, product.CategoryID,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de la categoría aplanado.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id)
	return scanProduct(row)
}

// GetByName obtiene un producto por nombre (sin mayúsculas ni espacios laterales).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(),
		productSelect+` WHERE lower(btrim(p.name)) = $1`, name)
	return scanProduct(row)
}

// GetBySKU obtiene un producto por SKU exacto.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(), productSelect+` WHERE p.sku = $1`, sku)
	return scanProduct(row)
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.query(productSelect + ` ORDER BY p.name`)
}

// ListPaged devuelve la página pedida ordenada por id ascendente.
// page y pageSize ya vienen validados (>= 1) por la capa superior.
func (r *ProductRepo) ListPaged(page, pageSize int) ([]*entity.Product, error) {
	offset := (page - 1) * pageSize
	return r.query(productSelect+` ORDER BY p.id LIMIT $1 OFFSET $2`, pageSize, offset)
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count() (int, error) {
	var total int
	err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListByCategory devuelve los productos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	return r.query(productSelect+` WHERE p.category_id = $1 ORDER BY p.name`, categoryID)
}

// Search busca el término en nombre y descripción, sin distinguir mayúsculas.
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	pattern := "%" + term + "%"
	return r.query(productSelect+`
		WHERE lower(p.name) LIKE $1 OR lower(p.description) LIKE $1
		ORDER BY p.name`, pattern)
}

// Update actualiza un producto existente (reemplazo completo salvo creation_date).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, img_url = $5,
			img_url_local = $6, sku = $7, stock = $8, update_date = $9, category_id = $10
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.ImgURL, product.ImgURLLocal, product.SKU, product.Stock,
		product.UpdateDate, product.CategoryID,
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

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Exists informa si existe un producto con el ID dado.
func (r *ProductRepo) Exists(id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return exists, nil
}

// ExistsInCategory informa si la categoría tiene al menos un producto.
func (r *ProductRepo) ExistsInCategory(categoryID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check products in category: %w", err)
	}
	return exists, nil
}

// DecrementStock descuenta qty de forma atómica: una sola sentencia condicional,
// sin ventana entre lectura y escritura. Devuelve false si no hubo fila con
// stock suficiente.
func (r *ProductRepo) DecrementStock(ctx context.Context, name string, qty int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE products SET stock = stock - $2, update_date = now()
		WHERE lower(btrim(name)) = $1 AND stock >= $2`, name, qty)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ProductRepo) query(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImgURL, &p.ImgURLLocal,
		&p.SKU, &p.Stock, &p.CreationDate, &p.UpdateDate, &p.CategoryID, &p.CategoryName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

func scanProductRow(rows pgx.Rows) (*entity.Product, error) {
	var p entity.Product
	err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImgURL, &p.ImgURLLocal,
		&p.SKU, &p.Stock, &p.CreationDate, &p.UpdateDate, &p.CategoryID, &p.CategoryName,
	)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
