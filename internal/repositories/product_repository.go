package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shoply/api/internal/models"
	"github.com/shoply/api/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error)
	ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error)
}

// Columns products may be sorted by. Anything else is rejected before the
// field is interpolated into the query.
var sortableProductColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"price":      true,
	"inventory":  true,
	"created_at": true,
}

func IsSortableProductColumn(field string) bool {
	return sortableProductColumns[field]
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (category_id, name, description, price, inventory, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.Inventory, product.TaxRate).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.category_id, p.name, p.description, p.price,
		       p.inventory, p.tax_rate, p.created_at, p.updated_at,
		       c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1
	`

	product := &models.Product{}
	category := &models.Category{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price,
		&product.Inventory, &product.TaxRate, &product.CreatedAt, &product.UpdatedAt,
		&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	product.Category = category

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, inventory = $5, tax_rate = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.Inventory, product.TaxRate, product.ID).
		Scan(&product.UpdatedAt)
}

func (r *productRepository) ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT p.id, p.category_id, p.name, p.description, p.price,
		       p.inventory, p.tax_rate, p.created_at, p.updated_at,
		       c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.%s %s
		LIMIT $1 OFFSET $2
	`, opts.SortField, opts.SortDir)

	rows, err := r.DB.QueryContext(dbCtx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return scanProductRows(rows)
}

func (r *productRepository) ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT p.id, p.category_id, p.name, p.description, p.price,
		       p.inventory, p.tax_rate, p.created_at, p.updated_at,
		       c.id, c.name, c.description, c.created_at, c.updated_at
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.category_id = ANY($1)
		ORDER BY p.%s %s
		LIMIT $2 OFFSET $3
	`, opts.SortField, opts.SortDir)

	rows, err := r.DB.QueryContext(dbCtx, query, pq.Array(categoryIDs), opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return scanProductRows(rows)
}

func scanProductRows(rows *sql.Rows) ([]*models.Product, error) {

	products := []*models.Product{}

	for rows.Next() {
		product := &models.Product{}
		category := &models.Category{}

		err := rows.Scan(
			&product.ID, &product.CategoryID, &product.Name, &product.Description, &product.Price,
			&product.Inventory, &product.TaxRate, &product.CreatedAt, &product.UpdatedAt,
			&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, err
		}

		product.Category = category
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
