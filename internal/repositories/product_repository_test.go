package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shoply/api/internal/models"
	repository "github.com/shoply/api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewProductRepo(db), mock
}

var productColumns = []string{
	"id", "category_id", "name", "description", "price",
	"inventory", "tax_rate", "created_at", "updated_at",
	"id", "name", "description", "created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, id, categoryID int64, name string, price float64, inventory int, taxRate float64, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, categoryID, name, "", price, inventory, taxRate, now, now,
		categoryID, "Category", "", now, now)
}

func TestProductRepositoryCreateProduct(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	product := &models.Product{
		CategoryID: 3,
		Name:       "Kettle",
		Price:      40,
		Inventory:  2,
		TaxRate:    0.1,
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery("INSERT INTO products").
			WithArgs(product.CategoryID, product.Name, product.Description, product.Price, product.Inventory, product.TaxRate).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(5), now, now))

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(5), product.ID)
	})
}

func TestProductRepositoryGetProductByID(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	t.Run("Success - Category joined", func(t *testing.T) {
		// Arrange
		rows := productRow(sqlmock.NewRows(productColumns), 5, 3, "Kettle", 40, 2, 0.1, now)
		mock.ExpectQuery("SELECT (.+) FROM products p LEFT JOIN categories c").
			WithArgs(int64(5)).
			WillReturnRows(rows)

		// Act
		product, err := repo.GetProductByID(ctx, 5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Kettle", product.Name)
		assert.Equal(t, 0.1, product.TaxRate)
		require.NotNil(t, product.Category)
		assert.Equal(t, int64(3), product.Category.ID)
	})

	t.Run("Failure - No rows", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery("SELECT (.+) FROM products p LEFT JOIN categories c").
			WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, 5)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestProductRepositoryListProducts(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	t.Run("Success - Sort and pagination applied", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows(productColumns)
		productRow(rows, 2, 3, "B", 50, 1, 0.1, now)
		productRow(rows, 1, 3, "A", 40, 2, 0.1, now)
		mock.ExpectQuery("SELECT (.+) FROM products p LEFT JOIN categories c (.+) ORDER BY p.price DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(10, 20).
			WillReturnRows(rows)

		opts := models.ListOptions{Limit: 10, Offset: 20, SortField: "price", SortDir: models.SortDesc}

		// Act
		products, err := repo.ListProducts(ctx, opts)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(2), products[0].ID)
	})

	t.Run("Failure - Query error", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WillReturnError(errors.New("connection reset"))

		// Act
		products, err := repo.ListProducts(ctx, models.ListOptions{Limit: 10, SortField: "id", SortDir: models.SortAsc})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestProductRepositoryListProductsByCategories(t *testing.T) {
	repo, mock := setupProductRepoTest(t)
	ctx := t.Context()

	now := time.Now()

	t.Run("Success - Set membership on category ids", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows(productColumns)
		productRow(rows, 1, 1, "A", 40, 2, 0.1, now)
		productRow(rows, 2, 2, "B", 50, 1, 0.1, now)
		mock.ExpectQuery("SELECT (.+) WHERE p.category_id = ANY\\(\\$1\\)").
			WithArgs(pq.Array([]int64{1, 2}), 20, 0).
			WillReturnRows(rows)

		opts := models.ListOptions{Limit: 20, SortField: "id", SortDir: models.SortAsc}

		// Act
		products, err := repo.ListProductsByCategories(ctx, []int64{1, 2}, opts)

		// Assert
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}

func TestIsSortableProductColumn(t *testing.T) {
	assert.True(t, repository.IsSortableProductColumn("price"))
	assert.True(t, repository.IsSortableProductColumn("created_at"))
	assert.False(t, repository.IsSortableProductColumn("tax_rate; DROP TABLE products"))
	assert.False(t, repository.IsSortableProductColumn(""))
}
