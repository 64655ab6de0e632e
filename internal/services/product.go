package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shoply/api/internal/cache"
	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	repository "github.com/shoply/api/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error)
	ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error)
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	cache      cache.Cache
	cacheTTL   time.Duration
	sanitizer  *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository, productCache cache.Cache, cacheTTL time.Duration) ProductService {
	return &productService{
		repo:       repo,
		categories: categories,
		cache:      productCache,
		cacheTTL:   cacheTTL,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		CategoryID:  req.CategoryID,
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Inventory:   req.Inventory,
		TaxRate:     req.TaxRate,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	if s.cache != nil {
		product := &models.Product{}

		hit, err := s.cache.Get(ctx, cacheKey, product)
		if err != nil {
			slog.Warn("Product cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return product, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, product, s.cacheTTL); err != nil {
			slog.Warn("Product cache write failed", slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = s.sanitizer.Sanitize(*req.Name)
	}
	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}
	if req.TaxRate != nil {
		product.TaxRate = *req.TaxRate
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	if s.cache != nil {
		cacheKey := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))
		if err := s.cache.Delete(ctx, cacheKey); err != nil {
			slog.Warn("Product cache invalidation failed", slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error) {

	opts, err := normalizeListOptions(opts)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx, opts)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error) {

	if len(categoryIDs) == 0 {
		return nil, appErrors.MissingParameterError("Missing required parameter: categories")
	}

	opts, err := normalizeListOptions(opts)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.ListProductsByCategories(ctx, categoryIDs, opts)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

// checkCategoryExists resolves the category through the cache first; only a
// positive result is cached, a miss in the store is always re-checked.
func (s *productService) checkCategoryExists(ctx context.Context, categoryID int64) error {

	cacheKey := cache.Key(cache.CategoryKeyPrefix, strconv.FormatInt(categoryID, 10))

	if s.cache != nil {
		category := &models.Category{}

		hit, err := s.cache.Get(ctx, cacheKey, category)
		if err != nil {
			slog.Warn("Category cache read failed", slog.String("error", err.Error()))
		} else if hit {
			return nil
		}
	}

	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError(fmt.Sprintf("Category with id %d not found", categoryID)).WithError(err)
		}
		return appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}

	if s.cache != nil {
		// ttl 0 falls back to the cache's default.
		if err := s.cache.Set(ctx, cacheKey, category, 0); err != nil {
			slog.Warn("Category cache write failed", slog.String("error", err.Error()))
		}
	}

	return nil
}

func normalizeListOptions(opts models.ListOptions) (models.ListOptions, error) {

	if opts.SortField != "" && !repository.IsSortableProductColumn(opts.SortField) {
		return opts, appErrors.ValidationError(fmt.Sprintf("Invalid sort field: %s", opts.SortField))
	}

	return opts.Normalized(), nil
}
