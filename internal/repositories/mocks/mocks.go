// Package mocks provides hand-written testify mocks of the repository
// interfaces for service-level tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepository) UpsertItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	if item, ok := args.Get(0).(*models.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (*models.CartItem, error) {
	args := m.Called(ctx, itemID)
	if item, ok := args.Get(0).(*models.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]*models.CartItem, error) {
	args := m.Called(ctx, cartID)
	if items, ok := args.Get(0).([]*models.CartItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, itemID, quantity)
	if item, ok := args.Get(0).(*models.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepository) ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error) {
	args := m.Called(ctx, opts)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error) {
	args := m.Called(ctx, categoryIDs, opts)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}
