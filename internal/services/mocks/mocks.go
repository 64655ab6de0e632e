// Package mocks provides hand-written testify mocks of the service
// interfaces for handler-level tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) CreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, req)
	if item, ok := args.Get(0).(*models.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartService) GetCartItems(ctx context.Context, cartID uuid.UUID) (*models.CartContents, error) {
	args := m.Called(ctx, cartID)
	if contents, ok := args.Get(0).(*models.CartContents); ok {
		return contents, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, itemID, req)
	if item, ok := args.Get(0).(*models.CartItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type ProductService struct {
	mock.Mock
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductService) ListProducts(ctx context.Context, opts models.ListOptions) ([]*models.Product, error) {
	args := m.Called(ctx, opts)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductService) ListProductsByCategories(ctx context.Context, categoryIDs []int64, opts models.ListOptions) ([]*models.Product, error) {
	args := m.Called(ctx, categoryIDs, opts)
	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*models.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}
