package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	repository "github.com/shoply/api/internal/repositories"
)

type CartService interface {
	CreateCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.CartItem, error)
	GetCartItems(ctx context.Context, cartID uuid.UUID) (*models.CartContents, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.CartItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

// CreateCart opens a new cart for the given user. The user id is an opaque
// value; a user may hold any number of carts.
func (s *cartService) CreateCart(ctx context.Context, userID string) (*models.Cart, error) {

	cart := &models.Cart{
		ID:     uuid.New(),
		UserID: userID,
	}

	if err := s.carts.CreateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// AddItem validates the requested quantity against the product's current
// inventory, then inserts the item or merges it into the existing row for
// the same product. The inventory check covers the requested quantity only,
// not the quantity already held in the cart.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddItemRequest) (*models.CartItem, error) {

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.Inventory < req.Quantity {
		return nil, appErrors.InsufficientInventoryError("Not enough inventory available")
	}

	item, err := s.carts.UpsertItem(ctx, cartID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return item, nil
}

// GetCartItems returns every item of the cart joined with its product, with
// per-item subtotal and tax attached, plus the aggregate summary. An empty
// cart yields an empty item list and a zero summary.
func (s *cartService) GetCartItems(ctx context.Context, cartID uuid.UUID) (*models.CartContents, error) {

	items, err := s.carts.ListItems(ctx, cartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	contents := &models.CartContents{Items: items}

	for _, item := range items {
		item.Subtotal = item.Product.Price * float64(item.Quantity)
		item.Tax = item.Subtotal * item.Product.TaxRate

		contents.Summary.Subtotal += item.Subtotal
		contents.Summary.TotalTax += item.Tax
	}

	contents.Summary.Total = contents.Summary.Subtotal + contents.Summary.TotalTax

	return contents, nil
}

// UpdateItemQuantity sets the item's quantity to the requested value.
// Quantity equal to the product's inventory is allowed.
func (s *cartService) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, req *models.UpdateItemRequest) (*models.CartItem, error) {

	item, err := s.carts.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	if item.Product.Inventory < req.Quantity {
		return nil, appErrors.InsufficientInventoryError("Not enough inventory available")
	}

	updated, err := s.carts.UpdateItemQuantity(ctx, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	updated.Product = item.Product

	return updated, nil
}

// RemoveItem hard-deletes the item. Removing an id that does not resolve
// fails, so the operation is not idempotent.
func (s *cartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {

	if err := s.carts.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found").WithError(err)
		}
		return appErrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return nil
}
