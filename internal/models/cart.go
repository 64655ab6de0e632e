package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Product   *Product  `json:"product,omitempty"`

	// Populated on cart listing only. Always serialized there, a zero
	// subtotal or tax is still part of the line.
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
}

type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	TotalTax float64 `json:"total_tax"`
	Total    float64 `json:"total"`
}

// CartContents is the response shape of a cart listing: every item joined
// with its product plus the aggregate summary.
type CartContents struct {
	Items   []*CartItem `json:"items"`
	Summary CartSummary `json:"summary"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}
