package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shoply/api/internal/api/middleware"
	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	service "github.com/shoply/api/internal/services"
	"github.com/shoply/api/internal/utils"
	"github.com/shoply/api/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID := r.PathValue("userId")
		if userID == "" {
			response.Error(w, appErrors.BadRequestError("User ID is required"))
			return
		}

		cart, err := h.cartService.CreateCart(r.Context(), userID)
		if err != nil {
			logger.Error("Error during cart creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart created",
			slog.String("cartId", cart.ID.String()),
			slog.String("userId", userID))
		response.WriteJson(w, http.StatusCreated, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID, ok := parseUUID(w, r, "cartId", "Invalid cart id")
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		item, err := h.cartService.AddItem(r.Context(), cartID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart",
				slog.String("cartId", cartID.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart",
			slog.String("cartId", cartID.String()),
			slog.String("itemId", item.ID.String()),
			slog.Int("quantity", item.Quantity))
		response.WriteJson(w, http.StatusCreated, item)
	}
}

func (h *CartHandler) GetItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID, ok := parseUUID(w, r, "cartId", "Invalid cart id")
		if !ok {
			return
		}

		contents, err := h.cartService.GetCartItems(r.Context(), cartID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, contents)
	}
}

func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		itemID, ok := parseUUID(w, r, "itemId", "Invalid item id")
		if !ok {
			return
		}

		var req models.UpdateItemRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		item, err := h.cartService.UpdateItemQuantity(r.Context(), itemID, &req)
		if err != nil {
			logger.Warn("Failed to update cart item",
				slog.String("itemId", itemID.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, item)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		itemID, ok := parseUUID(w, r, "itemId", "Invalid item id")
		if !ok {
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), itemID); err != nil {
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseUUID(w http.ResponseWriter, r *http.Request, param, message string) (uuid.UUID, bool) {

	id, err := uuid.Parse(r.PathValue(param))
	if err != nil {
		response.Error(w, appErrors.BadRequestError(message))
		return uuid.Nil, false
	}

	return id, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dest any) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.WriteJson(w, http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.WriteJson(w, http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		}
		return false
	}

	return true
}
