package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shoply/api/internal/api/middleware"
	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	service "github.com/shoply/api/internal/services"
	"github.com/shoply/api/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.Int64("productId", product.ID))
		response.WriteJson(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseInt64(w, r, "id", "Invalid product id")
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseInt64(w, r, "id", "Invalid product id")
		if !ok {
			return
		}

		var req models.UpdateProductRequest
		if !decodeAndValidate(w, r, h.validator, &req) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error during product update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.Int64("productId", product.ID))
		response.WriteJson(w, http.StatusOK, product)
	}
}

// for eg: GET /api/products?limit=10&offset=20&sort=price,DESC
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context(), parseListOptions(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) ListProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseInt64(w, r, "id", "Invalid category id")
		if !ok {
			return
		}

		products, err := h.productService.ListProductsByCategories(r.Context(), []int64{id}, parseListOptions(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

// for eg: GET /api/products/categories?categories=1,2,3
func (h *ProductHandler) ListProductsByCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var categoryIDs []int64

		raw := r.URL.Query().Get("categories")
		if raw != "" {
			for _, part := range strings.Split(raw, ",") {
				id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
				if err != nil {
					response.Error(w, appErrors.BadRequestError(fmt.Sprintf("Invalid category id: %s", part)))
					return
				}
				categoryIDs = append(categoryIDs, id)
			}
		}

		products, err := h.productService.ListProductsByCategories(r.Context(), categoryIDs, parseListOptions(r))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func parseInt64(w http.ResponseWriter, r *http.Request, param, message string) (int64, bool) {

	id, err := strconv.ParseInt(r.PathValue(param), 10, 64)
	if err != nil {
		response.Error(w, appErrors.BadRequestError(message))
		return 0, false
	}

	return id, true
}

// parseListOptions reads limit, offset and sort=field[,ASC|DESC] query
// parameters. Unknown values fall back to the defaults; sort field validity
// is checked by the service.
func parseListOptions(r *http.Request) models.ListOptions {

	opts := models.ListOptions{}

	opts.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	opts.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	if sort := r.URL.Query().Get("sort"); sort != "" {
		field, dir, found := strings.Cut(sort, ",")
		opts.SortField = strings.TrimSpace(field)
		if found && strings.EqualFold(strings.TrimSpace(dir), models.SortDesc) {
			opts.SortDir = models.SortDesc
		}
	}

	return opts
}
