// Package rest provides HTTP handlers for catalog operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	catalogerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/service"
	"github.com/abgdnv/gocatalog/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type Handler struct {
	service  service.CatalogService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the catalog API with the provided service.
func NewHandler(service service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the catalog service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.FindPage)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// productResponse wraps a single product for GET /api/products/{id}.
type productResponse struct {
	StatusCode int                `json:"statusCode"`
	Product    service.ProductDto `json:"product"`
}

// mutationResponse is returned by create and update operations.
type mutationResponse struct {
	Message string             `json:"message"`
	Product service.ProductDto `json:"product"`
}

// deleteResponse is returned by a successful delete.
type deleteResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

// notFoundResponse is the body of every 404.
type notFoundResponse struct {
	Message    string `json:"message"`
	ProductID  int64  `json:"productId"`
	StatusCode int    `json:"statusCode"`
}

// FindPage retrieves one page of products.
func (h *Handler) FindPage(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	page, ok := web.ParseQueryInt(r, w, mLogger, "page", defaultPage)
	if !ok {
		return
	}
	pageSize, ok := web.ParseQueryInt(r, w, mLogger, "pageSize", defaultPageSize)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find products", "page", page, "pageSize", pageSize)
	productPage, err := h.service.FindPage(page, pageSize)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrInvalidPagination) {
			mLogger.WarnContext(r.Context(), "Invalid pagination parameters", "page", page, "pageSize", pageSize)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid pagination parameters provided.")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product page", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product page", "count", len(productPage.Products))
	web.RespondJSON(w, mLogger, http.StatusOK, productPage)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondJSON(w, mLogger, http.StatusNotFound, notFoundResponse{
				Message:    "Product with this id does not exist.",
				ProductID:  id,
				StatusCode: http.StatusNotFound,
			})
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %d", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, productResponse{
		StatusCode: http.StatusOK,
		Product:    *found,
	})
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var createDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&createDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", createDto)
	if !h.validateStruct(w, r, mLogger, createDto) {
		return
	}

	newProduct, err := h.service.Create(createDto)
	if err != nil {
		switch {
		case errors.Is(err, catalogerrors.ErrNegativePrice):
			mLogger.WarnContext(r.Context(), "Negative price rejected")
			web.RespondError(w, mLogger, http.StatusBadRequest, "Price cannot be a negative number.")
		case errors.Is(err, catalogerrors.ErrProductExists):
			mLogger.WarnContext(r.Context(), "Duplicate (name, brand) rejected", "Name", createDto.Name, "Brand", createDto.Brand)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Product with the same name and brand already exists.")
		default:
			mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", newProduct.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, mutationResponse{
		Message: "New product created successfully.",
		Product: *newProduct,
	})
}

// Update handles a partial update of an existing product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	var updateDto service.ProductUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&updateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, updateDto) {
		return
	}

	updated, err := h.service.Update(id, updateDto)
	if err != nil {
		switch {
		case errors.Is(err, catalogerrors.ErrProductNotFound):
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondJSON(w, mLogger, http.StatusNotFound, notFoundResponse{
				Message:    "Product with this id does not exist to update",
				ProductID:  id,
				StatusCode: http.StatusNotFound,
			})
		case errors.Is(err, catalogerrors.ErrNegativePrice):
			mLogger.WarnContext(r.Context(), "Negative price rejected for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Price to update cannot be a negative number.")
		case errors.Is(err, catalogerrors.ErrProductExists):
			mLogger.WarnContext(r.Context(), "Duplicate (name, brand) rejected for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusBadRequest, "Product with this updated name and brand already exists.")
		default:
			mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %d", id))
		}
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, mutationResponse{
		Message: fmt.Sprintf("Product with id %d updated successfully.", id),
		Product: *updated,
	})
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteByID(id); err != nil {
		if errors.Is(err, catalogerrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondJSON(w, mLogger, http.StatusNotFound, notFoundResponse{
				Message:    "Product with this id does not exist.",
				ProductID:  id,
				StatusCode: http.StatusNotFound,
			})
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %d", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusOK, deleteResponse{
		Message:   "Product deleted successfully.",
		ProductID: id,
	})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateStruct runs tag validation on the decoded DTO and writes the 400
// response itself when validation fails.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dto any) bool {
	if err := h.validate.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "max", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
