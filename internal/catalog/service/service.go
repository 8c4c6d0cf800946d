// Package service provides the implementation of catalog business logic.
package service

import (
	"fmt"

	"github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/pagination"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
	"github.com/shopspring/decimal"
)

// CatalogService defines the methods for managing catalog products.
// It abstracts the underlying business logic and data access.
type CatalogService interface {
	// FindPage returns one page of products in insertion order.
	// Returns ErrInvalidPagination if page or pageSize is out of range.
	FindPage(page, pageSize int) (*ProductPageDto, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id int64) (*ProductDto, error)

	// Create adds a new product to the catalog.
	// Returns ErrNegativePrice for a price below zero and ErrProductExists
	// when the (name, brand) pair is already taken.
	Create(product ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product. Empty name/brand and nil price
	// mean "leave unchanged". Returns ErrProductNotFound, ErrNegativePrice
	// or ErrProductExists accordingly.
	Update(id int64, product ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(id int64) error
}

// Service implements CatalogService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Brand string          `json:"brand"`
	Price decimal.Decimal `json:"price"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Price is a pointer so that an absent field is distinguishable from zero.
type ProductCreateDto struct {
	Name  string           `json:"name"  validate:"required,max=100"`
	Brand string           `json:"brand" validate:"required,max=100"`
	Price *decimal.Decimal `json:"price" validate:"required"`
}

// ProductUpdateDto represents the data transfer object for a partial update.
// An empty name or brand and a nil price keep the current value.
type ProductUpdateDto struct {
	Name  string           `json:"name"  validate:"omitempty,max=100"`
	Brand string           `json:"brand" validate:"omitempty,max=100"`
	Price *decimal.Decimal `json:"price"`
}

// ProductPageDto represents one page of products along with pagination details.
type ProductPageDto struct {
	PageSize    int          `json:"pageSize"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalItems  int          `json:"totalItems"`
	Products    []ProductDto `json:"products"`
}

// FindPage retrieves one page of products and returns it as a ProductPageDto.
// The page window is computed over a single snapshot of the store, so the
// item count and the returned slice are always consistent with each other.
func (s *Service) FindPage(page, pageSize int) (*ProductPageDto, error) {
	products := s.repository.FindAll()

	window, err := pagination.Paginate(len(products), page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to paginate products: %w", err)
	}

	pageItems := products[window.Offset : window.Offset+window.Limit]
	productDTOs := make([]ProductDto, len(pageItems))
	for i, item := range pageItems {
		productDTOs[i] = *toDto(&item)
	}

	return &ProductPageDto{
		PageSize:    window.PageSize,
		CurrentPage: window.CurrentPage,
		TotalPages:  window.TotalPages,
		TotalItems:  window.TotalItems,
		Products:    productDTOs,
	}, nil
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(id int64) (*ProductDto, error) {
	product, err := s.repository.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}

	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
// The store is left untouched when a precondition fails.
func (s *Service) Create(product ProductCreateDto) (*ProductDto, error) {
	if product.Price == nil || product.Price.IsNegative() {
		return nil, fmt.Errorf("failed to create product: %w", errors.ErrNegativePrice)
	}

	p, err := s.repository.Create(product.Name, product.Brand, *product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update modifies an existing product and returns the updated ProductDto.
func (s *Service) Update(id int64, product ProductUpdateDto) (*ProductDto, error) {
	if product.Price != nil && product.Price.IsNegative() {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, errors.ErrNegativePrice)
	}

	updated, err := s.repository.Update(id, product.Name, product.Brand, product.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(id int64) error {
	return s.repository.DeleteByID(id)
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:    product.ID,
		Name:  product.Name,
		Brand: product.Brand,
		Price: product.Price,
	}
}
