package service

import (
	"math"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/abgdnv/gocatalog/internal/catalog/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	products []store.Product
	product  store.Product
	error    error
	created  int
}

// Simulate finding all products
func (m *mockProductStore) FindAll() []store.Product {
	return m.products
}

// Simulate finding a product by ID
func (m *mockProductStore) FindByID(_ int64) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate the existence checks
func (m *mockProductStore) ExistsByID(_ int64) bool { return m.error == nil }

func (m *mockProductStore) ExistsByNameAndBrand(_, _ string) bool { return false }

// Simulate creating a product
func (m *mockProductStore) Create(_, _ string, _ decimal.Decimal) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	m.created++
	return &m.product, nil
}

// Simulate updating a product
func (m *mockProductStore) Update(_ int64, _, _ string, _ *decimal.Decimal) (*store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return &m.product, nil
}

// Simulate deleting a product by ID
func (m *mockProductStore) DeleteByID(_ int64) error {
	return m.error
}

func (m *mockProductStore) Count() int { return len(m.products) }

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func Test_CatalogService_FindByID(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		productID   int64
		expected    *ProductDto
		expectError error
	}{
		{
			name: "Success - product found",
			mockStore: &mockProductStore{
				product: store.Product{ID: 1, Name: "Product 1", Brand: "Brand A", Price: decimal.NewFromInt(100)},
			},
			productID: 1,
			expected:  &ProductDto{ID: 1, Name: "Product 1", Brand: "Brand A", Price: decimal.NewFromInt(100)},
		},
		{
			name: "Error - product not found",
			mockStore: &mockProductStore{
				error: catalogerrors.ErrProductNotFound,
			},
			productID:   999,
			expected:    nil,
			expectError: catalogerrors.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindByID(tc.productID)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_CatalogService_FindPage(t *testing.T) {
	seeded := []store.Product{
		{ID: 1, Name: "Product 1", Brand: "Brand A", Price: decimal.NewFromInt(100)},
		{ID: 2, Name: "Product 2", Brand: "Brand B", Price: decimal.NewFromInt(150)},
	}
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		page        int
		pageSize    int
		expected    *ProductPageDto
		expectError error
	}{
		{
			name:      "Success - both products on one page in insertion order",
			mockStore: &mockProductStore{products: seeded},
			page:      1,
			pageSize:  10,
			expected: &ProductPageDto{
				PageSize:    10,
				CurrentPage: 1,
				TotalPages:  1,
				TotalItems:  2,
				Products: []ProductDto{
					{ID: 1, Name: "Product 1", Brand: "Brand A", Price: decimal.NewFromInt(100)},
					{ID: 2, Name: "Product 2", Brand: "Brand B", Price: decimal.NewFromInt(150)},
				},
			},
		},
		{
			name:      "Success - page past the end is empty, not an error",
			mockStore: &mockProductStore{products: seeded},
			page:      3,
			pageSize:  10,
			expected: &ProductPageDto{
				PageSize:    10,
				CurrentPage: 3,
				TotalPages:  1,
				TotalItems:  2,
				Products:    []ProductDto{},
			},
		},
		{
			name:      "Success - maximum page number is empty, not an error",
			mockStore: &mockProductStore{products: seeded},
			page:      math.MaxInt,
			pageSize:  1000,
			expected: &ProductPageDto{
				PageSize:    1000,
				CurrentPage: math.MaxInt,
				TotalPages:  1,
				TotalItems:  2,
				Products:    []ProductDto{},
			},
		},
		{
			name:        "Error - page below 1",
			mockStore:   &mockProductStore{products: seeded},
			page:        0,
			pageSize:    10,
			expectError: catalogerrors.ErrInvalidPagination,
		},
		{
			name:        "Error - pageSize above the upper bound",
			mockStore:   &mockProductStore{products: seeded},
			page:        1,
			pageSize:    1001,
			expectError: catalogerrors.ErrInvalidPagination,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			pageDto, err := service.FindPage(tc.page, tc.pageSize)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, pageDto)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, pageDto)
		})
	}
}

func Test_CatalogService_Create(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		dto         ProductCreateDto
		expectError error
	}{
		{
			name: "Success - product created",
			mockStore: &mockProductStore{
				product: store.Product{ID: 4, Name: "Product 4", Brand: "Brand D", Price: decimal.NewFromInt(10)},
			},
			dto: ProductCreateDto{Name: "Product 4", Brand: "Brand D", Price: price(10)},
		},
		{
			name:        "Error - negative price never reaches the store",
			mockStore:   &mockProductStore{},
			dto:         ProductCreateDto{Name: "X", Brand: "Y", Price: price(-10)},
			expectError: catalogerrors.ErrNegativePrice,
		},
		{
			name:        "Error - absent price never reaches the store",
			mockStore:   &mockProductStore{},
			dto:         ProductCreateDto{Name: "X", Brand: "Y"},
			expectError: catalogerrors.ErrNegativePrice,
		},
		{
			name:        "Error - duplicate (name, brand)",
			mockStore:   &mockProductStore{error: catalogerrors.ErrProductExists},
			dto:         ProductCreateDto{Name: "Product 1", Brand: "Brand A", Price: price(100)},
			expectError: catalogerrors.ErrProductExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			created, err := service.Create(tc.dto)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, created)
				assert.Zero(t, tc.mockStore.created, "store must be unchanged on rejection")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), created.ID)
		})
	}
}

func Test_CatalogService_Update(t *testing.T) {
	testCases := []struct {
		name        string
		mockStore   *mockProductStore
		id          int64
		dto         ProductUpdateDto
		expectError error
	}{
		{
			name: "Success - price-only update",
			mockStore: &mockProductStore{
				product: store.Product{ID: 1, Name: "Product 1", Brand: "Brand A", Price: decimal.NewFromInt(150)},
			},
			id:  1,
			dto: ProductUpdateDto{Price: price(150)},
		},
		{
			name:        "Error - negative price never reaches the store",
			mockStore:   &mockProductStore{},
			id:          1,
			dto:         ProductUpdateDto{Price: price(-1)},
			expectError: catalogerrors.ErrNegativePrice,
		},
		{
			name:        "Error - product not found",
			mockStore:   &mockProductStore{error: catalogerrors.ErrProductNotFound},
			id:          999,
			dto:         ProductUpdateDto{Name: "Whatever"},
			expectError: catalogerrors.ErrProductNotFound,
		},
		{
			name:        "Error - rename collides with another product",
			mockStore:   &mockProductStore{error: catalogerrors.ErrProductExists},
			id:          1,
			dto:         ProductUpdateDto{Name: "Product 2", Brand: "Brand B"},
			expectError: catalogerrors.ErrProductExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			updated, err := service.Update(tc.id, tc.dto)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, updated.ID)
			assert.True(t, updated.Price.Equal(decimal.NewFromInt(150)))
		})
	}
}

func Test_CatalogService_DeleteByID(t *testing.T) {
	// given
	service := NewService(&mockProductStore{error: catalogerrors.ErrProductNotFound})
	// when
	err := service.DeleteByID(999)
	// then
	assert.ErrorIs(t, err, catalogerrors.ErrProductNotFound)
}
