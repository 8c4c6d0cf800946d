// Package store provides an interface for product storage operations.
package store

import "github.com/shopspring/decimal"

// Product represents a product entity in the store.
// ID is assigned by the store on creation and never changes afterwards.
type Product struct {
	ID    int64
	Name  string
	Brand string
	Price decimal.Decimal
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
//
// Implementations must keep each operation atomic with respect to all others:
// the duplicate check of Create, the collision check of Update and the
// existence check of DeleteByID may not interleave with concurrent mutations.
type ProductStore interface {
	// FindAll returns a snapshot of all live products in insertion order.
	// The returned slice does not alias internal state.
	FindAll() []Product

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id int64) (*Product, error)

	// ExistsByID reports whether a product with the given ID is live.
	ExistsByID(id int64) bool

	// ExistsByNameAndBrand reports whether a live product already carries
	// the exact (name, brand) pair. Comparison is case-sensitive.
	ExistsByNameAndBrand(name, brand string) bool

	// Create adds a new product, assigning it the next free identifier.
	// Returns ErrProductExists if the (name, brand) pair is already taken.
	Create(name, brand string, price decimal.Decimal) (*Product, error)

	// Update modifies an existing product in place. An empty name or brand
	// and a nil price mean "leave unchanged". Returns ErrProductNotFound if
	// no product exists with the given ID, or ErrProductExists if the
	// effective (name, brand) pair collides with a different product.
	Update(id int64, name, brand string, price *decimal.Decimal) (*Product, error)

	// DeleteByID removes a product by its ID. The identifier is retired and
	// never handed out again. Returns ErrProductNotFound if no product
	// exists with the given ID.
	DeleteByID(id int64) error

	// Count returns the number of live products.
	Count() int
}
