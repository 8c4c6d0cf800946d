package store

import (
	"sync"

	"github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an insertion-ordered slice.
//
// A single RWMutex serializes every operation. Writers hold the exclusive
// lock for the whole check-then-mutate sequence, which is what upholds the
// (name, brand) uniqueness invariant under concurrent requests. No operation
// blocks while holding the lock.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
	nextID   int64
}

// noExclusion is the excludeID passed to collides when no record should be
// skipped. Identifiers start at 1, so 0 never matches a live product.
const noExclusion int64 = 0

// NewInMemoryStore creates a new empty instance of ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		nextID: 1,
	}
}

// FindAll returns a copy of the product list in insertion order.
func (s *inMemory) FindAll() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// ExistsByID checks whether a product with the given ID is live.
func (s *inMemory) ExistsByID(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(id) >= 0
}

// ExistsByNameAndBrand checks whether the (name, brand) pair is taken.
func (s *inMemory) ExistsByNameAndBrand(name, brand string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collides(name, brand, noExclusion)
}

// Create creates a new product and returns it.
func (s *inMemory) Create(name, brand string, price decimal.Decimal) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collides(name, brand, noExclusion) {
		return nil, errors.ErrProductExists
	}

	product := Product{
		ID:    s.nextID,
		Name:  name,
		Brand: brand,
		Price: price,
	}
	s.nextID++
	s.products = append(s.products, product)

	return &product, nil
}

// Update mutates an existing product in place, keeping its ID and position.
// Empty name/brand and nil price leave the current value untouched.
func (s *inMemory) Update(id int64, name, brand string, price *decimal.Decimal) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}

	updated := s.products[i]
	if name != "" {
		updated.Name = name
	}
	if brand != "" {
		updated.Brand = brand
	}
	if price != nil {
		updated.Price = *price
	}

	// The record itself is excluded: renaming is only a conflict when the
	// effective (name, brand) belongs to a different product.
	if s.collides(updated.Name, updated.Brand, id) {
		return nil, errors.ErrProductExists
	}

	s.products[i] = updated
	return &updated, nil
}

// DeleteByID deletes a product by its ID. The ID is never reused: nextID
// only ever moves forward.
func (s *inMemory) DeleteByID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.ErrProductNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// Count returns the number of live products.
func (s *inMemory) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

// indexOf returns the position of the product with the given ID, or -1.
// Callers must hold the lock.
func (s *inMemory) indexOf(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// collides reports whether a product other than excludeID carries the exact
// (name, brand) pair. Callers must hold the lock.
func (s *inMemory) collides(name, brand string, excludeID int64) bool {
	for _, p := range s.products {
		if p.ID != excludeID && p.Name == name && p.Brand == brand {
			return true
		}
	}
	return false
}
