// Package pagination computes page windows over an ordered collection.
// It is pure: no state, no synchronization.
package pagination

import "github.com/abgdnv/gocatalog/internal/catalog/errors"

// MaxPageSize is the hard upper bound on pageSize, guarding against
// unbounded result-set requests.
const MaxPageSize = 1000

// Window describes the slice of the collection selected by a page request.
// Offset and Limit are clipped to the collection bounds, so a page past the
// last one yields Limit == 0 rather than an error.
type Window struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
	TotalItems  int
	Offset      int
	Limit       int
}

// Paginate maps (totalItems, page, pageSize) to a Window.
// Returns ErrInvalidPagination if page < 1 or pageSize is outside [1, MaxPageSize].
func Paginate(totalItems, page, pageSize int) (Window, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return Window{}, errors.ErrInvalidPagination
	}

	totalPages := (totalItems + pageSize - 1) / pageSize

	// page has no upper bound, so the offset multiplication below would
	// overflow for pages far past the end. Those pages are all empty.
	if page > totalPages {
		return Window{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalPages:  totalPages,
			TotalItems:  totalItems,
			Offset:      totalItems,
			Limit:       0,
		}, nil
	}

	offset := (page - 1) * pageSize
	limit := pageSize
	if offset+limit > totalItems {
		limit = totalItems - offset
	}

	return Window{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Offset:      offset,
		Limit:       limit,
	}, nil
}
