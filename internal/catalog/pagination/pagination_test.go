package pagination

import (
	"math"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/catalog/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Paginate(t *testing.T) {
	testCases := []struct {
		name        string
		totalItems  int
		page        int
		pageSize    int
		expected    Window
		expectError error
	}{
		{
			name:       "Success - two items fit on one page",
			totalItems: 2,
			page:       1,
			pageSize:   10,
			expected:   Window{CurrentPage: 1, PageSize: 10, TotalPages: 1, TotalItems: 2, Offset: 0, Limit: 2},
		},
		{
			name:       "Success - exact multiple of pageSize",
			totalItems: 20,
			page:       2,
			pageSize:   10,
			expected:   Window{CurrentPage: 2, PageSize: 10, TotalPages: 2, TotalItems: 20, Offset: 10, Limit: 10},
		},
		{
			name:       "Success - last page is partial",
			totalItems: 25,
			page:       3,
			pageSize:   10,
			expected:   Window{CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25, Offset: 20, Limit: 5},
		},
		{
			name:       "Success - page past the end yields an empty window",
			totalItems: 3,
			page:       5,
			pageSize:   10,
			expected:   Window{CurrentPage: 5, PageSize: 10, TotalPages: 1, TotalItems: 3, Offset: 3, Limit: 0},
		},
		{
			name:       "Success - maximum page number yields an empty window",
			totalItems: 3,
			page:       math.MaxInt,
			pageSize:   1000,
			expected:   Window{CurrentPage: math.MaxInt, PageSize: 1000, TotalPages: 1, TotalItems: 3, Offset: 3, Limit: 0},
		},
		{
			name:       "Success - empty collection has zero pages",
			totalItems: 0,
			page:       1,
			pageSize:   10,
			expected:   Window{CurrentPage: 1, PageSize: 10, TotalPages: 0, TotalItems: 0, Offset: 0, Limit: 0},
		},
		{
			name:       "Success - pageSize at the upper bound",
			totalItems: 5,
			page:       1,
			pageSize:   1000,
			expected:   Window{CurrentPage: 1, PageSize: 1000, TotalPages: 1, TotalItems: 5, Offset: 0, Limit: 5},
		},
		{
			name:        "Error - page below 1",
			totalItems:  5,
			page:        0,
			pageSize:    10,
			expectError: catalogerrors.ErrInvalidPagination,
		},
		{
			name:        "Error - pageSize below 1",
			totalItems:  5,
			page:        1,
			pageSize:    0,
			expectError: catalogerrors.ErrInvalidPagination,
		},
		{
			name:        "Error - pageSize above the upper bound",
			totalItems:  5,
			page:        1,
			pageSize:    1001,
			expectError: catalogerrors.ErrInvalidPagination,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			window, err := Paginate(tc.totalItems, tc.page, tc.pageSize)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, window)
		})
	}
}
