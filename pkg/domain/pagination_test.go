package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 10, want: 0},
		{total: 1, size: 10, want: 1},
		{total: 10, size: 10, want: 1},
		{total: 11, size: 10, want: 2},
		{total: 25, size: 5, want: 5},
		{total: 26, size: 5, want: 6},
		{total: 5, size: 0, want: 0},
		{total: 5, size: -1, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total %d, size %d", tt.total, tt.size)
	}
}

func TestNewPaginationResult(t *testing.T) {
	res := NewPaginationResult([]string{"a", "b"}, 5, 1, 2)
	assert.Equal(t, []string{"a", "b"}, res.Items)
	assert.Equal(t, 5, res.TotalItems)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasPrevious())
	assert.True(t, res.HasNext())

	last := NewPaginationResult([]string{"e"}, 5, 2, 2)
	assert.True(t, last.HasPrevious())
	assert.False(t, last.HasNext())

	empty := NewPaginationResult[int](nil, 0, 0, 10)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasPrevious())
	assert.False(t, empty.HasNext())
}

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		valid      bool
	}{
		{name: "first page", page: 0, size: 1, valid: true},
		{name: "regular page", page: 100, size: 50, valid: true},
		{name: "largest offset", page: math.MaxInt / 4, size: 4, valid: true},
		{name: "zero size", page: 0, size: 0},
		{name: "negative size", page: 0, size: -3},
		{name: "negative page", page: -1, size: 10},
		{name: "offset overflows", page: math.MaxInt/4 + 1, size: 4},
		{name: "offset wraps negative", page: math.MaxInt/3 + 1, size: 3},
		{name: "huge size", page: 2, size: math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePage(tt.page, tt.size)
			if tt.valid {
				require.NoError(t, err)
				assert.GreaterOrEqual(t, Offset(tt.page, tt.size), 0)
				return
			}
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
	assert.Equal(t, 20, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 10))
}
