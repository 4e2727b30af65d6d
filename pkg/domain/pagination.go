package domain

import (
	"fmt"
	"math"
)

// PaginationResult is one window of an ordered result set
type PaginationResult[T any] struct {
	Items       []T
	TotalItems  int
	CurrentPage int
	TotalPages  int
}

// NewPaginationResult builds a page with the total page count derived from totalItems and size.
// An empty result set has zero pages.
func NewPaginationResult[T any](items []T, totalItems, page, size int) PaginationResult[T] {
	if items == nil {
		items = []T{}
	}
	return PaginationResult[T]{
		Items:       items,
		TotalItems:  totalItems,
		CurrentPage: page,
		TotalPages:  TotalPages(totalItems, size),
	}
}

// TotalPages returns ceil(totalItems / size), zero for an empty set or non-positive size
func TotalPages(totalItems, size int) int {
	if totalItems <= 0 || size <= 0 {
		return 0
	}
	return (totalItems + size - 1) / size
}

// ValidatePage checks page and size for page math, returns ErrInvalidArgument on failure.
// The offset of a valid page always fits in int.
func ValidatePage(page, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, size)
	}
	if page < 0 {
		return fmt.Errorf("%w: page must not be negative, got %d", ErrInvalidArgument, page)
	}
	if page > math.MaxInt/size {
		return fmt.Errorf("%w: page %d with size %d is out of range", ErrInvalidArgument, page, size)
	}
	return nil
}

// Offset returns the number of items preceding the page
func Offset(page, size int) int {
	return page * size
}

// HasPrevious reports whether a page before the current one exists
func (p PaginationResult[T]) HasPrevious() bool {
	return p.CurrentPage > 0
}

// HasNext reports whether a page after the current one exists
func (p PaginationResult[T]) HasNext() bool {
	return p.CurrentPage < p.TotalPages-1
}
