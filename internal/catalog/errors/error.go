// Package errors provides custom error types for catalog operations.
package errors

import "errors"

// ErrProductNotFound is returned when no live product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ErrProductExists is returned when an operation would leave two products
// with the same (name, brand) pair.
var ErrProductExists = errors.New("product with the same name and brand already exists")

// ErrNegativePrice is returned when a supplied price is below zero.
var ErrNegativePrice = errors.New("price cannot be a negative number")

// ErrInvalidPagination is returned when page or pageSize is out of range.
var ErrInvalidPagination = errors.New("invalid pagination parameters")
