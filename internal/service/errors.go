package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidScope    = errors.New("report scope must be daily, monthly or all")
)

// FieldError is one failed rule on one input field
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationError carries every failed field, not only the first
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s(%s)", f.Field, f.Tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has reports whether the field failed at least one rule
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InsufficientStockError carries the quantity that was available when the request was refused
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// IncompleteCustomerInfoError lists the blank customer fields
type IncompleteCustomerInfoError struct {
	Fields []string
}

func (e *IncompleteCustomerInfoError) Error() string {
	return "incomplete customer info: " + strings.Join(e.Fields, ", ")
}

// PersistenceError means the mutation was applied in memory but could not be saved
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
