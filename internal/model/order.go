package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a product snapshot with the quantity put in the cart
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price * quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart lives for one shop session and is never persisted on its own
type Cart []CartItem

// Find returns the index of the product in the cart, or -1
func (c Cart) Find(productID uuid.UUID) int {
	for i, item := range c {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

type CartTotals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
}

// CustomerInfo is the contact block collected at checkout
type CustomerInfo struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// Order is an append-only checkout snapshot
type Order struct {
	BaseModel
	Customer CustomerInfo    `json:"customer"`
	Items    []CartItem      `json:"items"`
	Total    decimal.Decimal `json:"total"`
}
