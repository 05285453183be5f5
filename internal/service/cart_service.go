package service

import (
	"strings"
	"time"

	"go-inventory-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart operations never modify their input; each returns a new cart.

func cloneCart(cart model.Cart, extra int) model.Cart {
	next := make(model.Cart, len(cart), len(cart)+extra)
	copy(next, cart)
	return next
}

// AddToCart adds one unit of the product
func AddToCart(cart model.Cart, product model.Product) model.Cart {
	next := cloneCart(cart, 1)
	if i := next.Find(product.ID); i >= 0 {
		next[i].Quantity++
		return next
	}
	return append(next, model.CartItem{Product: product, Quantity: 1})
}

// SetQuantity replaces the quantity of a cart line. Zero or less removes it.
func SetQuantity(cart model.Cart, productID uuid.UUID, quantity, available int) (model.Cart, error) {
	if quantity <= 0 {
		return RemoveFromCart(cart, productID), nil
	}
	if quantity > available {
		return nil, &InsufficientStockError{ProductID: productID, Requested: quantity, Available: available}
	}

	next := cloneCart(cart, 0)
	if i := next.Find(productID); i >= 0 {
		next[i].Quantity = quantity
	}
	return next, nil
}

// RemoveFromCart drops the line; absent products are ignored
func RemoveFromCart(cart model.Cart, productID uuid.UUID) model.Cart {
	next := make(model.Cart, 0, len(cart))
	for _, item := range cart {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

func Totals(cart model.Cart) model.CartTotals {
	totals := model.CartTotals{Subtotal: decimal.Zero}
	for _, item := range cart {
		totals.Subtotal = totals.Subtotal.Add(item.LineTotal())
		totals.ItemCount += item.Quantity
	}
	return totals
}

// PlaceOrder snapshots the cart into an order.
// It does not record sales on the ledger: shop orders and ledger sales are tracked separately.
func PlaceOrder(cart model.Cart, customer model.CustomerInfo, now time.Time) (model.Order, error) {
	customer = model.CustomerInfo{
		Name:    strings.TrimSpace(customer.Name),
		Email:   strings.TrimSpace(customer.Email),
		Phone:   strings.TrimSpace(customer.Phone),
		Address: strings.TrimSpace(customer.Address),
	}

	var missing []string
	if customer.Name == "" {
		missing = append(missing, "name")
	}
	if customer.Email == "" {
		missing = append(missing, "email")
	}
	if customer.Phone == "" {
		missing = append(missing, "phone")
	}
	if customer.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return model.Order{}, &IncompleteCustomerInfoError{Fields: missing}
	}

	if len(cart) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	items := make([]model.CartItem, len(cart))
	copy(items, cart)

	return model.Order{
		BaseModel: model.NewBaseModel(now),
		Customer:  customer,
		Items:     items,
		Total:     Totals(cart).Subtotal,
	}, nil
}
