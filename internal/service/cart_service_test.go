package service

import (
	"testing"

	"go-inventory-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCustomer() model.CustomerInfo {
	return model.CustomerInfo{Name: "Asha", Email: "asha@example.com", Phone: "555-0100", Address: "1 Main St"}
}

func TestAddToCart(t *testing.T) {
	pen := stocked("Pen", fixedNow, 100, 0, "5", "10")

	t.Run("new line then increment", func(t *testing.T) {
		cart := AddToCart(model.Cart{}, pen)
		cart = AddToCart(cart, pen)
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		original := AddToCart(nil, pen)
		next := AddToCart(original, pen)
		assert.Equal(t, 1, original[0].Quantity)
		assert.Equal(t, 2, next[0].Quantity)
	})
}

func TestSetQuantity(t *testing.T) {
	pen := stocked("Pen", fixedNow, 100, 95, "5", "10")
	cart := AddToCart(nil, pen)

	t.Run("within available", func(t *testing.T) {
		next, err := SetQuantity(cart, pen.ID, 5, pen.Available())
		require.NoError(t, err)
		assert.Equal(t, 5, next[0].Quantity)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("above available", func(t *testing.T) {
		next, err := SetQuantity(cart, pen.ID, 6, pen.Available())
		var serr *InsufficientStockError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, 5, serr.Available)
		assert.Nil(t, next)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		next, err := SetQuantity(cart, pen.ID, 0, pen.Available())
		require.NoError(t, err)
		assert.Empty(t, next)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		next, err := SetQuantity(cart, uuid.New(), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, cart, next)
	})
}

func TestRemoveFromCartAndTotals(t *testing.T) {
	pen := stocked("Pen", fixedNow, 100, 0, "5", "10")
	ink := stocked("Ink", fixedNow, 10, 0, "1", "2.5")

	cart := AddToCart(AddToCart(AddToCart(nil, pen), pen), ink)
	totals := Totals(cart)
	assert.True(t, totals.Subtotal.Equal(dec("22.5")))
	assert.Equal(t, 3, totals.ItemCount)

	cart = RemoveFromCart(cart, pen.ID)
	require.Len(t, cart, 1)
	assert.Equal(t, ink.ID, cart[0].ID)
	assert.Len(t, RemoveFromCart(cart, uuid.New()), 1)

	empty := Totals(nil)
	assert.True(t, empty.Subtotal.IsZero())
	assert.Equal(t, 0, empty.ItemCount)
}

func TestPlaceOrder(t *testing.T) {
	l := newTestLedger()
	pen, err := l.Add(penRequest())
	require.NoError(t, err)
	cart := AddToCart(AddToCart(nil, pen), pen)

	t.Run("snapshot of the cart", func(t *testing.T) {
		order, err := PlaceOrder(cart, fullCustomer(), fixedNow)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, order.ID)
		assert.True(t, order.CreatedAt.Equal(fixedNow))
		assert.True(t, order.Total.Equal(dec("20")))
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)

		// shop orders do not touch ledger sales
		p, _ := l.Find(pen.ID)
		assert.Equal(t, 0, p.Sold)
		assert.Equal(t, 100, p.Available())
	})

	t.Run("blank customer fields", func(t *testing.T) {
		customer := fullCustomer()
		customer.Address = "   "
		customer.Phone = ""
		_, err := PlaceOrder(cart, customer, fixedNow)

		var cerr *IncompleteCustomerInfoError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, []string{"phone", "address"}, cerr.Fields)
		assert.Len(t, cart, 1)
	})

	t.Run("customer checked before empty cart", func(t *testing.T) {
		_, err := PlaceOrder(nil, model.CustomerInfo{}, fixedNow)
		var cerr *IncompleteCustomerInfoError
		assert.ErrorAs(t, err, &cerr)
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := PlaceOrder(model.Cart{}, fullCustomer(), fixedNow)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("items do not alias the cart", func(t *testing.T) {
		local := AddToCart(nil, pen)
		order, err := PlaceOrder(local, fullCustomer(), fixedNow)
		require.NoError(t, err)
		local[0].Quantity = 99
		assert.Equal(t, 1, order.Items[0].Quantity)
	})
}
