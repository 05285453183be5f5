package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventAction string

const (
	ActionProductCreated EventAction = "product_created"
	ActionProductUpdated EventAction = "product_updated"
	ActionProductDeleted EventAction = "product_deleted"
	ActionSaleRecorded   EventAction = "sale_recorded"
	ActionOrderPlaced    EventAction = "order_placed"
	ActionStoreReset     EventAction = "store_reset"
)

// Event describes a committed change, published after the mutation succeeded
type Event struct {
	Action   EventAction
	Product  *Product
	Order    *Order
	Quantity int
	Amount   decimal.Decimal
	At       time.Time
}
