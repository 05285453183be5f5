package ws

import (
	"encoding/json"
	"fmt"
	"sync"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/pkg/currency"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

// BroadcastBuffer is how many events may wait for Run before new ones are dropped
const BroadcastBuffer = 256

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex

	currency string
	log      logrus.FieldLogger
}

func NewHub(currencyCode string, log logrus.FieldLogger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, BroadcastBuffer),
		currency:   currencyCode,
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Debug("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Notify queues the event for every connected client without blocking the caller.
// Events leave in the order they were queued.
func (h *Hub) Notify(event model.Event) {
	msg, err := json.Marshal(h.payload(event))
	if err != nil {
		h.log.WithError(err).Warn("Failed to encode WS event")
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.WithField("action", event.Action).Warn("WS broadcast queue full, event dropped")
	}
}

func (h *Hub) payload(event model.Event) map[string]interface{} {
	payload := map[string]interface{}{
		"type":   "stock_update",
		"action": event.Action,
		"at":     event.At,
	}

	if p := event.Product; p != nil {
		payload["product"] = map[string]interface{}{
			"id":        p.ID,
			"name":      p.Name,
			"stock":     p.Stock,
			"sold":      p.Sold,
			"available": p.Available(),
			"price":     p.Price,
		}
	}

	switch event.Action {
	case model.ActionProductCreated:
		payload["message"] = fmt.Sprintf("Product '%s' created", event.Product.Name)
	case model.ActionProductUpdated:
		payload["message"] = fmt.Sprintf("Product '%s' updated", event.Product.Name)
	case model.ActionProductDeleted:
		payload["message"] = fmt.Sprintf("Product '%s' deleted", event.Product.Name)
	case model.ActionSaleRecorded:
		payload["message"] = fmt.Sprintf("Sold %d units of '%s' for %s",
			event.Quantity, event.Product.Name, currency.Format(event.Amount, h.currency))
	case model.ActionOrderPlaced:
		payload["type"] = "order_update"
		payload["order"] = map[string]interface{}{
			"id":    event.Order.ID,
			"items": len(event.Order.Items),
			"total": event.Order.Total,
		}
		payload["message"] = fmt.Sprintf("Order placed by %s for %s",
			event.Order.Customer.Name, currency.Format(event.Order.Total, h.currency))
	case model.ActionStoreReset:
		payload["message"] = "Store data was reset"
	}

	return payload
}
