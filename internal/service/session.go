package service

import (
	"sync"
	"time"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Notifier receives committed changes (the websocket hub in production)
type Notifier interface {
	Notify(event model.Event)
}

type noopNotifier struct{}

func (noopNotifier) Notify(model.Event) {}

// Session owns the ledger, the shop cart and the order log for the single operator.
// Every successful mutation is saved explicitly; when saving fails the in-memory
// state stays authoritative and a *PersistenceError is returned with the result.
type Session struct {
	mu        sync.Mutex
	ledger    *Ledger
	cart      model.Cart
	orders    []model.Order
	productDB repository.ProductRepository
	orderDB   repository.OrderRepository
	notifier  Notifier
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewSession restores products and orders from the repositories
func NewSession(products repository.ProductRepository, orders repository.OrderRepository, notifier Notifier, log logrus.FieldLogger) (*Session, error) {
	loadedProducts, err := products.Load()
	if err != nil {
		return nil, err
	}
	loadedOrders, err := orders.Load()
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	log.WithFields(logrus.Fields{
		"products": len(loadedProducts),
		"orders":   len(loadedOrders),
	}).Info("Session restored")

	return &Session{
		ledger:    NewLedger(loadedProducts),
		cart:      model.Cart{},
		orders:    loadedOrders,
		productDB: products,
		orderDB:   orders,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}, nil
}

func (s *Session) saveProducts() error {
	if err := s.productDB.Save(s.ledger.Products()); err != nil {
		s.log.WithError(err).Error("Failed to persist products")
		return &PersistenceError{Op: "save products", Err: err}
	}
	return nil
}

func (s *Session) saveOrders() error {
	if err := s.orderDB.Save(s.orders); err != nil {
		s.log.WithError(err).Error("Failed to persist orders")
		return &PersistenceError{Op: "save orders", Err: err}
	}
	return nil
}

// ============ INVENTORY ============

func (s *Session) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Products()
}

func (s *Session) Product(id uuid.UUID) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Find(id)
}

func (s *Session) AddProduct(req CreateProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.Add(req)
	if err != nil {
		return model.Product{}, err
	}
	s.notifier.Notify(model.Event{Action: model.ActionProductCreated, Product: &product, At: s.now()})
	return product, s.saveProducts()
}

func (s *Session) UpdateProduct(id uuid.UUID, upd model.ProductUpdate) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.Update(id, upd)
	if err != nil {
		return model.Product{}, err
	}
	s.notifier.Notify(model.Event{Action: model.ActionProductUpdated, Product: &product, At: s.now()})
	return product, s.saveProducts()
}

// RemoveProduct also drops the product from the cart
func (s *Session) RemoveProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.Find(id)
	if err != nil {
		return err
	}
	if err := s.ledger.Remove(id); err != nil {
		return err
	}
	s.cart = RemoveFromCart(s.cart, id)
	s.notifier.Notify(model.Event{Action: model.ActionProductDeleted, Product: &product, At: s.now()})
	return s.saveProducts()
}

func (s *Session) RecordSale(id uuid.UUID, quantity int, unitPrice *decimal.Decimal) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.RecordSale(id, quantity, unitPrice)
	if err != nil {
		return model.Product{}, err
	}
	s.notifier.Notify(model.Event{
		Action:   model.ActionSaleRecorded,
		Product:  &product,
		Quantity: quantity,
		Amount:   SaleAmount(product, quantity, unitPrice),
		At:       s.now(),
	})
	return product, s.saveProducts()
}

func (s *Session) Storefront() []model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Storefront(s.ledger.Products())
}

// ============ SHOP ============

func (s *Session) Cart() (model.Cart, model.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cart, 0), Totals(s.cart)
}

// AddToCart refuses to put more units in the cart than are available
func (s *Session) AddToCart(productID uuid.UUID) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.ledger.Find(productID)
	if err != nil {
		return nil, err
	}
	requested := 1
	if i := s.cart.Find(productID); i >= 0 {
		requested += s.cart[i].Quantity
	}
	if available := product.Available(); requested > available {
		return nil, &InsufficientStockError{ProductID: productID, Requested: requested, Available: max(available, 0)}
	}
	s.cart = AddToCart(s.cart, product)
	return cloneCart(s.cart, 0), nil
}

func (s *Session) SetCartQuantity(productID uuid.UUID, quantity int) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := 0
	if quantity > 0 {
		product, err := s.ledger.Find(productID)
		if err != nil {
			return nil, err
		}
		available = product.Available()
	}
	next, err := SetQuantity(s.cart, productID, quantity, available)
	if err != nil {
		return nil, err
	}
	s.cart = next
	return cloneCart(s.cart, 0), nil
}

func (s *Session) RemoveFromCart(productID uuid.UUID) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = RemoveFromCart(s.cart, productID)
	return cloneCart(s.cart, 0)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = model.Cart{}
}

// Checkout places the order, appends it to the log and empties the cart.
// Ledger stock and sold counts are left untouched.
func (s *Session) Checkout(customer model.CustomerInfo) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := PlaceOrder(s.cart, customer, s.now())
	if err != nil {
		return model.Order{}, err
	}

	s.orders = append(s.orders, order)
	s.cart = model.Cart{}
	s.notifier.Notify(model.Event{Action: model.ActionOrderPlaced, Order: &order, Amount: order.Total, At: s.now()})
	return order, s.saveOrders()
}

func (s *Session) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ============ DASHBOARD & REPORTS ============

func (s *Session) Dashboard() model.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DashboardMetrics(s.ledger.products)
}

func (s *Session) TopPerformers(n int) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TopPerformers(s.ledger.products, n)
}

func (s *Session) Report(scope model.ReportScope, referenceDate time.Time) (model.ReportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Report(s.ledger.Products(), scope, referenceDate)
}

// Reset wipes products, orders and the cart, then removes both collections from the store
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = NewLedger(nil)
	s.ledger.now = s.now
	s.orders = []model.Order{}
	s.cart = model.Cart{}
	s.notifier.Notify(model.Event{Action: model.ActionStoreReset, At: s.now()})

	if err := s.productDB.Clear(); err != nil {
		s.log.WithError(err).Error("Failed to clear products")
		return &PersistenceError{Op: "clear products", Err: err}
	}
	if err := s.orderDB.Clear(); err != nil {
		s.log.WithError(err).Error("Failed to clear orders")
		return &PersistenceError{Op: "clear orders", Err: err}
	}
	return nil
}
