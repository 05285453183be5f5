package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/pkg/photo"
	"go-inventory-pos/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger owns the product collection for one session.
// It never persists; the caller saves Products() after each successful mutation.
type Ledger struct {
	products []model.Product
	now      func() time.Time
}

// NewLedger takes a copy of a loaded snapshot
func NewLedger(products []model.Product) *Ledger {
	owned := make([]model.Product, len(products))
	copy(owned, products)
	return &Ledger{products: owned, now: time.Now}
}

// Products returns a copy of the collection in insertion order
func (l *Ledger) Products() []model.Product {
	out := make([]model.Product, len(l.products))
	copy(out, l.products)
	return out
}

func (l *Ledger) Find(id uuid.UUID) (model.Product, error) {
	i := l.index(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", ID: id}
	}
	return l.products[i], nil
}

func (l *Ledger) index(id uuid.UUID) int {
	for i := range l.products {
		if l.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) Add(req CreateProductRequest) (model.Product, error) {
	// 1. Normalise
	req.Name = strings.TrimSpace(req.Name)

	// 2. Field rules, all of them
	fields := toFieldErrors(validator.ValidateStruct(&req))
	verr := &ValidationError{Fields: fields}

	// 3. Cross-field rule, only once both amounts are usable
	if !verr.Has("cost") && !verr.Has("price") {
		cost := decimal.RequireFromString(req.Cost.String())
		price := decimal.RequireFromString(req.Price.String())
		if price.LessThan(cost) {
			verr.Fields = append(verr.Fields, FieldError{Field: "price", Tag: "gtefield", Param: "cost"})
		}
	}

	// 4. Photo size and type, whichever way it arrived
	if req.Photo != "" && !verr.Has("photo") {
		normalized, err := photo.FromDataURL(req.Photo)
		switch {
		case errors.Is(err, photo.ErrTooLarge):
			verr.Fields = append(verr.Fields, FieldError{Field: "photo", Tag: "max", Param: "2MB"})
		case err != nil:
			verr.Fields = append(verr.Fields, FieldError{Field: "photo", Tag: "image"})
		default:
			req.Photo = normalized
		}
	}
	if len(verr.Fields) > 0 {
		return model.Product{}, verr
	}

	// 5. Coerce and stamp
	stock, _ := strconv.Atoi(req.Stock.String())
	product := model.Product{
		BaseModel:    model.NewBaseModel(l.now()),
		Name:         req.Name,
		Stock:        stock,
		Cost:         decimal.RequireFromString(req.Cost.String()),
		Price:        decimal.RequireFromString(req.Price.String()),
		Sold:         0,
		TotalRevenue: decimal.Zero,
		Photo:        req.Photo,
	}

	l.products = append(l.products, product)
	return product, nil
}

// Update merges the provided fields. Price is not re-checked against cost here.
func (l *Ledger) Update(id uuid.UUID, upd model.ProductUpdate) (model.Product, error) {
	i := l.index(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", ID: id}
	}

	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		upd.Name = &trimmed
	}
	if errs := validator.ValidateStruct(&upd); len(errs) > 0 {
		return model.Product{}, &ValidationError{Fields: toFieldErrors(errs)}
	}

	p := l.products[i]
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Cost != nil {
		p.Cost = *upd.Cost
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	l.products[i] = p
	return p, nil
}

func (l *Ledger) Remove(id uuid.UUID) error {
	i := l.index(id)
	if i < 0 {
		return &NotFoundError{Entity: "product", ID: id}
	}
	l.products = append(l.products[:i:i], l.products[i+1:]...)
	return nil
}

// RecordSale moves Sold and TotalRevenue; Stock stays the cumulative stocked quantity.
func (l *Ledger) RecordSale(id uuid.UUID, quantity int, unitPrice *decimal.Decimal) (model.Product, error) {
	if quantity <= 0 {
		return model.Product{}, ErrInvalidQuantity
	}

	i := l.index(id)
	if i < 0 {
		return model.Product{}, &NotFoundError{Entity: "product", ID: id}
	}

	p := l.products[i]
	available := p.Available()
	if quantity > available {
		return model.Product{}, &InsufficientStockError{ProductID: id, Requested: quantity, Available: available}
	}

	p.Sold += quantity
	p.TotalRevenue = p.TotalRevenue.Add(SaleAmount(p, quantity, unitPrice))
	l.products[i] = p
	return p, nil
}

// SaleAmount is quantity * unit price, falling back to the product price when unitPrice is missing or not positive
func SaleAmount(p model.Product, quantity int, unitPrice *decimal.Decimal) decimal.Decimal {
	unit := p.Price
	if unitPrice != nil && unitPrice.IsPositive() {
		unit = *unitPrice
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

func toFieldErrors(errs []*validator.ErrorResponse) []FieldError {
	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldError{Field: e.FailedField, Tag: e.Tag, Param: e.Value})
	}
	return fields
}
