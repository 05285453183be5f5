package model

import "github.com/shopspring/decimal"

// LowStockThreshold marks storefront items as almost sold out
const LowStockThreshold = 5

// Product is one inventory item.
// Stock is the cumulative quantity ever stocked; sales only move Sold.
type Product struct {
	BaseModel
	Name         string          `json:"name"`
	Stock        int             `json:"stock"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Sold         int             `json:"sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Photo        string          `json:"photo,omitempty"` // data URL
}

// Available can go negative when stock was edited below sold.
func (p Product) Available() int {
	return p.Stock - p.Sold
}

// SalesValue is sold * base price, the figure dashboards use
func (p Product) SalesValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Sold)))
}

// CostOfSold is sold * cost
func (p Product) CostOfSold() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.Sold)))
}

func (p Product) Profit() decimal.Decimal {
	return p.SalesValue().Sub(p.CostOfSold())
}

// ProductUpdate enumerates the fields an edit may change. Nil means keep.
type ProductUpdate struct {
	Name  *string          `json:"name" validate:"omitnil,min=2,max=100"`
	Stock *int             `json:"stock" validate:"omitnil,gte=0"`
	Cost  *decimal.Decimal `json:"cost" validate:"omitnil,gte=0"`
	Price *decimal.Decimal `json:"price" validate:"omitnil,gte=0"`
}

// IsEmpty reports whether the update carries no field at all
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Stock == nil && u.Cost == nil && u.Price == nil
}

// Listing is a storefront row
type Listing struct {
	Product   Product `json:"product"`
	Available int     `json:"available"`
	InStock   bool    `json:"in_stock"`
	LowStock  bool    `json:"low_stock"`
}
