package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metrics are the dashboard totals. Sales use the base price, not recorded revenue.
type Metrics struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	TotalSold     int             `json:"total_sold"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"` // percent
	OutOfStock    int             `json:"out_of_stock"`
	LowStock      int             `json:"low_stock"`
}

// ReportScope selects which products a report covers
type ReportScope string

const (
	ScopeDaily   ReportScope = "daily"
	ScopeMonthly ReportScope = "monthly"
	ScopeAll     ReportScope = "all"
)

// ProductPerformance is one row of the report breakdown
type ProductPerformance struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Sold      int             `json:"sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	Share     decimal.Decimal `json:"share"` // percent of total sales
}

type ReportResult struct {
	Scope            ReportScope          `json:"scope"`
	ReferenceDate    time.Time            `json:"reference_date"`
	Products         []Product            `json:"products"`
	TotalSales       decimal.Decimal      `json:"total_sales"`
	TotalCost        decimal.Decimal      `json:"total_cost"`
	TotalProfit      decimal.Decimal      `json:"total_profit"`
	TotalProducts    int                  `json:"total_products"`
	TotalStock       int                  `json:"total_stock"`
	TotalItemsSold   int                  `json:"total_items_sold"`
	ProfitMargin     decimal.Decimal      `json:"profit_margin"`
	AverageSaleValue decimal.Decimal      `json:"average_sale_value"`
	CostRatio        decimal.Decimal      `json:"cost_ratio"`
	TopProduct       *Product             `json:"top_product"`
	Breakdown        []ProductPerformance `json:"breakdown"`
}
