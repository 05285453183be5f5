package service

import (
	"slices"
	"strings"
	"time"

	"go-inventory-pos/internal/model"

	"github.com/shopspring/decimal"
)

const (
	DashboardTopN     = 5
	ReportBreakdownN  = 8
	percentMultiplier = 100
)

var hundred = decimal.NewFromInt(percentMultiplier)

// DashboardMetrics totals the whole collection. Sales are valued at base price.
func DashboardMetrics(products []model.Product) model.Metrics {
	m := model.Metrics{
		TotalSales: decimal.Zero,
		TotalCost:  decimal.Zero,
	}

	for _, p := range products {
		m.TotalSales = m.TotalSales.Add(p.SalesValue())
		m.TotalCost = m.TotalCost.Add(p.CostOfSold())
		m.TotalStock += p.Stock
		m.TotalSold += p.Sold

		available := p.Available()
		switch {
		case available <= 0:
			m.OutOfStock++
		case available <= model.LowStockThreshold:
			m.LowStock++
		}
	}

	m.TotalProducts = len(products)
	m.TotalProfit = m.TotalSales.Sub(m.TotalCost)
	m.ProfitMargin = percentOf(m.TotalProfit, m.TotalSales)
	return m
}

// TopPerformers keeps products with sales, best sales value first.
// Equal values keep their collection order.
func TopPerformers(products []model.Product, n int) []model.Product {
	if n <= 0 {
		return []model.Product{}
	}

	sold := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Sold > 0 {
			sold = append(sold, p)
		}
	}

	slices.SortStableFunc(sold, func(a, b model.Product) int {
		return b.SalesValue().Cmp(a.SalesValue())
	})

	if len(sold) > n {
		sold = sold[:n]
	}
	return sold
}

// ParseScope accepts daily, monthly or all (case-insensitive); empty means daily.
func ParseScope(s string) (model.ReportScope, error) {
	switch model.ReportScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", model.ScopeDaily:
		return model.ScopeDaily, nil
	case model.ScopeMonthly:
		return model.ScopeMonthly, nil
	case model.ScopeAll:
		return model.ScopeAll, nil
	}
	return "", ErrInvalidScope
}

// Report aggregates the products a scope covers around referenceDate.
// Daily and monthly include anything created in the period plus anything that has sold.
func Report(products []model.Product, scope model.ReportScope, referenceDate time.Time) (model.ReportResult, error) {
	if scope != model.ScopeDaily && scope != model.ScopeMonthly && scope != model.ScopeAll {
		return model.ReportResult{}, ErrInvalidScope
	}

	start, end := calculateDateRange(scope, referenceDate)
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if scope == model.ScopeAll || p.Sold > 0 || inRange(p.CreatedAt, start, end) {
			filtered = append(filtered, p)
		}
	}

	m := DashboardMetrics(filtered)
	result := model.ReportResult{
		Scope:            scope,
		ReferenceDate:    referenceDate,
		Products:         filtered,
		TotalSales:       m.TotalSales,
		TotalCost:        m.TotalCost,
		TotalProfit:      m.TotalProfit,
		TotalProducts:    m.TotalProducts,
		TotalStock:       m.TotalStock,
		TotalItemsSold:   m.TotalSold,
		ProfitMargin:     m.ProfitMargin,
		AverageSaleValue: decimal.Zero,
		CostRatio:        percentOf(m.TotalCost, m.TotalSales),
	}

	if m.TotalSold > 0 {
		result.AverageSaleValue = m.TotalSales.Div(decimal.NewFromInt(int64(m.TotalSold)))
	}

	// First product wins ties
	for i := range filtered {
		if result.TopProduct == nil || filtered[i].SalesValue().GreaterThan(result.TopProduct.SalesValue()) {
			top := filtered[i]
			result.TopProduct = &top
		}
	}

	top := TopPerformers(filtered, ReportBreakdownN)
	result.Breakdown = make([]model.ProductPerformance, len(top))
	for i, p := range top {
		result.Breakdown[i] = model.ProductPerformance{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Sold:      p.Sold,
			Revenue:   p.SalesValue(),
			Cost:      p.CostOfSold(),
			Profit:    p.Profit(),
			Share:     percentOf(p.SalesValue(), m.TotalSales),
		}
	}

	return result, nil
}

// Storefront lists every product with its stock badges
func Storefront(products []model.Product) []model.Listing {
	listings := make([]model.Listing, len(products))
	for i, p := range products {
		available := p.Available()
		listings[i] = model.Listing{
			Product:   p,
			Available: available,
			InStock:   available > 0,
			LowStock:  available > 0 && available <= model.LowStockThreshold,
		}
	}
	return listings
}

// calculateDateRange returns the half-open [start, end) period in the reference date's location
func calculateDateRange(scope model.ReportScope, referenceDate time.Time) (time.Time, time.Time) {
	loc := referenceDate.Location()
	y, mo, d := referenceDate.Date()

	switch scope {
	case model.ScopeDaily:
		start := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 0, 1)

	case model.ScopeMonthly:
		start := time.Date(y, mo, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)

	default:
		return time.Time{}, time.Date(9999, 12, 31, 23, 59, 59, 0, loc)
	}
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// percentOf is part/whole*100, or 0 when whole is not positive
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
