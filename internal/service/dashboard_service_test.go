package service

import (
	"testing"
	"time"

	"go-inventory-pos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stocked(name string, created time.Time, stock, sold int, cost, price string) model.Product {
	p := model.Product{
		BaseModel:    model.NewBaseModel(created),
		Name:         name,
		Stock:        stock,
		Sold:         sold,
		Cost:         dec(cost),
		Price:        dec(price),
		TotalRevenue: decimal.Zero,
	}
	p.TotalRevenue = p.SalesValue()
	return p
}

func TestDashboardMetrics(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		m := DashboardMetrics(nil)
		assert.True(t, m.TotalSales.IsZero())
		assert.True(t, m.TotalCost.IsZero())
		assert.True(t, m.TotalProfit.IsZero())
		assert.True(t, m.ProfitMargin.IsZero())
		assert.Equal(t, 0, m.TotalProducts)
	})

	t.Run("totals", func(t *testing.T) {
		products := []model.Product{
			stocked("Pen", fixedNow, 100, 30, "5", "10"),
			stocked("Ink", fixedNow, 10, 7, "2", "4"),
			stocked("Pad", fixedNow, 3, 3, "1", "2"),
		}
		m := DashboardMetrics(products)
		assert.True(t, m.TotalSales.Equal(dec("334")))
		assert.True(t, m.TotalCost.Equal(dec("167")))
		assert.True(t, m.TotalProfit.Equal(dec("167")))
		assert.True(t, m.ProfitMargin.Equal(dec("50")))
		assert.Equal(t, 3, m.TotalProducts)
		assert.Equal(t, 113, m.TotalStock)
		assert.Equal(t, 40, m.TotalSold)
		assert.Equal(t, 1, m.OutOfStock)
		assert.Equal(t, 1, m.LowStock)
	})

	t.Run("sales ignore recorded revenue", func(t *testing.T) {
		p := stocked("Pen", fixedNow, 100, 10, "5", "10")
		p.TotalRevenue = dec("80")
		m := DashboardMetrics([]model.Product{p})
		assert.True(t, m.TotalSales.Equal(dec("100")))
	})
}

func TestTopPerformers(t *testing.T) {
	a := stocked("A", fixedNow, 10, 2, "1", "5")
	b := stocked("B", fixedNow, 10, 0, "1", "50")
	c := stocked("C", fixedNow, 10, 5, "1", "2")
	d := stocked("D", fixedNow, 10, 1, "1", "30")

	t.Run("excludes unsold and sorts by sales value", func(t *testing.T) {
		top := TopPerformers([]model.Product{a, b, c, d}, 5)
		require.Len(t, top, 3)
		assert.Equal(t, "D", top[0].Name)
		assert.Equal(t, "A", top[1].Name) // ties with C, comes first in the collection
		assert.Equal(t, "C", top[2].Name)
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, TopPerformers([]model.Product{a, b, c, d}, 1), 1)
		assert.Empty(t, TopPerformers([]model.Product{a, b, c, d}, 0))
	})
}

func TestReport(t *testing.T) {
	ref := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	today := stocked("Today", time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), 10, 0, "1", "2")
	earlierMonth := stocked("Early October", time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC), 10, 0, "1", "2")
	lastMonth := stocked("September", time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC), 10, 0, "1", "2")
	soldOld := stocked("Old Seller", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 10, 4, "1", "3")
	products := []model.Product{today, earlierMonth, lastMonth, soldOld}

	names := func(r model.ReportResult) []string {
		out := make([]string, len(r.Products))
		for i, p := range r.Products {
			out[i] = p.Name
		}
		return out
	}

	t.Run("daily", func(t *testing.T) {
		r, err := Report(products, model.ScopeDaily, ref)
		require.NoError(t, err)
		assert.Equal(t, []string{"Today", "Old Seller"}, names(r))
	})

	t.Run("monthly", func(t *testing.T) {
		r, err := Report(products, model.ScopeMonthly, ref)
		require.NoError(t, err)
		assert.Equal(t, []string{"Today", "Early October", "Old Seller"}, names(r))
	})

	t.Run("all", func(t *testing.T) {
		r, err := Report(products, model.ScopeAll, ref)
		require.NoError(t, err)
		assert.Len(t, r.Products, 4)
		assert.Equal(t, 40, r.TotalStock)
		assert.Equal(t, 4, r.TotalItemsSold)
		assert.True(t, r.TotalSales.Equal(dec("12")))
		assert.True(t, r.AverageSaleValue.Equal(dec("3")))
		require.NotNil(t, r.TopProduct)
		assert.Equal(t, "Old Seller", r.TopProduct.Name)
		require.Len(t, r.Breakdown, 1)
		assert.True(t, r.Breakdown[0].Share.Equal(dec("100")))
	})

	t.Run("empty period", func(t *testing.T) {
		r, err := Report(nil, model.ScopeDaily, ref)
		require.NoError(t, err)
		assert.Empty(t, r.Products)
		assert.Nil(t, r.TopProduct)
		assert.True(t, r.ProfitMargin.IsZero())
		assert.True(t, r.AverageSaleValue.IsZero())
	})

	t.Run("first product wins top ties", func(t *testing.T) {
		x := stocked("X", fixedNow, 10, 1, "1", "5")
		y := stocked("Y", fixedNow, 10, 1, "1", "5")
		r, err := Report([]model.Product{x, y}, model.ScopeAll, ref)
		require.NoError(t, err)
		assert.Equal(t, "X", r.TopProduct.Name)
	})

	t.Run("invalid scope", func(t *testing.T) {
		_, err := Report(products, "weekly", ref)
		assert.ErrorIs(t, err, ErrInvalidScope)
	})
}

func TestParseScope(t *testing.T) {
	for in, want := range map[string]model.ReportScope{
		"":         model.ScopeDaily,
		"daily":    model.ScopeDaily,
		" Monthly": model.ScopeMonthly,
		"ALL":      model.ScopeAll,
	} {
		got, err := ParseScope(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseScope("yearly")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestStorefront(t *testing.T) {
	listings := Storefront([]model.Product{
		stocked("Plenty", fixedNow, 100, 0, "1", "2"),
		stocked("Low", fixedNow, 10, 5, "1", "2"),
		stocked("Gone", fixedNow, 3, 3, "1", "2"),
	})
	require.Len(t, listings, 3)
	assert.True(t, listings[0].InStock)
	assert.False(t, listings[0].LowStock)
	assert.True(t, listings[1].LowStock)
	assert.Equal(t, 5, listings[1].Available)
	assert.False(t, listings[2].InStock)
	assert.False(t, listings[2].LowStock)
}
