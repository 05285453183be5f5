package main

import (
	"fmt"
	"strings"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/pkg/currency"
)

func dashboardMarkdown(m model.Metrics, top []model.Product, code string) string {
	var sb strings.Builder
	sb.WriteString("# Dashboard\n\n")
	sb.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Total Sales | %s |\n", currency.Format(m.TotalSales, code))
	fmt.Fprintf(&sb, "| Total Cost | %s |\n", currency.Format(m.TotalCost, code))
	fmt.Fprintf(&sb, "| Total Profit | %s |\n", currency.Format(m.TotalProfit, code))
	fmt.Fprintf(&sb, "| Profit Margin | %s%% |\n", m.ProfitMargin.StringFixed(1))
	fmt.Fprintf(&sb, "| Products | %d |\n", m.TotalProducts)
	fmt.Fprintf(&sb, "| Stock | %d |\n", m.TotalStock)
	fmt.Fprintf(&sb, "| Sold | %d |\n", m.TotalSold)
	fmt.Fprintf(&sb, "| Out of Stock | %d |\n", m.OutOfStock)
	fmt.Fprintf(&sb, "| Low Stock | %d |\n", m.LowStock)

	sb.WriteString("\n## Top Performers\n\n")
	if len(top) == 0 {
		sb.WriteString("_No sales recorded yet._\n")
		return sb.String()
	}
	sb.WriteString("| # | Product | Sold | Sales |\n|---:|---|---:|---:|\n")
	for i, p := range top {
		fmt.Fprintf(&sb, "| %d | %s | %d | %s |\n", i+1, escapeCell(p.Name), p.Sold, currency.Format(p.SalesValue(), code))
	}
	return sb.String()
}

func reportMarkdown(r model.ReportResult, code string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Report\n\n", titleScope(r.Scope))
	if r.Scope != model.ScopeAll {
		fmt.Fprintf(&sb, "Reference date: %s\n\n", r.ReferenceDate.Format("2006-01-02"))
	}

	sb.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Total Sales | %s |\n", currency.Format(r.TotalSales, code))
	fmt.Fprintf(&sb, "| Total Cost | %s |\n", currency.Format(r.TotalCost, code))
	fmt.Fprintf(&sb, "| Total Profit | %s |\n", currency.Format(r.TotalProfit, code))
	fmt.Fprintf(&sb, "| Profit Margin | %s%% |\n", r.ProfitMargin.StringFixed(1))
	fmt.Fprintf(&sb, "| Items Sold | %d |\n", r.TotalItemsSold)
	fmt.Fprintf(&sb, "| Average Sale | %s |\n", currency.Format(r.AverageSaleValue, code))
	if r.TopProduct != nil {
		fmt.Fprintf(&sb, "| Top Product | %s |\n", escapeCell(r.TopProduct.Name))
	}

	sb.WriteString("\n## Products\n\n")
	if len(r.Products) == 0 {
		sb.WriteString("_No products in this period._\n")
		return sb.String()
	}
	sb.WriteString("| Product | Stock | Sold | Revenue | Profit |\n|---|---:|---:|---:|---:|\n")
	for _, p := range r.Products {
		fmt.Fprintf(&sb, "| %s | %d | %d | %s | %s |\n", escapeCell(p.Name), p.Stock, p.Sold,
			currency.Format(p.SalesValue(), code), currency.Format(p.Profit(), code))
	}

	if len(r.Breakdown) > 0 {
		sb.WriteString("\n## Breakdown\n\n| Product | Revenue | Share |\n|---|---:|---:|\n")
		for _, b := range r.Breakdown {
			fmt.Fprintf(&sb, "| %s | %s | %s%% |\n", escapeCell(b.Name), currency.Format(b.Revenue, code), b.Share.StringFixed(1))
		}
	}
	return sb.String()
}

func productsMarkdown(products []model.Product, code string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Products (%d)\n\n", len(products))
	if len(products) == 0 {
		sb.WriteString("_No products._\n")
		return sb.String()
	}
	sb.WriteString("| Product | Stock | Sold | Available | Price | Revenue |\n|---|---:|---:|---:|---:|---:|\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "| %s | %d | %d | %d | %s | %s |\n", escapeCell(p.Name), p.Stock, p.Sold, p.Available(),
			currency.Format(p.Price, code), currency.Format(p.TotalRevenue, code))
	}
	return sb.String()
}

func ordersMarkdown(orders []model.Order, code string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Orders (%d)\n\n", len(orders))
	if len(orders) == 0 {
		sb.WriteString("_No orders placed._\n")
		return sb.String()
	}
	sb.WriteString("| Placed | Customer | Email | Items | Total |\n|---|---|---|---:|---:|\n")
	for _, o := range orders {
		items := 0
		for _, item := range o.Items {
			items += item.Quantity
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s |\n", o.CreatedAt.Format("2006-01-02 15:04"),
			escapeCell(o.Customer.Name), escapeCell(o.Customer.Email), items, currency.Format(o.Total, code))
	}
	return sb.String()
}

func titleScope(scope model.ReportScope) string {
	switch scope {
	case model.ScopeDaily:
		return "Daily"
	case model.ScopeMonthly:
		return "Monthly"
	default:
		return "All Time"
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
