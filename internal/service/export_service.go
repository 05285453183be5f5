package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go-inventory-pos/internal/model"
)

var exportHeader = []string{"Product Name", "Stock", "Cost Price", "Selling Price", "Sold", "Revenue", "Profit"}

// ExportCSV writes one row per report product followed by a summary block
func ExportCSV(w io.Writer, report model.ReportResult, generatedAt time.Time) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range report.Products {
		row := []string{
			p.Name,
			strconv.Itoa(p.Stock),
			p.Cost.String(),
			p.Price.String(),
			strconv.Itoa(p.Sold),
			p.SalesValue().String(),
			p.Profit().String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	summary := [][]string{
		{},
		{"Report Type", string(report.Scope)},
		{"Total Sales", report.TotalSales.String()},
		{"Total Cost", report.TotalCost.String()},
		{"Total Profit", report.TotalProfit.String()},
		{"Items Sold", strconv.Itoa(report.TotalItemsSold)},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
	}
	if err := cw.WriteAll(summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// ExportFileName is inventory-report-<scope>-<yyyy-mm-dd>.csv
func ExportFileName(scope model.ReportScope, generatedAt time.Time) string {
	return fmt.Sprintf("inventory-report-%s-%s.csv", scope, generatedAt.Format("2006-01-02"))
}
