package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go-inventory-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	products := []model.Product{
		stocked("Pen, Blue", fixedNow, 100, 30, "5", "10"),
		stocked("Ink", fixedNow, 10, 0, "1.5", "2"),
	}
	report, err := Report(products, model.ScopeAll, fixedNow)
	require.NoError(t, err)

	var buf bytes.Buffer
	generated := time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)
	require.NoError(t, ExportCSV(&buf, report, generated))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Product Name,Stock,Cost Price,Selling Price,Sold,Revenue,Profit",
		`"Pen, Blue",100,5,10,30,300,150`,
		"Ink,10,1.5,2,0,0,0",
		"",
		"Report Type,all",
		"Total Sales,300",
		"Total Cost,150",
		"Total Profit,150",
		"Items Sold,30",
		"Generated,2026-10-19 14:30:05",
	}, lines)
}

func TestExportFileName(t *testing.T) {
	name := ExportFileName(model.ScopeMonthly, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "inventory-report-monthly-2026-10-19.csv", name)
}
