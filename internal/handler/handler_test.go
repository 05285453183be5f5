package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventory-pos/internal/repository"
	"go-inventory-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	store := repository.NewMemoryKVStore()
	session, err := service.NewSession(repository.NewProductRepo(store), repository.NewOrderRepo(store), nil, log)
	require.NoError(t, err)

	app := fiber.New()
	Register(app.Group("/api/v1"), session)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func createPen(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/v1/products", `{"name":"Pen","stock":100,"cost":"5","price":10}`)
	require.Equal(t, http.StatusCreated, status)
	return body["data"].(map[string]interface{})["id"].(string)
}

func TestProductRoutes(t *testing.T) {
	app := newTestApp(t)
	id := createPen(t, app)

	t.Run("validation errors list every field", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/v1/products", `{"name":"P","stock":"-1","cost":"x","price":""}`)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Len(t, body["fields"], 4)
	})

	t.Run("record sale", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/v1/products/"+id+"/sales", `{"quantity":30}`)
		require.Equal(t, http.StatusCreated, status)
		data := body["data"].(map[string]interface{})
		assert.EqualValues(t, 30, data["sold"])
		assert.Equal(t, "300", data["total_revenue"])
	})

	t.Run("oversell is a conflict", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/v1/products/"+id+"/sales", `{"quantity":1000}`)
		assert.Equal(t, http.StatusConflict, status)
		assert.EqualValues(t, 70, body["available"])
	})

	t.Run("zero quantity", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/v1/products/"+id+"/sales", `{"quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("update", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, "/api/v1/products/"+id, `{"price":"12.5"}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "12.5", body["data"].(map[string]interface{})["price"])
	})

	t.Run("empty update", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPut, "/api/v1/products/"+id, `{}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("photo checks on the json path", func(t *testing.T) {
		create := func(mime string, data []byte) (int, string) {
			dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
			status, body := doJSON(t, app, http.MethodPost, "/api/v1/products",
				`{"name":"Ink","stock":1,"cost":1,"price":2,"photo":"`+dataURL+`"}`)
			fields, _ := body["fields"].([]interface{})
			if len(fields) != 1 {
				return status, ""
			}
			return status, fields[0].(map[string]interface{})["tag"].(string)
		}

		status, tag := create("text/plain", bytes.Repeat([]byte("A"), 1024))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "image", tag)

		big := make([]byte, 2*1024*1024+1)
		copy(big, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
		status, tag = create("image/png", big)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "max", tag)
	})

	t.Run("bad id", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/products/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("delete then not found", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, "/api/v1/products/"+id, "")
		require.Equal(t, http.StatusOK, status)
		status, _ = doJSON(t, app, http.MethodGet, "/api/v1/products/"+id, "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestShopRoutes(t *testing.T) {
	app := newTestApp(t)
	id := createPen(t, app)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/cart", `{"product_id":"`+id+`"}`)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPut, "/api/v1/cart/"+id, `{"quantity":3}`)
	require.Equal(t, http.StatusOK, status)
	totals := body["totals"].(map[string]interface{})
	assert.Equal(t, "30", totals["subtotal"])
	assert.EqualValues(t, 3, totals["item_count"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/orders", `{"name":"Asha","email":"asha@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []interface{}{"phone", "address"}, body["fields"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders",
		`{"name":"Asha","email":"asha@example.com","phone":"555","address":"1 Main St"}`)
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["items"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders",
		`{"name":"Asha","email":"asha@example.com","phone":"555","address":"1 Main St"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/dashboard/stats", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["total_sold"], "checkout does not record ledger sales")
}

func TestReportRoutes(t *testing.T) {
	app := newTestApp(t)
	id := createPen(t, app)
	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/products/"+id+"/sales", `{"quantity":3}`)
	require.Equal(t, http.StatusCreated, status)

	t.Run("report", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/reports?scope=all", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "all", body["scope"])
		assert.EqualValues(t, 3, body["total_items_sold"])
	})

	t.Run("invalid scope and date", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/reports?scope=weekly", "")
		assert.Equal(t, http.StatusBadRequest, status)
		status, _ = doJSON(t, app, http.MethodGet, "/api/v1/reports?date=19-10-2026", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("csv export", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export?scope=monthly", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inventory-report-monthly-")

		raw, _ := io.ReadAll(resp.Body)
		assert.True(t, strings.HasPrefix(string(raw), "Product Name,Stock,"))
		assert.Contains(t, string(raw), "Pen,100,5,10,3,30,15")
	})

	t.Run("reset requires confirmation", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/v1/reset", "")
		assert.Equal(t, http.StatusBadRequest, status)
		status, _ = doJSON(t, app, http.MethodPost, "/api/v1/reset?confirm=true", "")
		require.Equal(t, http.StatusOK, status)

		status, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard/stats", "")
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 0, body["total_products"])
	})
}
