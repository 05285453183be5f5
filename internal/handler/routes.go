package handler

import (
	"go-inventory-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register mounts the REST routes on router (usually /api/v1)
func Register(router fiber.Router, s *service.Session) {
	invHandler := NewInventoryHandler(s)
	dashHandler := NewDashboardHandler(s)
	shopHandler := NewShopHandler(s)

	// Product Routes
	router.Get("/products", invHandler.GetProducts)
	router.Post("/products", invHandler.CreateProduct)
	router.Get("/products/:id", invHandler.GetProduct)
	router.Put("/products/:id", invHandler.UpdateProduct)
	router.Delete("/products/:id", invHandler.DeleteProduct)
	router.Post("/products/:id/sales", invHandler.RecordSale)
	router.Get("/storefront", invHandler.GetStorefront)
	router.Post("/reset", invHandler.Reset)

	// Dashboard & Report Routes
	router.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	router.Get("/dashboard/top", dashHandler.GetTopPerformers)
	router.Get("/reports", dashHandler.GetReport)
	router.Get("/reports/export", dashHandler.ExportReport)

	// Shop Routes
	router.Get("/cart", shopHandler.GetCart)
	router.Post("/cart", shopHandler.AddToCart)
	router.Delete("/cart", shopHandler.ClearCart)
	router.Put("/cart/:productId", shopHandler.SetQuantity)
	router.Delete("/cart/:productId", shopHandler.RemoveFromCart)
	router.Get("/orders", shopHandler.GetOrders)
	router.Post("/orders", shopHandler.PlaceOrder)
}
