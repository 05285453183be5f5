package handler

import (
	"strings"

	"go-inventory-pos/internal/model"
	"go-inventory-pos/internal/service"
	"go-inventory-pos/pkg/photo"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	session *service.Session
}

func NewInventoryHandler(s *service.Session) *InventoryHandler {
	return &InventoryHandler{session: s}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.session.Products())
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	product, err := h.session.Product(id)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(product)
}

// CreateProduct accepts JSON or a multipart form with an optional "photo" file
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if fh, err := c.FormFile("photo"); err == nil {
			data, err := photo.FromFileHeader(fh)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			req.Photo = data
		}
	}

	product, err := h.session.AddProduct(req)
	if err != nil {
		return respondError(c, err, product)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var upd model.ProductUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if upd.IsEmpty() {
		return c.Status(400).JSON(fiber.Map{"error": "No fields to update"})
	}

	product, err := h.session.UpdateProduct(id, upd)
	if err != nil {
		return respondError(c, err, product)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	if err := h.session.RemoveProduct(id); err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.session.RecordSale(id, req.Quantity, req.UnitPrice)
	if err != nil {
		return respondError(c, err, product)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": product})
}

func (h *InventoryHandler) GetStorefront(c *fiber.Ctx) error {
	return c.JSON(h.session.Storefront())
}

// Reset wipes all store data. Requires ?confirm=true.
func (h *InventoryHandler) Reset(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return c.Status(400).JSON(fiber.Map{"error": "Reset requires confirm=true"})
	}
	if err := h.session.Reset(); err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(fiber.Map{"message": "Store reset"})
}
