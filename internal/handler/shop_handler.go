package handler

import (
	"go-inventory-pos/internal/model"
	"go-inventory-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ShopHandler struct {
	session *service.Session
}

func NewShopHandler(s *service.Session) *ShopHandler {
	return &ShopHandler{session: s}
}

type addToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

func cartResponse(cart model.Cart) fiber.Map {
	return fiber.Map{"items": cart, "totals": service.Totals(cart)}
}

func (h *ShopHandler) GetCart(c *fiber.Ctx) error {
	cart, totals := h.session.Cart()
	return c.JSON(fiber.Map{"items": cart, "totals": totals})
}

func (h *ShopHandler) AddToCart(c *fiber.Ctx) error {
	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "product_id is required"})
	}
	cart, err := h.session.AddToCart(req.ProductID)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(cartResponse(cart))
}

func (h *ShopHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := parseUUID(c, "productId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	var req service.CartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	cart, err := h.session.SetCartQuantity(id, req.Quantity)
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(cartResponse(cart))
}

func (h *ShopHandler) RemoveFromCart(c *fiber.Ctx) error {
	id, err := parseUUID(c, "productId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	return c.JSON(cartResponse(h.session.RemoveFromCart(id)))
}

func (h *ShopHandler) ClearCart(c *fiber.Ctx) error {
	h.session.ClearCart()
	return c.JSON(cartResponse(model.Cart{}))
}

// PlaceOrder checks out the current cart
func (h *ShopHandler) PlaceOrder(c *fiber.Ctx) error {
	var customer model.CustomerInfo
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	order, err := h.session.Checkout(customer)
	if err != nil {
		return respondError(c, err, order)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order placed", "data": order})
}

func (h *ShopHandler) GetOrders(c *fiber.Ctx) error {
	return c.JSON(h.session.Orders())
}
