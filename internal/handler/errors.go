package handler

import (
	"errors"

	"go-inventory-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// Helper untuk parse UUID dari path param
func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

// respondError maps service errors onto status codes and structured bodies.
// data, when non-nil, is the result of a mutation that applied but was not saved.
func respondError(c *fiber.Ctx, err error, data interface{}) error {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		stockErr      *service.InsufficientStockError
		customerErr   *service.IncompleteCustomerInfoError
		persistErr    *service.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     "Insufficient stock",
			"available": stockErr.Available,
			"requested": stockErr.Requested,
		})
	case errors.As(err, &customerErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Incomplete customer info",
			"fields": customerErr.Fields,
		})
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidScope),
		errors.Is(err, errInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &persistErr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Change applied but could not be saved",
			"data":  data,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}
