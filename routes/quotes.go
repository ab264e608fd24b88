package routes

import (
	"errors"
	"log"

	"xaymart/db"
	"xaymart/models"
	"xaymart/quote"

	"github.com/gofiber/fiber/v2"
)

func createQuoteRequest(c *fiber.Ctx) error {
	var in quote.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	request, fieldErrs, err := quote.Create(db.DB, in)
	if err != nil {
		log.Println("Create quote request error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create quote request",
		})
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrs,
		})
	}

	notifyAdmins("quote.created", request)

	return c.Status(fiber.StatusCreated).JSON(request)
}

func getAllQuoteRequests(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.IsValidQuoteStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	requests, err := quote.List(db.DB, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get quote requests",
		})
	}
	return c.JSON(requests)
}

func getQuoteRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	request, err := quote.Get(db.DB, uint(id))
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quote request not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get quote request",
		})
	}
	return c.JSON(request)
}

func updateQuoteStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if !models.IsValidQuoteStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"status": "Trạng thái không hợp lệ"},
		})
	}

	request, err := quote.UpdateStatus(db.DB, uint(id), body.Status)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quote request not found",
			})
		}
		log.Println("Update quote status error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update quote request",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quote request updated successfully",
		"data":    request,
	})
}

func deleteQuoteRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := quote.Delete(db.DB, uint(id)); err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Quote request not found",
			})
		}
		log.Println("Delete quote request error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete quote request",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quote request deleted successfully",
	})
}
