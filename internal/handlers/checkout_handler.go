package handlers

import (
	"errors"
	"log"

	"lojinha/internal/middleware"
	"lojinha/internal/models"
	"lojinha/internal/repositories"
	"lojinha/internal/sanitize"
	"lojinha/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkout submissions.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	v := validator.New()
	// digits: the string is made of decimal digits only. The numeric tag
	// also admits signs and decimal points, which tax ids and phone
	// numbers must not contain.
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validate:        v,
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest is the checkout payload. Field spellings follow the wire
// contract. Total is a pointer so a missing field fails required instead of
// defaulting to zero.
type CheckoutRequest struct {
	CPF       string            `json:"cpf" validate:"omitempty,digits,len=11"`
	CelNumber string            `json:"celNumber" validate:"omitempty,digits,min=10,max=11"`
	Adress    string            `json:"adress" validate:"required"`
	Payment   string            `json:"payment" validate:"required"`
	Total     *int64            `json:"total" validate:"required"`
	Cart      []models.CartLine `json:"cart" validate:"required,min=1,dive"`
}

// HandleCheckout validates and sanitizes the submission, then runs the
// checkout flow: 400 for any validation failure, unknown product or
// oversell; 404 when the bearer token resolves no session.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	req.CPF = sanitize.Strip(req.CPF)
	req.CelNumber = sanitize.Strip(req.CelNumber)
	req.Adress = sanitize.Strip(req.Adress)
	req.Payment = sanitize.Strip(req.Payment)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}
	if !models.PaymentMethods[req.Payment] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment method",
		})
	}

	token := middleware.TokenFromContext(c)
	_, err := h.checkoutService.Checkout(token, services.Submission{
		CPF:       req.CPF,
		CelNumber: req.CelNumber,
		Adress:    req.Adress,
		Payment:   req.Payment,
		Total:     *req.Total,
		Cart:      req.Cart,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Session not found",
			})
		case errors.Is(err, repositories.ErrProductNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart references an unknown product",
			})
		case errors.Is(err, repositories.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Insufficient stock for a cart item",
			})
		}
		log.Printf("Error creating checkout order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not complete checkout",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
