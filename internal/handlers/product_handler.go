package handlers

import (
	"errors"
	"log"
	"strconv"

	"lojinha/internal/middleware"
	"lojinha/internal/repositories"
	"lojinha/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/product/:id", h.HandleGetProduct)
	router.Get("/product", h.HandleListProducts)
}

// HandleGetProduct returns a single product. The check order is part of the
// endpoint's contract: missing token 400, unknown product 404, unknown
// token 401.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	token := middleware.TokenFromContext(c)
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Authorization token is required",
		})
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		// A non-numeric id can match no product.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	product, err := h.productService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}

	if _, err := h.authService.Resolve(token); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve session",
		})
	}

	return c.JSON(fiber.Map{
		"name":              product.Name,
		"availableQuantity": product.AvailableQuantity,
		"price":             product.Price,
		"description":       product.Description,
		"image":             product.Image,
		"categoryId":        product.CategoryID,
	})
}

// HandleListProducts returns the catalog, optionally filtered by the name
// query as a case-insensitive substring: missing token 401, unknown
// token 404.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	token := middleware.TokenFromContext(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization token is required",
		})
	}

	if _, err := h.authService.Resolve(token); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Session not found",
			})
		}
		log.Printf("Error resolving session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve session",
		})
	}

	products, err := h.productService.Search(c.Query("name"))
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}

	return c.JSON(products)
}
