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

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/sign-up", h.HandleSignUp)
	router.Post("/sign-in", h.HandleSignIn)
	router.Post("/logout", h.HandleLogout)
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleSignUp registers a new account. A duplicate email reports 409.
func (h *AuthHandler) HandleSignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing sign-up request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	req.Name = sanitize.Strip(req.Name)
	req.Email = sanitize.Strip(req.Email)
	req.Password = sanitize.Strip(req.Password)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.Register(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Email already registered",
			})
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleSignIn authenticates a user and returns the opaque session token as
// the plain-text response body.
func (h *AuthHandler) HandleSignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing sign-in request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	req.Email = sanitize.Strip(req.Email)
	req.Password = sanitize.Strip(req.Password)

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication failed",
			})
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not sign in",
		})
	}

	return c.SendString(token)
}

// HandleLogout deletes the session behind the bearer token: 401 when no
// token was supplied, 404 when no session matches it.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	token := middleware.TokenFromContext(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization token is required",
		})
	}

	if err := h.authService.Logout(token); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Session not found",
			})
		}
		log.Printf("Error during logout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log out",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
