package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lojinha/internal/handlers"
	"lojinha/internal/middleware"
	"lojinha/internal/models"
	"lojinha/internal/notification"
	"lojinha/internal/repositories"
	"lojinha/internal/services"
	"lojinha/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_SSLMODE", "require")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "no-reply@lojinha.com.br")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Repositories ---
	// PostgreSQL when DATABASE_URL is configured, in-memory otherwise.
	var (
		userRepo     repositories.UserRepository
		sessionRepo  repositories.SessionRepository
		productRepo  repositories.ProductRepository
		checkoutRepo repositories.CheckoutRepository
	)
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(withSSLMode(dsn, viper.GetString("DATABASE_SSLMODE"))), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.Product{}, &models.CheckoutOrder{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		userRepo = repositories.NewGORMUserRepository(db)
		sessionRepo = repositories.NewGORMSessionRepository(db)
		productRepo = repositories.NewGORMProductRepository(db)
		checkoutRepo = repositories.NewGORMCheckoutRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		memUsers := repositories.NewMemoryUserRepository()
		memProducts := repositories.NewMemoryProductRepository()
		userRepo = memUsers
		sessionRepo = repositories.NewMemorySessionRepository(memUsers)
		productRepo = memProducts
		checkoutRepo = repositories.NewMemoryCheckoutRepository(memProducts)
		seedProducts(memProducts)
	}

	// --- Initialize RabbitMQ Client and Notification Worker ---
	// Both are optional: without a broker, checkout logs and skips the
	// receipt dispatch.
	var publisher services.ReceiptPublisher
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		mailer := notification.NewSendGridMailer(
			viper.GetString("SENDGRID_API_KEY"),
			"Lojinha",
			viper.GetString("MAIL_FROM"),
		)
		worker := notification.NewWorker(mailer)
		log.Println("Starting receipt consumer...")
		if err := mqClient.ConsumeReceipts(worker.HandleDelivery); err != nil {
			log.Printf("Failed to start receipt consumer: %v", err)
		}
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo)
	productService := services.NewProductService(productRepo)
	checkoutService := services.NewCheckoutService(checkoutRepo, productRepo, sessionRepo, publisher)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, authService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(middleware.BearerToken())

	// --- API Routes ---
	authHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	checkoutHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// withSSLMode applies the configured TLS trust setting to the connection
// string, for both URL and key=value DSN forms, unless it already names one.
func withSSLMode(dsn, mode string) string {
	if mode == "" || strings.Contains(dsn, "sslmode") {
		return dsn
	}
	if strings.Contains(dsn, "://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "sslmode=" + mode
	}
	return dsn + " sslmode=" + mode
}

// seedProducts populates the in-memory catalog so the API is usable without
// a database.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{Name: "Mouse sem fio", AvailableQuantity: 300, Price: 3000, Description: "Um excelente mouse sem fio", Image: "https://cdn.lojinha.com.br/produtos/mouse-sem-fio.png", CategoryID: 1},
		{Name: "Mouse", AvailableQuantity: 300, Price: 3000, Description: "Um excelente mouse", Image: "https://cdn.lojinha.com.br/produtos/mouse.png", CategoryID: 1},
		{Name: "Teclado", AvailableQuantity: 5, Price: 10000, Description: "Um excelente teclado", Image: "https://cdn.lojinha.com.br/produtos/teclado.png", CategoryID: 1},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
		}
	}
}
