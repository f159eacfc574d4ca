package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-backend/cache"
	"marketplace-backend/controllers"
	"marketplace-backend/database"
	"marketplace-backend/logger"
	"marketplace-backend/mailer"
	"marketplace-backend/middleware"
	"marketplace-backend/repository"
	"marketplace-backend/routes"
	"marketplace-backend/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	logger.Initialize(cfg.Environment)
	log := logger.Log
	defer log.Sync()

	// --- Stores ---
	mongoClient, db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}

	var productCache services.ProductCache
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		} else {
			productCache = cache.NewProductCache(redisClient, log)
			defer redisClient.Close()
		}
	}

	// --- Mail ---
	var notifier *mailer.NotificationService
	sender, err := mailer.NewSMTPSender(cfg.SMTP)
	if err != nil {
		log.Warn("SMTP not configured, email notifications disabled", zap.Error(err))
		notifier = mailer.NewNotificationService(nil, log)
	} else {
		notifier = mailer.NewNotificationService(sender, log)
	}

	// --- Repositories ---
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	// --- Services ---
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	cartService := services.NewCartService(cartRepo, log)
	orderService := services.NewOrderService(orderRepo, log)
	fulfillmentService := services.NewFulfillmentService(orderRepo, cartRepo, productRepo, userRepo, cfg.DispatchPolicy, log)
	inventoryService := services.NewInventoryService(productRepo, cartRepo, orderRepo, userRepo, notifier, log)
	productService := services.NewProductService(productRepo, categoryRepo, inventoryService, productCache, log)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, log)
	customerService := services.NewCustomerService(customerRepo, userRepo, tokens, notifier, log)
	userService := services.NewUserService(userRepo, tokens, notifier, log)
	vendorService := services.NewVendorService(vendorRepo, userRepo, log)
	commentService := services.NewCommentService(commentRepo, log)

	// --- HTTP router ---
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	auth := middleware.NewAuthenticator(cfg.JWTSecret)
	routes.Register(r, auth, routes.Controllers{
		Carts:      controllers.NewCartController(cartService, log),
		Orders:     controllers.NewOrderController(orderService, fulfillmentService, log),
		Products:   controllers.NewProductController(productService, commentService, log),
		Categories: controllers.NewCategoryController(categoryService, log),
		Inventory:  controllers.NewInventoryController(inventoryService, log),
		Customers:  controllers.NewCustomerController(customerService, log),
		Users:      controllers.NewUserController(userService, log),
		Vendors:    controllers.NewVendorController(vendorService, log),
		Comments:   controllers.NewCommentController(commentService, log),
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if err := database.Disconnect(mongoClient); err != nil {
		log.Error("MongoDB disconnect error", zap.Error(err))
	}
	log.Info("Server stopped gracefully")
}
