package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/routes"
	"resort-backend/services"
)

const (
	sessionTTL    = 2 * time.Hour
	sweepInterval = 10 * time.Minute
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	catalogService := services.NewCatalogService(db)
	bookingService := services.NewBookingService(db)
	draftService := services.NewDraftService(catalogService, bookingService, sessionTTL)
	cartService := services.NewCartService(catalogService, sessionTTL)
	paymentService := services.NewPaymentService(bookingService)

	// Expire abandoned drafts/carts in the background
	sweepCtx, stopSweepers := context.WithCancel(context.Background())
	go draftService.RunSweeper(sweepCtx, sweepInterval)
	go cartService.RunSweeper(sweepCtx, sweepInterval)

	// Initialize controllers
	draftController := controllers.NewDraftController(draftService)
	cartController := controllers.NewCartController(cartService)
	catalogController := controllers.NewCatalogController(catalogService)
	bookingController := controllers.NewBookingController(bookingService, paymentService)

	// Build router
	router := routes.SetupRouter(draftController, cartController, catalogController, bookingController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")
	stopSweepers()

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
