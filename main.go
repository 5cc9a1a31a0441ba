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

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
	"frontdesk-backend/storage"
)

func openGateway(cfg config.Config) (storage.Gateway, error) {
	switch cfg.StoreDriver {
	case "mysql":
		return storage.NewGormStore(cfg.MySQLDSN)
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	gateway, err := openGateway(cfg)
	if err != nil {
		log.Fatalf("❌ Storage connect failed (driver=%s): %v", cfg.StoreDriver, err)
	}
	log.Printf("✅ Storage ready (driver=%s)", cfg.StoreDriver)

	rooms, bookings, ui := services.LoadState(context.Background(), gateway)
	log.Printf("✅ State loaded: %d rooms, %d bookings", len(rooms), len(bookings))

	// Initialize services
	roomService := services.NewRoomService(gateway, rooms)
	bookingService := services.NewBookingService(gateway, bookings)
	uiService := services.NewUIStateService(gateway, ui)
	checkinService := services.NewCheckinService(services.NewBillingService(), roomService, bookingService)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, uiService, checkinService)
	bookingController := controllers.NewBookingController(bookingService, checkinService, cfg.ExportDir)
	checkinController := controllers.NewCheckinController(checkinService)
	uiController := controllers.NewUIController(uiService)

	// Build router
	router := routes.SetupRouter(roomController, bookingController, checkinController, uiController)

	addr := ":" + cfg.Port
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

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
