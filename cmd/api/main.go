package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/elitecards/admin-console/config"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/server"
	"github.com/elitecards/admin-console/internal/session"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Session backend: Redis when reachable, in-memory otherwise
	var sessions session.Store
	redisClient, err := session.NewRedisClient(session.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		URL:      cfg.RedisURL,
	})
	if err != nil {
		log.Printf("Redis unavailable, falling back to in-memory sessions: %v", err)
		sessions = session.NewMemoryStore()
	} else {
		sessions = session.NewRedisStore(redisClient)
	}

	// Gateway to the platform API
	gw := platform.NewClient(cfg.PlatformBaseURL, sessions)

	// Create and start server
	srv := server.New(cfg, gw, sessions, log.Default())

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
