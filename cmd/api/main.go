package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-auth-profile/internal/config"
	"github.com/go-auth-profile/internal/infrastructure/dynamo"
	"github.com/go-auth-profile/internal/infrastructure/google"
	"github.com/go-auth-profile/internal/infrastructure/smtp"
	"github.com/go-auth-profile/internal/otp"
	transporthttp "github.com/go-auth-profile/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap the DynamoDB table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.UsersTable)

	verifier := google.NewVerifier(cfg.GoogleClientID, cfg.VerifyTimeout)
	mailer := smtp.NewMailer(cfg)

	// In-memory OTP registry with a periodic expiry sweep.
	registry := otp.NewMemoryRegistry()
	sweeper := otp.NewSweeper(registry, cfg.SweepInterval)
	sweeper.Start()

	deps := &transporthttp.Deps{
		ProfileRepo: dynamo.NewProfileRepo(dynamoClient, cfg.UsersTable),
		Registry:    registry,
		Mailer:      mailer,
		Verifier:    verifier,
		OTPTTL:      cfg.OTPTTL,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	sweeper.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
