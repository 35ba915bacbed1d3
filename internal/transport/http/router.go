package http

import (
	"net/http"
	"time"

	"github.com/go-auth-profile/internal/application/auth"
	"github.com/go-auth-profile/internal/application/user"
	"github.com/go-auth-profile/internal/config"
	"github.com/go-auth-profile/internal/infrastructure/smtp"
	"github.com/go-auth-profile/internal/otp"
	"github.com/go-auth-profile/internal/transport/http/handler"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProfileRepo ProfileRepository
	Registry    otp.Registry
	Mailer      smtp.Mailer
	Verifier    IdentityVerifier
	OTPTTL      time.Duration
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		ProfileRepo: deps.ProfileRepo,
		Registry:    deps.Registry,
		Mailer:      deps.Mailer,
		Verifier:    deps.Verifier,
		OTPTTL:      deps.OTPTTL,
	})
	userSvc := user.NewService(user.ServiceDeps{ProfileRepo: deps.ProfileRepo})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Post("/auth/identity-signin", authH.IdentitySignIn)
	r.Post("/auth/request-otp", authH.RequestOTP)
	r.Post("/auth/verify-otp", authH.VerifyOTP)

	r.Get("/users/check-email", userH.CheckEmail)
	r.Get("/users/profile", userH.GetProfile)
	r.Post("/users/update-profile", userH.UpdateProfile)

	return r
}
