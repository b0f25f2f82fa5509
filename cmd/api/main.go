package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/parkwell/parkwell-go/internal/config"
	"github.com/parkwell/parkwell-go/internal/handler"
	"github.com/parkwell/parkwell-go/internal/mailer"
	"github.com/parkwell/parkwell-go/internal/middleware"
	"github.com/parkwell/parkwell-go/internal/model"
	"github.com/parkwell/parkwell-go/internal/repository"
	"github.com/parkwell/parkwell-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(context.Background(), db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	parkingRepo := repository.NewParkingRepository(db)
	carRepo := repository.NewCarRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := service.NewAuthService(userRepo, mailer.NewLogMailer(),
		cfg.JWTSecret, cfg.JWTExpiry, cfg.ResetExpiry, cfg.FrontendURL)
	parkingService := service.NewParkingService(parkingRepo)
	carService := service.NewCarService(carRepo)
	reportService := service.NewReportService(reportRepo)

	authHandler := handler.NewAuthHandler(authService)
	parkingHandler := handler.NewParkingHandler(parkingService)
	carHandler := handler.NewCarHandler(carService)
	reportHandler := handler.NewReportHandler(reportService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Public
	r.Get("/parking", parkingHandler.HandleList)
	r.Get("/parking/{id}", parkingHandler.HandleGet)
	r.Get("/cars/active", carHandler.HandleListActive)

	// Credential endpoints, rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/forgot-password", authHandler.HandleForgotPassword)
		r.Post("/auth/reset-password", authHandler.HandleResetPassword)
	})

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.JWTSecret))

		r.Get("/auth/me", authHandler.HandleMe)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleAdmin, model.RoleAttendant))
			r.Post("/cars/entry", carHandler.HandleEntry)
			r.Post("/cars/exit", carHandler.HandleExit)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleAdmin))
			r.Post("/parking", parkingHandler.HandleCreate)
			r.Put("/parking/{id}", parkingHandler.HandleUpdate)
			r.Delete("/parking/{id}", parkingHandler.HandleDelete)
			r.Get("/parking/stats/overview", parkingHandler.HandleStats)
			r.Get("/parking/stats/utilization", parkingHandler.HandleUtilization)
			r.Get("/reports/entered", reportHandler.HandleEnteredCars)
			r.Get("/reports/outgoing", reportHandler.HandleOutgoingCars)
			r.Get("/reports/utilization", reportHandler.HandleUtilization)
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
