package router

import (
	"net/http"

	"messmate-admin/internal/client"
	"messmate-admin/internal/config"
	"messmate-admin/internal/handlers"
	"messmate-admin/internal/middleware"
	"messmate-admin/internal/services"
	"messmate-admin/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(cfg config.Config, sessions *session.Store, apiClient *client.Client, logger zerolog.Logger) *mux.Router {
	authService := services.NewAuthService(cfg.SessionSecret, logger)

	authHandler := handlers.NewAuthHandler(apiClient, sessions, authService, logger)
	dashboardHandler := handlers.NewDashboardHandler(apiClient, sessions, logger)
	menuHandler := handlers.NewMenuHandler(apiClient, sessions, logger)
	rechargeHandler := handlers.NewRechargeHandler(apiClient, sessions, logger)
	userHandler := handlers.NewUserHandler(apiClient, sessions, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(middleware.RequestValidation())
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(authService, logger))
	protectedAuth.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protectedAuth.HandleFunc("/session", authHandler.Session).Methods("GET")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Authentication(authService, logger))
	admin.Use(middleware.RequestValidation())

	admin.HandleFunc("/dashboard", dashboardHandler.GetStats).Methods("GET")

	admin.HandleFunc("/menu-items", menuHandler.Create).Methods("POST")
	admin.HandleFunc("/menu-items", menuHandler.List).Methods("GET")
	admin.HandleFunc("/menu-items/{id}", menuHandler.Update).Methods("PUT")
	admin.HandleFunc("/menu-items/{id}", menuHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/weekly-menu", menuHandler.SetWeeklyMenu).Methods("POST")

	admin.HandleFunc("/guest/recharge", rechargeHandler.Recharge).Methods("POST")

	admin.HandleFunc("/users", userHandler.List).Methods("GET")
	admin.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	admin.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
