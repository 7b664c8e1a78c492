package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/PizzaBo93/posapppizza/internal/config"
	"github.com/PizzaBo93/posapppizza/internal/handlers"
	"github.com/PizzaBo93/posapppizza/internal/middleware"
	"github.com/PizzaBo93/posapppizza/internal/services"
	"github.com/PizzaBo93/posapppizza/internal/store"
)

func SetupRouter(cfg config.Config, storeClient *store.Client, sessions *services.SessionService, pages *handlers.PageHandler, logger zerolog.Logger) http.Handler {
	authHandler := handlers.NewAuthHandler(storeClient, sessions, logger)
	orderHandler := handlers.NewOrderHandler(storeClient, logger)

	r := mux.NewRouter()

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestValidation())

	// Login gets its own limiter to slow down credential stuffing.
	loginLimiter := middleware.NewRateLimiter(rate.Limit(5), 10)
	api.Handle("/login", loginLimiter.Middleware()(http.HandlerFunc(authHandler.Login))).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	orders := api.PathPrefix("/orders").Subrouter()
	orders.Use(middleware.Session(sessions, logger))
	orders.HandleFunc("", orderHandler.List).Methods("GET")
	orders.HandleFunc("", orderHandler.Create).Methods("POST")
	orders.HandleFunc("/{id}", orderHandler.Update).Methods("PATCH")
	orders.HandleFunc("/{id}/pay", orderHandler.Pay).Methods("POST")

	r.HandleFunc("/", pages.Index).Methods("GET")
	r.HandleFunc("/menu", pages.Menu).Methods("GET")
	r.HandleFunc("/staffapp", pages.StaffApp).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS wraps the whole router instead of running as mux middleware:
	// mux only applies Use middleware to matched routes, and no route
	// matches OPTIONS, so preflights would 405 without CORS headers.
	return middleware.CORS(cfg.FrontendOrigin)(r)
}
