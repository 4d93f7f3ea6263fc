package http

import (
	"net/http"

	"go-product-catalog/internal/delivery/http/handler"
	"go-product-catalog/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router               *mux.Router
	productHandler       *handler.ProductHandler
	catalogScreenHandler *handler.CatalogScreenHandler
	sessionMiddleware    *middleware.SessionMiddleware
	loggingMiddleware    *middleware.LoggingMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	productHandler *handler.ProductHandler,
	catalogScreenHandler *handler.CatalogScreenHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		productHandler:       productHandler,
		catalogScreenHandler: catalogScreenHandler,
		sessionMiddleware:    sessionMiddleware,
		loggingMiddleware:    loggingMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.home).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.Use(r.corsMiddleware.Handle)

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Product resource
	api.HandleFunc("/products", r.productHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/products", r.productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", r.productHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", r.productHandler.Delete).Methods(http.MethodDelete)
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(r.preflight)

	// Catalog screen (session scoped)
	screen := r.router.PathPrefix("/products").Subrouter()
	screen.Use(r.sessionMiddleware.Handle)
	screen.HandleFunc("", r.catalogScreenHandler.Index).Methods(http.MethodGet)
	screen.HandleFunc("/search", r.catalogScreenHandler.Search).Methods(http.MethodPost)
	screen.HandleFunc("/create", r.catalogScreenHandler.Create).Methods(http.MethodPost)
	screen.HandleFunc("/save", r.catalogScreenHandler.Save).Methods(http.MethodPost)
	screen.HandleFunc("/cancel", r.catalogScreenHandler.Cancel).Methods(http.MethodPost)
	screen.HandleFunc("/{id}/edit", r.catalogScreenHandler.Edit).Methods(http.MethodPost)
	screen.HandleFunc("/{id}/delete", r.catalogScreenHandler.Delete).Methods(http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) home(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, "/products", http.StatusFound)
}

// preflight gives OPTIONS requests a matching route so the subrouter's CORS
// middleware runs and answers them.
func (r *Router) preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
