package handlers

import (
	"net/http"
	"time"

	"github.com/Dhruv435/slugma-admin/internal/events"
	"github.com/Dhruv435/slugma-admin/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything the route table needs.
type Deps struct {
	Store      *store.Store
	Publisher  *events.Publisher
	JWTKey     []byte
	TokenTTL   time.Duration
	UploadDir  string
	LoginEvery time.Duration // min interval between login attempts per IP
}

// NewRouter builds the full API surface with the middleware chain applied.
func NewRouter(deps Deps) http.Handler {
	auth := &AuthHandler{Store: deps.Store, JWTKey: deps.JWTKey, TokenTTL: deps.TokenTTL}
	products := &ProductHandler{Store: deps.Store, UploadDir: deps.UploadDir}
	orders := &OrderHandler{Store: deps.Store, Publisher: deps.Publisher}
	users := &UserHandler{Store: deps.Store}
	stats := &StatsHandler{Store: deps.Store}

	loginEvery := deps.LoginEvery
	if loginEvery <= 0 {
		loginEvery = time.Second
	}
	rateLimiter := NewRateLimiter(loginEvery)

	mux := http.NewServeMux()

	// Static files (uploaded product images)
	fileServer := http.FileServer(http.Dir(deps.UploadDir))
	mux.Handle("/static/uploads/", http.StripPrefix("/static/uploads", fileServer))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/admin/login", rateLimiter.Middleware(auth.Login))
	mux.HandleFunc("GET /api/admin/stats", auth.RequireAuth(stats.Dashboard))

	// Product reads stay public; the storefront shares them.
	mux.HandleFunc("GET /api/products", products.List)
	mux.HandleFunc("GET /api/products/{id}", products.Get)
	mux.HandleFunc("POST /api/products", auth.RequireAuth(products.Create))
	mux.HandleFunc("PUT /api/products/{id}", auth.RequireAuth(products.Update))
	mux.HandleFunc("DELETE /api/products/{id}", auth.RequireAuth(products.Delete))

	mux.HandleFunc("GET /api/orders", auth.RequireAuth(orders.List))
	mux.HandleFunc("PUT /api/orders/{id}", auth.RequireAuth(orders.Update))

	mux.HandleFunc("GET /api/users", auth.RequireAuth(users.List))
	mux.HandleFunc("DELETE /api/users/{id}", auth.RequireAuth(users.Delete))

	// Chain: Logger -> Security Headers -> Metrics -> Mux
	return LoggingMiddleware(
		SecurityHeadersMiddleware(
			MetricsMiddleware(mux),
		),
	)
}
