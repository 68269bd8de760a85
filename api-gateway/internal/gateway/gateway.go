package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"feastly/logger"
)

const requestIDHeader = "X-Request-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
	StatsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *logger.Logger
}

func NewGateway(config Config, client HTTPClient, log *logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

// NewTracedClient returns an HTTP client whose outgoing requests carry the
// caller's trace context.
func NewTracedClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r to targetURL+path and streams the upstream reply back.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL, path string) {
	ctx := r.Context()
	g.log.Debug(ctx, "proxy", "forwarding request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("target", targetURL+path))

	url := targetURL + path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, url, r.Body)
	if err != nil {
		g.log.Error(ctx, "proxy", "failed to create request", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Set(requestIDHeader, logger.RequestID(ctx))

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error(ctx, "proxy", "upstream unavailable", err, slog.String("target", targetURL))
		writeMessage(w, http.StatusBadGateway, "Upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Error(ctx, "proxy", "failed to copy response", err)
	}
}

// RouteHandler sends stats paths to stats-svc unchanged and every other /api
// path to order-svc with the /api prefix removed.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if isStatsPath(path) {
		g.ProxyRequest(w, r, g.config.StatsSvcURL, path)
		return
	}

	if strings.HasPrefix(path, "/api/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL, strings.TrimPrefix(path, "/api"))
		return
	}

	writeMessage(w, http.StatusNotFound, "Route not found")
}

func isStatsPath(path string) bool {
	if path == "/api/stats" || strings.HasPrefix(path, "/api/stats/") {
		return true
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return len(parts) == 4 && parts[0] == "api" && parts[1] == "restaurants" && parts[3] == "stats"
}

func (g *Gateway) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(g.withRequestID)
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return otelhttp.NewHandler(c.Handler(r), "api-gateway")
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
