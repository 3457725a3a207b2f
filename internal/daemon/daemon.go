// Package daemon implements the HTTP front end described in spec.md §6: a
// banner route, a GET variant that downloads and validates a feed by URL,
// and a POST variant that validates an uploaded ZIP body. The daemon is an
// external collaborator of the core — it owns process lifecycle, routing,
// and serialization, and calls into internal/engine for everything else.
package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/customrules"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/engine"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/logging"
)

const defaultMaxSize = 1000

// Handler wraps the validation core with the REST endpoints of spec.md §6.
type Handler struct {
	rules  *customrules.Rules
	logger logging.Logger
}

func NewHandler(rules *customrules.Rules) *Handler {
	if rules == nil {
		rules = customrules.Default()
	}
	return &Handler{rules: rules, logger: logging.GetGlobalLogger()}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/validate", h.handleValidateURL).Methods(http.MethodGet)
	r.HandleFunc("/validate", h.handleValidateBody).Methods(http.MethodPost)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "transit-feed-auditor: GTFS archive validator\nGET  /validate?url=...&max_size=...\nPOST /validate?max_size=...\n")
}

func (h *Handler) handleValidateURL(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		http.Error(w, `{"error":"missing url query parameter"}`, http.StatusBadRequest)
		return
	}
	maxSize := parseMaxSize(r, defaultMaxSize)

	h.logger.Info("validating feed from url", logging.String("url", url), logging.Int("max_size", maxSize))
	resp := engine.ValidateURL(url, maxSize, h.rules)
	writeJSON(w, resp)
}

func (h *Handler) handleValidateBody(w http.ResponseWriter, r *http.Request) {
	maxSize := parseMaxSize(r, defaultMaxSize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"reading request body: %s"}`, err), http.StatusBadRequest)
		return
	}

	h.logger.Info("validating uploaded feed", logging.Int("bytes", len(data)), logging.Int("max_size", maxSize))
	resp := engine.ValidateBytes(data, maxSize, h.rules)
	writeJSON(w, resp)
}

func parseMaxSize(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("max_size")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.GetGlobalLogger().Error("encoding response failed", logging.ErrorField("error", err))
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	logger := logging.GetGlobalLogger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request", logging.String("method", r.Method), logging.String("path", r.URL.Path), logging.Duration("elapsed", time.Since(start)))
	})
}

// Run starts the daemon and blocks until it receives SIGINT/SIGTERM, then
// shuts down gracefully (spec §6 "HTTP daemon (external)"; bind address
// `${BIND:-127.0.0.1}:${PORT:-7878}`).
func Run() error {
	return RunWithRules(customrules.Default())
}

// RunWithRules is Run with an explicit custom-rules overlay, used by the CLI
// when -c/--custom-rules is supplied alongside a daemon start.
func RunWithRules(rules *customrules.Rules) error {
	logger := logging.GetGlobalLogger()

	bind := os.Getenv("BIND")
	if bind == "" {
		bind = "127.0.0.1"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "7878"
	}

	r := mux.NewRouter()
	NewHandler(rules).RegisterRoutes(r)
	r.Use(loggingMiddleware)

	srv := &http.Server{
		Addr:         bind + ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("daemon listening", logging.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("daemon shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
