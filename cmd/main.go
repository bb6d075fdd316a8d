package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yojana-mitra/backend/internal/ai"
	"github.com/yojana-mitra/backend/internal/assist"
	"github.com/yojana-mitra/backend/internal/config"
	"github.com/yojana-mitra/backend/internal/metrics"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	// --- Provider ---
	prov, known := ai.Resolve(cfg.Provider, cfg.Model, cfg.APIKey)
	switch {
	case !known:
		logger.Warnf("unknown provider %q, every request will use the local scheme fallback", cfg.Provider)
	case prov.Key == "":
		logger.Warnf("no API key for provider %q, every request will use the local scheme fallback", prov.ID)
	}

	var client ai.AI
	if known && prov.Key != "" {
		client = ai.NewClient(prov, logger.WithField("component", "ai"))
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Assist module wiring ---
	svc := assist.NewService(client, prov.ID, logger.WithField("component", "assist"))
	handler := assist.NewHandler(svc, prov, logger.WithField("component", "http"))

	assist.RegisterRoutes(r, handler)

	// --- health & metrics ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on :%s (provider: %s, model: %s)", cfg.Port, prov.ID, prov.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
		logger.Info("server stopped")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}
}

// requestLogger tags every request with an id, counts it and logs the
// outcome once the handler returns.
func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set("X-Request-Id", id)

			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			metrics.RequestCount.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()
			log.WithFields(logrus.Fields{
				"id":     id,
				"method": r.Method,
				"path":   r.URL.Path,
				"status": status,
				"took":   time.Since(start).Round(time.Millisecond).String(),
			}).Info("request")
		})
	}
}
