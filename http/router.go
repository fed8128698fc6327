package http

import (
	"log/slog"
	"net/http"
	"time"

	"property-simulator/service"
)

// Dependencies groups what the router needs to build every route.
type Dependencies struct {
	Simulator      *service.SimulatorService
	TermComparison *service.TermComparisonService
	RateLimiter    *RateLimiter
	Metrics        *Metrics
	Logger         *slog.Logger
}

func NewRouter(deps Dependencies) http.Handler {
	simulatorHandler := NewSimulatorHandler(deps.Simulator, deps.Metrics, deps.Logger)
	termHandler := NewTermComparisonHandler(deps.TermComparison, deps.Logger)

	limited := func(route string, h http.HandlerFunc) http.Handler {
		return deps.Metrics.Instrument(route, RateLimitMiddleware(deps.RateLimiter, deps.Metrics, h))
	}

	mux := http.NewServeMux()
	mux.Handle("/simulator/calculate", limited("calculate", simulatorHandler.Calculate))
	mux.Handle("/simulator/imt", limited("imt", simulatorHandler.IMT))
	mux.Handle("/simulator/compare-terms", limited("compare_terms", termHandler.CompareTerms))
	mux.Handle("/simulator/tax-tables", limited("tax_tables", simulatorHandler.TaxTables))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Logger, map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", deps.Metrics.Handler())

	return RequestIDMiddleware(accessLog(deps.Logger, mux))
}

func accessLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Debug("request",
			"request_id", RequestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
