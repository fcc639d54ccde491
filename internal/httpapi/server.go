package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nlpd/internal/nlp"
	"nlpd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Extract(ctx context.Context, text string) (types.Extraction, error)
	Ready() bool
}

// NewMux builds the HTTP handler serving svc.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, metrics, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: corsAllowedHeaders,
		MaxAge:         300,
	}))
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/health-check", healthCheck)
	r.Post("/ner", nerHandler(svc))

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("draining"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// healthCheck godoc
//
//	@Summary	Liveness check
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"OK"
//	@Router		/health-check [get]
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// nerHandler godoc
//
//	@Summary		Extract named entities and meaningful tokens
//	@Description	Returns every named entity followed by every non-stop, non-punctuation noun, proper noun or adjective. Tokens inside entities appear in both groups.
//	@Tags			ner
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.NERRequest	true	"Text to analyze"
//	@Success		200		{array}		types.Span
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		415		{object}	types.ErrorResponse
//	@Failure		429		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Router			/ner [post]
func nerHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)

		text, err := decodeNERRequest(w, r)
		if err != nil {
			status := statusFor(err)
			writeJSONError(w, status, err.Error())
			logEnd(r, lvl, status, start, err)
			return
		}
		if lvl >= LevelDebug {
			ev := zlog.Debug().Str("path", r.URL.Path).Int("text_len", len(text))
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				ev = ev.Str("request_id", rid)
			}
			ev.Msg("ner start")
		}

		// Join server base context with request context so shutdown cancels waits too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		analysisStart := time.Now()
		ex, err := svc.Extract(ctx, text)
		nerAnalysisDuration.Observe(time.Since(analysisStart).Seconds())
		if err != nil {
			// If context was canceled (client disconnect), just return.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status := statusFor(err)
			if status == http.StatusTooManyRequests {
				IncrementBackpressure(nlp.TooBusyReason(err))
			}
			writeJSONError(w, status, err.Error())
			logEnd(r, lvl, status, start, err)
			return
		}
		if ex.Spans == nil {
			ex.Spans = []types.Span{}
		}
		observeExtraction(ex)
		writeJSON(w, http.StatusOK, ex.Spans)
		logEnd(r, lvl, http.StatusOK, start, nil)
	}
}
