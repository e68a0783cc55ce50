package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/journey-app/journey/internal/activity"
	"github.com/journey-app/journey/internal/database"
	"github.com/journey-app/journey/internal/economy"
	"github.com/journey-app/journey/internal/handler"
	"github.com/journey-app/journey/internal/logger"
	"github.com/journey-app/journey/internal/metrics"
	"github.com/journey-app/journey/internal/middleware"
	"github.com/journey-app/journey/internal/mission"
	"github.com/journey-app/journey/internal/raffle"
)

// Options configures the HTTP listener and its middleware
type Options struct {
	Port            int
	MaxRequestBytes int64
	TrustedProxies  []string
	ServiceName     string
}

// Services are the collaborators the routes are served by
type Services struct {
	Missions    mission.Service
	Raffles     raffle.Service
	Activity    activity.Service
	Economy     economy.Service
	Leaderboard handler.LeaderboardReader
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, auth *middleware.Authenticator, svc Services) *Server {
	r := NewRouter(opts, dbPool, auth, svc)

	var h http.Handler = r
	if opts.ServiceName != "" {
		h = otelhttp.NewHandler(r, opts.ServiceName)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           h,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Chi middleware executes in order defined (outermost to innermost).
func NewRouter(opts Options, dbPool database.Pool, auth *middleware.Authenticator, svc Services) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	missionHandler := handler.NewMissionHandler(svc.Missions)
	raffleHandler := handler.NewRaffleHandler(svc.Raffles)
	activityHandler := handler.NewActivityHandler(svc.Activity)
	leaderboardHandler := handler.NewLeaderboardHandler(svc.Leaderboard, svc.Economy)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(FailedAuthMiddleware(opts.TrustedProxies, detector))
		r.Use(auth.Middleware)

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", missionHandler.HandleListMissions)
			r.Get("/progress", missionHandler.HandleGetProgress)
			r.Post("/{id}/claim", missionHandler.HandleClaimMission)
			r.Get("/{id}/claim", missionHandler.HandleGetClaimState)
		})

		r.Post("/activity", activityHandler.HandleRecordActivity)

		r.Route("/raffles", func(r chi.Router) {
			r.Get("/", raffleHandler.HandleListRaffles)
			r.Get("/{id}", raffleHandler.HandleGetRaffle)
			r.Post("/{id}/enter", raffleHandler.HandleEnterRaffle)
		})

		r.Get("/leaderboard", leaderboardHandler.HandleGetLeaderboard)
		r.Get("/wallet", leaderboardHandler.HandleGetWallet)

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Route("/raffles", func(r chi.Router) {
				r.Post("/", raffleHandler.HandleCreateRaffle)
				r.Get("/{id}/participants", raffleHandler.HandleListParticipants)
				r.Post("/{id}/draw", raffleHandler.HandleDrawRaffle)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the root handler for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
