// Package server implements the REST API for computing and retrieving
// diagnostics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/oceandiags/internal/database"
	"github.com/chrissnell/oceandiags/internal/log"
	"github.com/chrissnell/oceandiags/internal/storage"
	"github.com/chrissnell/oceandiags/pkg/config"
	"github.com/chrissnell/oceandiags/pkg/responseformat"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Controller represents the REST server controller
type Controller struct {
	ctx          context.Context
	wg           *sync.WaitGroup
	serverConfig config.ServerData
	Server       http.Server
	DB           *database.Client
	DBEnabled    bool
	resultChan   chan<- storage.Result
	formatter    *responseformat.Formatter
	logger       *zap.SugaredLogger
	handlers     *Handlers
}

// NewController creates a new REST server controller. The result channel may
// be nil when no storage backend is configured.
func NewController(ctx context.Context, wg *sync.WaitGroup, provider config.ConfigProvider, resultChan chan<- storage.Result, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		resultChan: resultChan,
		formatter:  responseformat.NewFormatter(),
		logger:     logger,
	}

	serverConfig, err := provider.GetServerConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading server configuration: %v", err)
	}
	ctrl.serverConfig = *serverConfig

	// If a listen address was not provided, listen on all interfaces
	if ctrl.serverConfig.ListenAddr == "" {
		logger.Info("server.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.serverConfig.ListenAddr = "0.0.0.0"
	}
	if ctrl.serverConfig.Port == 0 {
		ctrl.serverConfig.Port = config.DefaultPort
	}

	// A read-side database client lets clients fetch archived results. It
	// is optional; computation works without it.
	storageConfig, err := provider.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading storage configuration: %v", err)
	}
	if storageConfig.TimescaleDB != nil && storageConfig.TimescaleDB.ConnectionString != "" {
		ctrl.DB = database.NewClient(storageConfig.TimescaleDB.ConnectionString, logger)
		if err := ctrl.DB.Connect(); err != nil {
			return nil, fmt.Errorf("error connecting to database: %v", err)
		}
		ctrl.DBEnabled = true
	}

	// Create handlers
	ctrl.handlers = NewHandlers(ctrl)

	// Set up router
	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.serverConfig.ListenAddr, ctrl.serverConfig.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.serverConfig.Cert != "" && c.serverConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.serverConfig.Cert, c.serverConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(c.requestIDMiddleware)
	router.Use(c.loggingMiddleware)

	router.HandleFunc("/healthz", c.handlers.GetHealth).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/diagnostics", c.handlers.ListDiagnostics).Methods("GET")
	api.HandleFunc("/{domain}/{diagnostic}", c.handlers.ComputeDiagnostic).Methods("POST")

	// Archive endpoints are only useful with a database behind them
	if c.DBEnabled {
		api.HandleFunc("/results", c.handlers.GetRecentResults).Methods("GET")
		api.HandleFunc("/results/{request_id}", c.handlers.GetResultsByRequest).Methods("GET")
	}

	return router
}

// requestIDMiddleware assigns every request a UUID and exposes it in the
// response headers and the request context
func (c *Controller) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs one line per request
func (c *Controller) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		c.logger.Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID(r),
			"duration", time.Since(start),
		)
	})
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
