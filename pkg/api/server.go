// Package api implements the HTTP and WebSocket request surface:
// authentication, conversations, jobs, analytics execution, the live
// event channel, and the operational endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/database"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/llm"
	"github.com/splunk-genie/genie/pkg/metrics"
	"github.com/splunk-genie/genie/pkg/queue"
	"github.com/splunk-genie/genie/pkg/retrieval"
	"github.com/splunk-genie/genie/pkg/services"
)

// Deps carries everything the server needs. All fields except cfg and
// the database client are optional; handlers degrade when a dependency
// is absent.
type Deps struct {
	Config   *config.Config
	DBClient *database.Client

	Conversations *services.ConversationService
	Messages      *services.MessageService
	Jobs          *services.JobService
	Results       *services.QueryResultService
	Warnings      *services.SystemWarningsService

	LLM       llm.Client
	Retrieval *retrieval.Client
	Analytics *analytics.Client

	ConnManager *events.ConnectionManager
	Publisher   *events.Publisher
	WorkerPool  *queue.WorkerPool
	Exporter    *metrics.Exporter
}

// Server is the HTTP server. Routes are registered once at
// construction; Start and Shutdown manage the listener.
type Server struct {
	cfg        *config.Config
	echo       *echo.Echo
	httpServer *http.Server
	auth       *authenticator

	dbClient      *database.Client
	conversations *services.ConversationService
	messages      *services.MessageService
	jobs          *services.JobService
	results       *services.QueryResultService
	warnings      *services.SystemWarningsService

	llmClient llm.Client
	retrieval *retrieval.Client
	analytics *analytics.Client

	connManager *events.ConnectionManager
	publisher   *events.Publisher
	workerPool  *queue.WorkerPool
	exporter    *metrics.Exporter
}

// NewServer creates the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:           deps.Config,
		echo:          echo.New(),
		auth:          newAuthenticator(deps.Config.Auth),
		dbClient:      deps.DBClient,
		conversations: deps.Conversations,
		messages:      deps.Messages,
		jobs:          deps.Jobs,
		results:       deps.Results,
		warnings:      deps.Warnings,
		llmClient:     deps.LLM,
		retrieval:     deps.Retrieval,
		analytics:     deps.Analytics,
		connManager:   deps.ConnManager,
		publisher:     deps.Publisher,
		workerPool:    deps.WorkerPool,
		exporter:      deps.Exporter,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.Use(requestLogger())
	e.Use(securityHeaders())
	e.Use(corsMiddleware(s.cfg.Server.CORSOrigins))

	// Unauthenticated surface.
	e.GET("/health", s.healthHandler)
	e.POST("/auth/login", s.loginHandler)
	e.GET("/ws", s.wsHandler)
	if s.exporter != nil {
		e.GET("/metrics", wrapHTTPHandler(s.exporter.Handler()))
	}

	auth := s.requireUser()
	e.GET("/auth/me", s.meHandler, auth)

	e.GET("/conversations", s.listConversationsHandler, auth)
	e.POST("/conversations", s.createConversationHandler, auth)
	e.DELETE("/conversations/:id", s.deleteConversationHandler, auth)
	e.GET("/conversations/:id/messages", s.listMessagesHandler, auth)
	e.POST("/conversations/:id/messages", s.createMessageHandler, auth)

	e.POST("/jobs", s.createJobHandler, auth)
	e.GET("/jobs/:id", s.getJobHandler, auth)

	e.POST("/analytics/execute", s.executeQueryHandler, auth)

	e.GET("/api/v1/system/info", s.systemInfoHandler, auth)
}

// Start runs the listener. Blocks until the server stops; returns
// http.ErrServerClosed after a clean Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener, waiting for in-flight requests up to
// the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// wrapHTTPHandler adapts a net/http handler (the prometheus exporter)
// to an echo route.
func wrapHTTPHandler(h http.Handler) echo.HandlerFunc {
	return func(c *echo.Context) error {
		h.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
