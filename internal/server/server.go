// Package server wires configuration, telemetry, upstream clients, and the
// aggregation services into a running HTTP service.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"nba-stats-service/internal/cache"
	"nba-stats-service/internal/config"
	"nba-stats-service/internal/fetch"
	httpapi "nba-stats-service/internal/http"
	"nba-stats-service/internal/leaders"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/metrics"
	"nba-stats-service/internal/playerstats"
	"nba-stats-service/internal/providers/espn"
	"nba-stats-service/internal/providers/nbacom"
	"nba-stats-service/internal/scoreboard"
	"nba-stats-service/internal/search"
	"nba-stats-service/internal/standings"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	cache   *cache.Cache

	scores    *scoreboard.Service
	standings *standings.Service
	stats     *playerstats.Service
	leaders   *leaders.Pipeline
	search    *search.Service

	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default upstream wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)
	responseCache := cache.New(true)

	espnClient := espn.NewClient(cfg.ESPN, cfg.Cache, fetch.New(fetch.Config{
		Source:        espn.SourceName,
		RatePerSecond: cfg.ESPN.RatePerSecond,
		Cache:         responseCache,
		Logger:        logger,
		Recorder:      recorder,
	}))
	nbacomClient := nbacom.NewClient(cfg.NBACom, cfg.Cache, fetch.New(fetch.Config{
		Source:   nbacom.SourceName,
		Cache:    responseCache,
		Logger:   logger,
		Recorder: recorder,
	}))

	scoresSvc := scoreboard.New(espnClient, nbacomClient, logger)
	standingsSvc := standings.New(nbacomClient, espnClient, espnClient, cfg.Standings.ScanDays, logger)
	statsSvc := playerstats.New(espnClient, nbacomClient, cfg.Leaders.BatchSize, cfg.Leaders.BatchDelay, logger)
	leadersSvc := leaders.New(espnClient, statsSvc, cfg.Leaders, logger, recorder)
	searchSvc := search.New(espnClient, cfg.Search, logger)

	srv := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		cache:         responseCache,
		scores:        scoresSvc,
		standings:     standingsSvc,
		stats:         statsSvc,
		leaders:       leadersSvc,
		search:        searchSvc,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	srv.httpServer = buildHTTPServer(cfg, srv, logger, recorder)
	return srv
}

func buildHTTPServer(cfg config.Config, s *Server, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := httpapi.NewHandler(s.scores, s.standings, s.stats, s.leaders, s.search, logger)
	router := httpapi.NewRouter(handler, logger, recorder)

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	s.cache.Stop()

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
