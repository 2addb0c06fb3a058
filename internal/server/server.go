package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"objectviewer/internal/auth"
	"objectviewer/internal/authentication"
	"objectviewer/internal/config"
	"objectviewer/internal/distributed"
	"objectviewer/internal/jobs"
	"objectviewer/internal/metrics"
	"objectviewer/internal/middlewares"
	"objectviewer/internal/sessionlog"
	"objectviewer/internal/storage"
	"objectviewer/internal/version"
	"objectviewer/internal/websession"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	appCtx       *middlewares.AppContext
	httpServer   *http.Server
	debugServer  *http.Server
	election     *distributed.Election
	jobManager   *jobs.JobManager
	database     *storage.DatabaseProvider
	redisClients []*redis.Client
	cancel       context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		cfg:    cfg,
		logger: logger,
		cancel: cancel,
	}

	if err := s.setup(ctx); err != nil {
		s.closeResources()
		cancel()
		return nil, err
	}

	return s, nil
}

func (s *Server) setup(ctx context.Context) error {
	cfg := s.cfg
	logger := s.logger

	var sessionClient, registryClient *redis.Client
	if cfg.Sessions.Store == "redis" {
		var err error
		sessionClient, err = s.redisClient(ctx, "sessions", cfg.Redis.SessionIndex)
		if err != nil {
			return err
		}

		registryClient, err = s.redisClient(ctx, "registry", cfg.Redis.RegistryIndex)
		if err != nil {
			return err
		}
	}

	var registry authentication.Registry
	registryType := metrics.RegistryTypeMemory
	if registryClient != nil {
		redisRegistry, err := authentication.NewRedisRegistry(ctx, registryClient, cfg.Sessions.Lifetime, logger)
		if err != nil {
			return fmt.Errorf("failed to create session registry: %w", err)
		}
		registry = redisRegistry
		registryType = metrics.RegistryTypeRedis
	} else {
		registry = authentication.NewMemRegistry()
	}

	authenticators, err := setupAuthenticators(cfg)
	if err != nil {
		return err
	}
	authManager := authentication.NewManager(registry, logger, authenticators...)

	var storageProvider storage.StorageProvider
	if cfg.StorageEnabled() {
		database, err := storage.NewDatabaseProvider(ctx, cfg.Storage)
		if err != nil {
			logger.Error("failed to initialize database provider", "error", err)
			return err
		}
		s.database = database

		logger.Debug("Running database migrations")
		if err := database.RunMigrations(ctx); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			return err
		}
		logger.Debug("Database Migrations Completed")

		storageProvider = database
	}

	sessionLog := setupSessionLog(cfg, logger, storageProvider)

	webSession, err := websession.NewSessionManager(logger, cfg, sessionClient, authManager, sessionLog)
	if err != nil {
		return err
	}

	var oidcProvider middlewares.OIDCProvider
	if cfg.OIDCEnabled() {
		provider, err := auth.NewRealOIDCProvider(ctx, *cfg.Authentication.OIDC)
		if err != nil {
			logger.Error("failed to initialize oidc provider", "error", err)
			return err
		}
		oidcProvider = provider
	}

	s.appCtx = middlewares.NewAppContext(ctx, cfg, logger, webSession, oidcProvider, storageProvider)

	var leadership jobs.Leadership
	if cfg.Distributed != nil && cfg.Distributed.Enabled {
		leaderClient, err := s.redisClient(ctx, "election", cfg.Redis.LeaderIndex)
		if err != nil {
			return err
		}

		hostname := os.Getenv("HOSTNAME")
		if hostname == "" {
			hostname = uuid.New().String()
		}

		s.election = distributed.NewElection(leaderClient, hostname, cfg.Distributed.TTL, logger)
		leadership = s.election
	}

	checkEvery := time.Duration(0)
	if s.election != nil {
		checkEvery = s.election.TTL / 3
	}
	s.jobManager = jobs.NewJobManager(leadership, checkEvery, logger)

	expiryJob := jobs.NewSessionExpiryJob(authManager, webSession, cfg.Sessions.IdleTimeout, cfg.Sessions.ExpirySweep, registryType, logger)
	if err := s.jobManager.Register(expiryJob); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: setupRouter(s.appCtx),
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		s.debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return nil
}

// redisClient connects to one logical database and, with the debug server
// enabled, exports its pool statistics under the given subsystem.
func (s *Server) redisClient(ctx context.Context, subsystem string, db int) (*redis.Client, error) {
	client, err := distributed.NewRedisClient(ctx, s.logger, s.cfg.Redis, db)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis for %s: %w", subsystem, err)
	}
	s.redisClients = append(s.redisClients, client)

	if s.cfg.Server.Debug != nil && s.cfg.Server.Debug.Enabled {
		collector := redisprometheus.NewCollector(metrics.Namespace, subsystem, client)
		if err := prometheus.Register(collector); err != nil {
			s.logger.Debug("failed to register redis collector: already registered", "subsystem", subsystem, "error", err)
		}
	}

	return client, nil
}

func setupAuthenticators(cfg *config.Config) ([]authentication.Authenticator, error) {
	var authenticators []authentication.Authenticator

	if len(cfg.Authentication.Users) > 0 {
		password, err := authentication.NewPasswordAuthenticator(cfg.Authentication.Users)
		if err != nil {
			return nil, fmt.Errorf("failed to create password authenticator: %w", err)
		}
		authenticators = append(authenticators, password)
	}

	if cfg.OIDCEnabled() {
		authenticators = append(authenticators, authentication.NewExternalAuthenticator(cfg.Authentication.OIDC.GroupRoles))
	}

	return authenticators, nil
}

// setupSessionLog builds the configured sinks. It returns nil for "none".
func setupSessionLog(cfg *config.Config, logger *slog.Logger, store sessionlog.EventStore) sessionlog.Service {
	var services sessionlog.Multi

	for _, sink := range cfg.SessionLog.Sinks {
		switch sink {
		case "log":
			services = append(services, sessionlog.NewSlogService(logger))
		case "metrics":
			services = append(services, sessionlog.MetricsService{})
		case "storage":
			if store != nil {
				services = append(services, sessionlog.NewStorageService(store))
			}
		}
	}

	if len(services) == 0 {
		return nil
	}
	return services
}

func (s *Server) Start() error {
	if s.election != nil {
		go s.election.Start(s.appCtx)
	}

	s.jobManager.Start(s.appCtx)

	go func() {
		if s.election != nil {
			s.logger.Info("Server Started", "port", s.cfg.Server.Port, "version", version.Get().String(), "instance", s.election.InstanceID)
		} else {
			s.logger.Info("Server Started", "port", s.cfg.Server.Port, "version", version.Get().String())
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	// stops the election and the jobs
	s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.closeResources()

	s.logger.Info("Server Exited")
	return nil
}

func (s *Server) closeResources() {
	if s.database != nil {
		s.database.Close()
	}

	for _, client := range s.redisClients {
		if err := client.Close(); err != nil {
			s.logger.Warn("Failed to close redis client", "error", err)
		}
	}
}
