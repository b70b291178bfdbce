// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	_ "github.com/tomtom215/marquee/docs" // Swagger documentation

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/oracle"
	"github.com/tomtom215/marquee/internal/retrieval"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Marquee stopped with an error")
	}
}

//nolint:gocyclo // sequential setup steps
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("oracle_mode", cfg.Oracle.Mode).
		Bool("lsa_enabled", cfg.LSA.Enabled).
		Msg("Starting Marquee with supervisor tree")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedDemoData {
		if err := db.SeedDemoData(context.Background()); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	var opts []retrieval.Option

	if cfg.Cache.ProfilePath != "" {
		store, err := cache.OpenProfileStore(cfg.Cache.ProfilePath)
		if err != nil {
			return fmt.Errorf("open profile cache: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing profile cache")
			}
		}()
		opts = append(opts, retrieval.WithProfileCache(store))
		logging.Info().Str("path", cfg.Cache.ProfilePath).Msg("Profile cache enabled")
	}

	if cfg.Cache.QueryCacheSize > 0 {
		vectors := cache.NewLRU[models.EmotionVector](cfg.Cache.QueryCacheSize, cfg.Cache.QueryCacheTTL)
		opts = append(opts, retrieval.WithVectorCache(vectors))
	}

	if cfg.Ranking.ExpansionEnabled {
		th, err := loadThesaurus(cfg)
		if err != nil {
			return fmt.Errorf("load thesaurus: %w", err)
		}
		opts = append(opts, retrieval.WithThesaurus(th))
		logging.Info().Int("terms", th.Len()).Msg("Query expansion enabled")
	}

	eventLogger := events.NewLoggerAdapter(logging.WithComponent("events"))
	bus := events.NewBus(eventLogger)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	opts = append(opts, retrieval.WithNotifier(bus))

	// The classifier is loaded on first use by a build, not here.
	loader := oracle.NewLoader(oracle.NewFactory(oracleConfig(cfg)))

	svc, err := retrieval.New(retrievalConfig(cfg), db, loader, opts...)
	if err != nil {
		return fmt.Errorf("create retrieval service: %w", err)
	}

	var forwarder *events.Forwarder
	if cfg.Events.NATSURL != "" {
		var pub message.Publisher
		pub, err = events.NewNATSPublisher(events.NATSConfig{URL: cfg.Events.NATSURL}, eventLogger)
		if err != nil {
			return fmt.Errorf("create nats publisher: %w", err)
		}
		defer func() {
			if err := pub.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing NATS publisher")
			}
		}()
		forwarder, err = events.NewForwarder(bus, pub, events.TopicIndexRebuilt, cfg.Events.NATSPrefix, eventLogger)
		if err != nil {
			return fmt.Errorf("create event forwarder: %w", err)
		}
		logging.Info().Str("subject", forwarder.Subject()).Msg("Forwarding rebuild events to NATS")
	}

	var jwtManager *auth.JWTManager
	if cfg.Security.JWTSecret != "" {
		jwtManager, err = auth.NewJWTManager(cfg.Security.JWTSecret, 0)
		if err != nil {
			return fmt.Errorf("initialize JWT manager: %w", err)
		}
		logging.Info().Msg("JWT authentication enabled for index rebuilds")
	} else {
		logging.Warn().Msg("JWT_SECRET not set: POST /api/v1/index/rebuild is unauthenticated")
	}

	handler := api.NewHandler(svc, bus)
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)), jwtManager)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig(cfg))
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	serviceLogger := logging.WithComponent("supervisor")
	tree.AddIndexService(services.NewIndexService(svc, indexServiceConfig(cfg), serviceLogger))
	tree.AddMessagingService(services.NewRebuildListener(bus, svc, serviceLogger))
	if forwarder != nil {
		tree.AddMessagingService(services.NewEventForwarderService(forwarder))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	logging.Info().Msg("Application stopped gracefully")
	return nil
}
