package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/KirkDiggler/chainbot/internal/common/clock"
	"github.com/KirkDiggler/chainbot/internal/common/uuid"
	"github.com/KirkDiggler/chainbot/internal/config"
	"github.com/KirkDiggler/chainbot/internal/handlers/api"
	"github.com/KirkDiggler/chainbot/internal/handlers/discord"
	"github.com/KirkDiggler/chainbot/internal/repositories/announcement"
	chainRepo "github.com/KirkDiggler/chainbot/internal/repositories/chain"
	"github.com/KirkDiggler/chainbot/internal/repositories/notify"
	"github.com/KirkDiggler/chainbot/internal/services/chain"
	"github.com/KirkDiggler/chainbot/internal/services/messaging"
	"github.com/KirkDiggler/chainbot/internal/services/watch"
	"github.com/KirkDiggler/chainbot/internal/torn"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Bot failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Bot has been shut down")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	chains, closeChains, err := newChainRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer closeChains()

	notifications, err := notify.New(&notify.Config{
		Path:   cfg.NotifyConfigPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification repository: %w", err)
	}

	var memory announcement.Memory = announcement.NewInMemory()
	if cfg.AnnouncementsDBPath != "" {
		db, err := announcement.OpenSQLite(&announcement.SQLiteConfig{Path: cfg.AnnouncementsDBPath})
		if err != nil {
			return fmt.Errorf("failed to open announcement database: %w", err)
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("Failed to close announcement database", "error", closeErr)
			}
		}()
		memory = db
	}

	msgs, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	renderer, err := discord.NewRenderer(&discord.RendererConfig{
		Session:   session,
		Messaging: msgs,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	var tornClient *torn.Client
	if cfg.TornEnabled() {
		tornClient, err = torn.New(&torn.Config{
			APIKey:    cfg.TornAPIKey,
			FactionID: cfg.TornFactionID,
			BaseURL:   cfg.TornBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to create torn client: %w", err)
		}
	} else {
		logger.Warn("TORN_API_KEY not set, chain tracking and announcements are disabled")
	}

	var source chain.ActivitySource
	if tornClient != nil {
		source = tornClient
	}

	systemClock := &clock.DefaultClock{}

	// Initialize chain service
	chainSvc, err := chain.New(&chain.Config{
		CountdownInterval:    cfg.CountdownInterval,
		WarCountdownInterval: cfg.WarCountdownInterval,
		TrackInterval:        cfg.TrackInterval,
		InactivityCeiling:    cfg.InactivityCeiling,
		MaxPollFailures:      cfg.MaxPollFailures,
		SuperviseInterval:    cfg.SuperviseInterval,
		LeaderboardSize:      cfg.LeaderboardSize,
		Repository:           chains,
		Renderer:             renderer,
		ActivitySource:       source,
		Clock:                systemClock,
		UUIDGenerator:        uuid.New(),
		Logger:               logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create chain service: %w", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		AdminRoleID:   cfg.AdminRoleID,
		ChainService:  chainSvc,
		Notifications: notifications,
		Messaging:     msgs,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			logger.Error("Error stopping bot", "error", err)
		}
	}()

	if _, err := chainSvc.Restore(ctx); err != nil {
		logger.Error("Failed to restore chains", "error", err)
	}

	var wg sync.WaitGroup
	goRun := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				logger.Error("Background loop failed", "loop", name, "error", err)
			}
		}()
	}

	goRun("supervisor", chainSvc.Supervise)

	if tornClient != nil {
		warWatcher, err := watch.NewWarWatcher(&watch.WarConfig{
			Source:        tornClient,
			Announcer:     renderer,
			Notifications: notifications,
			Memory:        memory,
			Clock:         systemClock,
			Interval:      cfg.WarPollInterval,
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create war watcher: %w", err)
		}

		chainWatcher, err := watch.NewChainWatcher(&watch.ChainConfig{
			Source:        tornClient,
			Announcer:     renderer,
			Notifications: notifications,
			Memory:        memory,
			Clock:         systemClock,
			Interval:      cfg.ChainPollInterval,
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create chain watcher: %w", err)
		}

		goRun("war_watcher", warWatcher.Run)
		goRun("chain_watcher", chainWatcher.Run)
	}

	var srv *http.Server
	if cfg.HTTPAddr != "" {
		handler, err := api.New(&api.Config{
			ChainService: chainSvc,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create HTTP handler: %w", err)
		}

		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		go func() {
			logger.Info("HTTP server listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed", "error", err)
				stop()
			}
		}()
	}

	logger.Info("Bot is now running. Press CTRL-C to exit.")

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server forced to shutdown", "error", err)
		}
	}

	// chains keep their persisted state and resume on the next start
	if err := chainSvc.Shutdown(shutdownCtx); err != nil {
		logger.Error("Chain tasks did not stop in time", "error", err)
	}

	wg.Wait()
	return nil
}

// newChainRepository opens the configured chain store
func newChainRepository(cfg *config.Config, logger *slog.Logger) (chainRepo.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		repo, err := chainRepo.NewRedis(&chainRepo.RedisConfig{
			RedisClient: redisClient,
			Logger:      logger,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create chain repository: %w", err)
		}

		return repo, func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close Redis client", "error", err)
			}
		}, nil
	default:
		repo, err := chainRepo.NewFile(&chainRepo.FileConfig{
			Path:   cfg.ChainsPath,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create chain repository: %w", err)
		}
		return repo, func() {}, nil
	}
}
