// Package app composes the client: config, logging, the session store, the
// two engines, and the TUI, wired through fx lifecycle hooks.
package app

import (
	"context"

	"github.com/matheus3301/whatschat/internal/ai"
	"github.com/matheus3301/whatschat/internal/bus"
	"github.com/matheus3301/whatschat/internal/call"
	"github.com/matheus3301/whatschat/internal/chat"
	"github.com/matheus3301/whatschat/internal/config"
	"github.com/matheus3301/whatschat/internal/lock"
	"github.com/matheus3301/whatschat/internal/logging"
	"github.com/matheus3301/whatschat/internal/media"
	"github.com/matheus3301/whatschat/internal/profile"
	"github.com/matheus3301/whatschat/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module returns the fx module for the client, composing all providers and
// lifecycle hooks.
func Module() fx.Option {
	return fx.Module("whatschat",
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			provideResponder,
			provideChatEngine,
			provideDevice,
			provideCallEngine,
			provideApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() (*config.Config, error) {
	return config.Load(profile.ConfigPath())
}

func provideLogger() (*zap.Logger, error) {
	if err := profile.EnsureDirs(); err != nil {
		return nil, err
	}
	return logging.New(profile.LogPath())
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(logger *zap.Logger) (*lock.Lock, error) {
	logger.Info("acquiring profile lock")
	l, err := lock.Acquire(profile.BaseDir())
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

func provideStore() *chat.Store {
	return chat.NewSeededStore()
}

func provideResponder(cfg *config.Config, logger *zap.Logger) *ai.Responder {
	if cfg.APIKey == "" {
		logger.Info("no API key configured, assistant runs offline")
		return ai.New(nil, logger)
	}
	gen, err := ai.NewGeminiGenerator(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		// Degrade rather than fail: the assistant chat still works, it
		// just answers with the offline notice.
		logger.Warn("gemini client init failed, assistant runs offline", zap.Error(err))
		return ai.New(nil, logger)
	}
	logger.Info("assistant online", zap.String("model", cfg.Model))
	return ai.New(gen, logger)
}

func provideChatEngine(store *chat.Store, responder *ai.Responder, b *bus.Bus, logger *zap.Logger) *chat.Engine {
	return chat.NewEngine(store, responder, b, logger)
}

func provideDevice() media.Device {
	return &media.SimDevice{Label: "sim-cam0"}
}

func provideCallEngine(device media.Device, b *bus.Bus, logger *zap.Logger) *call.Engine {
	return call.NewEngine(device, b, logger)
}

func provideApp(engine *chat.Engine, calls *call.Engine, b *bus.Bus, logger *zap.Logger) *tui.App {
	return tui.NewApp(engine, calls, b, logger)
}

func registerLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *tui.App, calls *call.Engine, lk *lock.Lock, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := app.Run(); err != nil {
					logger.Error("tui exited", zap.Error(err))
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			app.Stop()
			// Any live call must release its capture on the way out.
			calls.End()
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("client stopped")
			return nil
		},
	})
}
