package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/webb-inc/webb/internal/config"
	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/logger"
	"github.com/webb-inc/webb/internal/telemetry"
)

// AppContext bundles the long-lived services a command needs.
type AppContext struct {
	Env      config.Env
	Settings *config.Settings
	Logger   *logger.Logger
	Provider *content.Provider

	closers []func(context.Context) error
}

// newAppContext loads configuration and wires logging, tracing, the snapshot
// cache and the content provider.
func newAppContext(ctx context.Context, flags *rootFlags) (*AppContext, error) {
	app := &AppContext{}

	log, closeLog, err := openLogger(flags)
	if err != nil {
		return nil, err
	}
	app.Logger = log.WithFields(map[string]any{"version": version})
	app.closers = append(app.closers, func(context.Context) error { return closeLog() })

	env, err := config.LoadEnv()
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("load environment: %w", err)
	}
	app.Env = env

	path := flags.configPath
	if path == "" {
		path = env.ConfigPath
	}
	settings, err := config.Load(path)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("load settings: %w", err)
	}
	app.Settings = settings

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    env.OTLPEndpoint,
		ServiceName: env.ServiceName,
		Version:     version,
	})
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("set up tracing: %w", err)
	}
	app.closers = append(app.closers, shutdown)

	app.Provider = app.newProvider(flags.offline)
	return app, nil
}

func (a *AppContext) newProvider(offline bool) *content.Provider {
	log := a.Logger.Component("startup")

	var cache *content.SnapshotCache
	if !a.Settings.Cache.Disabled || offline {
		c, err := content.NewSnapshotCache(a.Settings.Cache.Path)
		if err != nil {
			log.Error(err, "snapshot cache unavailable")
		} else {
			cache = c
		}
	}

	opts := content.ProviderOptions{
		Fallback: a.Settings.FallbackProjects,
		Logger:   a.Logger,
	}

	var source content.Source
	switch {
	case offline:
		if cache != nil {
			source = content.NewSnapshotSource(cache)
		}
		log.WithFields(map[string]any{"cache": a.Settings.Cache.Path}).Info("browsing offline snapshot")
	case a.Env.Configured():
		source = content.NewClient(a.Env.ServiceDomain, a.Env.APIKey)
		if !a.Settings.Cache.Disabled {
			opts.Cache = cache
		}
		log.WithFields(map[string]any{
			"domain": a.Env.ServiceDomain,
			"key":    a.Env.MaskedKey(),
		}).Info("content service configured")
	default:
		log.Info("content service not configured, serving fallback projects")
	}

	return content.NewProvider(source, opts)
}

// Close flushes and releases everything opened by newAppContext.
func (a *AppContext) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.Logger.Error(err, "shutdown failed")
		}
	}
	a.closers = nil
}

// openLogger writes logs to a file because the terminal UI owns the screen.
// A log file of "-" discards them.
func openLogger(flags *rootFlags) (*logger.Logger, func() error, error) {
	noop := func() error { return nil }

	path := strings.TrimSpace(flags.logFile)
	if path == "-" {
		log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: io.Discard})
		return log, noop, err
	}
	if path == "" {
		path = config.DefaultLogPath()
	}

	f, err := logger.OpenFile(path)
	if err != nil {
		return nil, noop, err
	}
	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, noop, fmt.Errorf("create logger: %w", err)
	}
	return log, f.Close, nil
}
