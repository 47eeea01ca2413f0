// Package app wires the client subsystems into the diagnostics command.
package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Tim020/botocore/config"
	"github.com/Tim020/botocore/credentials"
	"github.com/Tim020/botocore/endpoints"
	"github.com/Tim020/botocore/loader"
	"github.com/Tim020/botocore/logging"
)

// App wires application components.
type App struct {
	cfg config.Config
	log *slog.Logger
}

// New creates a new App instance and loads configuration.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(logging.Options{
		Env:          cfg.Env,
		ConsoleLevel: cfg.Log.ConsoleLevel,
		FileLevel:    cfg.Log.FileLevel,
		File:         cfg.Log.File,
		App:          "botodiag",
	})
	return &App{cfg: cfg, log: log}, nil
}

// Run checks each configuration source in turn and reports what a client
// session would resolve: region, credentials, and endpoint data.
func (a *App) Run() error {
	defer func() { _ = logging.Close(a.log) }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	region, err := a.cfg.ResolveRegion("")
	if err != nil {
		a.log.Error("region", slog.Any("err", err))
		return err
	}
	a.log.Info("region resolved", slog.String("region", region))

	chain := credentials.NewChain(nil, credentials.WithLogger(a.log))
	a.log.Info("credential chain", slog.Any("providers", chain.Providers()))
	if _, err := chain.Resolve(ctx); err != nil {
		a.log.Error("credentials", slog.Any("err", err))
		return err
	}
	a.log.Info("credentials resolved")

	ld := loader.New(dataSearchPaths(a.cfg), loader.WithLogger(a.log))
	var table map[string]map[string]string
	if err := ld.Load("endpoints", &table); err != nil {
		a.log.Error("endpoint data", slog.Any("err", err))
		return err
	}

	resolver := endpoints.NewResolver(table)
	for service := range table {
		ep, err := resolver.Resolve(service, region)
		if err != nil {
			a.log.Warn("service unavailable",
				slog.String("service", service),
				slog.Any("regions", resolver.Regions(service)),
				slog.Any("err", err))
			continue
		}
		a.log.Info("endpoint", slog.String("service", service), slog.String("host", ep.Host))
	}

	return nil
}

func dataSearchPaths(cfg config.Config) []string {
	paths := []string{filepath.Dir(cfg.ConfigFile)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".botocore", "data"))
	}
	return paths
}
