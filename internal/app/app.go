// Package app wires the store-backed collaborators into the sequencing
// engine and owns startup and shutdown for the CLI.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dparikh/prepdrill/internal/config"
	"github.com/dparikh/prepdrill/internal/engine"
	"github.com/dparikh/prepdrill/internal/store"
	"github.com/dparikh/prepdrill/internal/topic"
)

// App bundles the open store and the constructed engine service.
type App struct {
	Store   *store.Store
	Engine  *engine.Service
	Catalog *topic.Catalog
	Logger  *zap.Logger
}

// Options configures New beyond what config carries.
type Options struct {
	DBPath string // overrides config and the XDG default when set
	Seed   int64  // pins the pacing RNG when non-zero
}

// New opens the store and constructs the engine with store-backed
// collaborators. Callers must Close the returned App.
func New(cfg *config.Config, logger *zap.Logger, opts Options) (*App, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("ensure DB dir: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog := topic.DefaultCatalog()
	events := st.EventRepo()

	svc := engine.NewService(engine.Options{
		Catalog:         catalog,
		History:         &attemptHistory{events: events},
		Pool:            &candidatePool{items: st.ItemRepo()},
		Recorder:        &sequenceRecorder{events: events},
		Logger:          logger,
		HistoryWindow:   cfg.Engine.HistoryWindow,
		PoolMultiplier:  cfg.Engine.PoolMultiplier,
		RecentSeenLimit: cfg.Engine.RecentSeenLimit,
		Seed:            opts.Seed,
	})

	return &App{Store: st, Engine: svc, Catalog: catalog, Logger: logger}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
