package server

import (
	"context"
	"fmt"
	"os"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/config"
	"github.com/HendryAvila/uranai/internal/dataset"
	"github.com/HendryAvila/uranai/internal/fortune"
	"github.com/HendryAvila/uranai/internal/star"
	"github.com/HendryAvila/uranai/internal/watch"
	"go.uber.org/zap"
)

// Runtime holds the resolved dependencies shared by the MCP server and the
// CLI commands.
type Runtime struct {
	Config *config.Config
	Logger *zap.Logger

	// Source is what resolvers read: the backend itself, or Cache when
	// caching is enabled.
	Source animal.DataSource
	Cache  *animal.Cached
	// Store is nil for the csv backend.
	Store *dataset.Store

	Animals *animal.Resolver
	Fortune *fortune.Aggregator

	watcher *watch.Watcher
}

// NewRuntime builds the dataset source selected by cfg and the resolvers
// on top of it. A missing or broken dataset is not an error: lookups fall
// back and the problem is logged.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rt := &Runtime{Config: cfg, Logger: logger}

	var backend animal.DataSource
	switch cfg.Dataset.Backend {
	case config.BackendSQLite:
		store, err := dataset.Open(dataset.Config{Path: cfg.Dataset.DBPath})
		if err != nil {
			return nil, fmt.Errorf("opening dataset store: %w", err)
		}
		rt.Store = store
		backend = store
	default:
		backend = animal.CSVFile{Path: cfg.Dataset.CSVPath}
	}

	rt.Source = backend
	if cfg.Dataset.Cache {
		rt.Cache = animal.NewCached(backend)
		rt.Source = rt.Cache
		if err := rt.Cache.Load(ctx); err != nil {
			logger.Warn("animal dataset unavailable, using fallback table", zap.Error(err))
		}
	}

	rt.Animals = animal.NewResolver(rt.Source, logger.Named("animal"))
	rt.Fortune = fortune.New(rt.Animals, star.PendingResolver{})
	return rt, nil
}

// StartWatcher reloads the dataset whenever the CSV file changes. With the
// sqlite backend the file is re-imported first. It is a no-op unless both
// caching and watching are enabled.
func (rt *Runtime) StartWatcher(ctx context.Context) error {
	if rt.Cache == nil || !rt.Config.Dataset.Watch || rt.Config.Dataset.CSVPath == "" {
		return nil
	}

	w, err := watch.New(rt.Config.Dataset.CSVPath, rt.Config.Dataset.Debounce, rt.reload, rt.Logger.Named("watch"))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("watching %s: %w", rt.Config.Dataset.CSVPath, err)
	}
	rt.watcher = w
	return nil
}

func (rt *Runtime) reload(ctx context.Context) {
	if rt.Store != nil {
		if _, err := ImportCSV(ctx, rt.Store, rt.Config.Dataset.CSVPath); err != nil {
			rt.Logger.Warn("re-import failed, keeping previous rows", zap.Error(err))
			return
		}
	}
	rt.Cache.Invalidate()
	if err := rt.Cache.Load(ctx); err != nil {
		rt.Logger.Warn("animal dataset unavailable after reload", zap.Error(err))
		return
	}
	rt.Logger.Info("animal dataset reloaded")
}

// ImportCSV parses the CSV at path and replaces the rows of store with it.
func ImportCSV(ctx context.Context, store *dataset.Store, path string) (dataset.ImportInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset.ImportInfo{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := animal.ParseCSV(f)
	if err != nil {
		return dataset.ImportInfo{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return store.Import(ctx, path, table)
}

// Close stops the watcher and closes the store. It is safe to call more
// than once.
func (rt *Runtime) Close() {
	if rt.watcher != nil {
		rt.watcher.Stop()
		rt.watcher = nil
	}
	if rt.Store != nil {
		if err := rt.Store.Close(); err != nil {
			rt.Logger.Warn("closing dataset store", zap.Error(err))
		}
		rt.Store = nil
	}
}
