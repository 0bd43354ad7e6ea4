// Package watch reloads the animal dataset when its file changes on disk.
package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce absorbs the burst of events a single save produces.
const DefaultDebounce = 500 * time.Millisecond

// Stats counts what the watcher has seen.
type Stats struct {
	Events        int
	Reloads       int
	Errors        int
	LastEventTime time.Time
	LastEventOp   string
}

// Watcher calls onChange once per settled burst of writes to a single
// file. The parent directory is watched rather than the file itself so
// editors that save by rename, and a file created after start, are both
// seen.
type Watcher struct {
	path     string
	onChange func(ctx context.Context)
	logger   *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	pending time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	stats   Stats
}

// New creates a Watcher for path. A zero debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange func(ctx context.Context), logger *zap.Logger) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch: empty path")
	}
	if onChange == nil {
		return nil, errors.New("watch: nil onChange")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		onChange: onChange,
		logger:   logger.With(zap.String("path", abs)),
		debounce: debounce,
	}, nil
}

// Start begins watching. It returns once the watch is registered; events
// are handled on one background goroutine until Stop or ctx is done.
// Starting a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	go w.run(ctx, fw, w.stopCh, w.doneCh)

	w.logger.Info("watching dataset")
	return nil
}

// Stop ends the watch and waits for the goroutine to exit. Stopping a
// stopped watcher is a no-op.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh, doneCh, fw := w.stopCh, w.doneCh, w.watcher
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
	if err := fw.Close(); err != nil {
		w.logger.Warn("closing watcher", zap.Error(err))
	}
	w.logger.Info("stopped watching dataset")
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// minTick bounds how often pending events are checked, whatever the debounce.
const minTick = time.Millisecond

func tickInterval(debounce time.Duration) time.Duration {
	return max(debounce/5, minTick)
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	tick := time.NewTicker(tickInterval(w.debounce))
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case now := <-tick.C:
			w.flush(ctx, now)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("dataset event", zap.String("op", ev.Op.String()))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventOp = ev.Op.String()
	w.pending = w.stats.LastEventTime
}

func (w *Watcher) flush(ctx context.Context, now time.Time) {
	w.mu.Lock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.stats.Reloads++
	w.mu.Unlock()

	w.logger.Info("dataset changed, reloading")
	w.onChange(ctx)
}
