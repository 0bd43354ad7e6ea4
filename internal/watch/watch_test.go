package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestNew_Validation(t *testing.T) {
	noop := func(context.Context) {}
	if _, err := New("", 0, noop, nil); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := New("animals.csv", 0, nil, nil); err == nil {
		t.Error("expected error for nil onChange")
	}

	w, err := New("animals.csv", 0, noop, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}
	if !filepath.IsAbs(w.path) {
		t.Errorf("path = %q, want absolute", w.path)
	}
}

func TestWatcher_ReloadsOnceForABurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animals.csv")
	if err := os.WriteFile(path, []byte("header\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w, err := New(path, 50*time.Millisecond, func(context.Context) { calls.Add(1) }, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("header\nrow\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Fatal("onChange was not called")
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("onChange calls = %d, want 1", got)
	}
	if s := w.Stats(); s.Events == 0 || s.Reloads != 1 {
		t.Errorf("stats = %+v, want events and one reload", s)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animals.csv")

	var calls atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(context.Context) { calls.Add(1) }, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("onChange calls = %d, want 0", got)
	}
}

func TestWatcher_SeesFileCreatedAfterStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animals.csv")

	var calls atomic.Int32
	w, err := New(path, 20*time.Millisecond, func(context.Context) { calls.Add(1) }, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("header\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Error("onChange was not called for a created file")
	}
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "animals.csv"), 0, func(context.Context) {}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w.Stop()
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	w.Stop()
	w.Stop()
}

func TestWatcher_ContextCancelEndsGoroutine(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "animals.csv"), 0, func(context.Context) {}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()
	// Stop still releases the fsnotify handle after the loop has exited.
	w.Stop()
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "nope", "animals.csv"), 0, func(context.Context) {}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err == nil {
		w.Stop()
		t.Error("expected error watching a missing directory")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		debounce time.Duration
		want     time.Duration
	}{
		{3, minTick},
		{4 * time.Millisecond, minTick},
		{DefaultDebounce, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.debounce); got != tt.want {
			t.Errorf("tickInterval(%v) = %v, want %v", tt.debounce, got, tt.want)
		}
	}
}

func TestWatcher_TinyDebounceStillReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "animals.csv")

	var calls atomic.Int32
	w, err := New(path, 3, func(context.Context) { calls.Add(1) }, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("header\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 2*time.Second, func() bool { return calls.Load() >= 1 }) {
		t.Fatal("onChange was not called")
	}
}
