package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HendryAvila/uranai/internal/animal"
	"github.com/HendryAvila/uranai/internal/config"
)

const datasetCSV = "date,year,month,day,index,animal,label,color\n" +
	"39452,2008,1,5,41,大器晩成のたぬき,大器晩成のたぬき,ブラウン\n"

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dataset.Backend = backend
	cfg.Dataset.CSVPath = filepath.Join(dir, "animals.csv")
	cfg.Dataset.DBPath = filepath.Join(dir, "animals.db")
	cfg.Dataset.Debounce = 20 * time.Millisecond
	return cfg
}

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewRuntime_CSVBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)
	writeCSV(t, cfg.Dataset.CSVPath, datasetCSV)

	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	if rt.Cache == nil || !rt.Cache.Loaded() {
		t.Fatal("cache not loaded at startup")
	}
	res := rt.Animals.Resolve(context.Background(), 2008, 1, 5)
	if res.Source != animal.SourceDataset {
		t.Errorf("source = %q, want dataset", res.Source)
	}
}

func TestNewRuntime_MissingCSVFallsBack(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)

	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	if res := rt.Animals.Resolve(context.Background(), 2008, 1, 5); res.Source != animal.SourceFallback {
		t.Errorf("source = %q, want fallback", res.Source)
	}
}

func TestNewRuntime_NoCache(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)
	cfg.Dataset.Cache = false

	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	if rt.Cache != nil {
		t.Error("cache created although disabled")
	}
	// Without a cache every lookup reads the file, so a file written later
	// is picked up immediately.
	writeCSV(t, cfg.Dataset.CSVPath, datasetCSV)
	if res := rt.Animals.Resolve(context.Background(), 2008, 1, 5); res.Source != animal.SourceDataset {
		t.Errorf("source = %q, want dataset", res.Source)
	}
	if err := rt.StartWatcher(context.Background()); err != nil {
		t.Errorf("StartWatcher without cache: %v", err)
	}
}

func TestNewRuntime_SQLiteBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	writeCSV(t, cfg.Dataset.CSVPath, datasetCSV)

	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	// Empty store: fallback until imported.
	if res := rt.Animals.Resolve(context.Background(), 2008, 1, 5); res.Source != animal.SourceFallback {
		t.Fatalf("source before import = %q, want fallback", res.Source)
	}

	info, err := ImportCSV(context.Background(), rt.Store, cfg.Dataset.CSVPath)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if info.Rows != 1 {
		t.Errorf("imported %d rows, want 1", info.Rows)
	}

	rt.reload(context.Background())
	if res := rt.Animals.Resolve(context.Background(), 2008, 1, 5); res.Source != animal.SourceDataset {
		t.Errorf("source after import = %q, want dataset", res.Source)
	}
}

func TestRuntime_WatcherReloadsCSV(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)

	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()
	if err := rt.StartWatcher(context.Background()); err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	writeCSV(t, cfg.Dataset.CSVPath, datasetCSV)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if rt.Animals.Resolve(context.Background(), 2008, 1, 5).Source == animal.SourceDataset {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("dataset was not reloaded after the CSV appeared")
}

func TestImportCSV_Errors(t *testing.T) {
	cfg := testConfig(t, config.BackendSQLite)
	rt, err := NewRuntime(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	if _, err := ImportCSV(context.Background(), rt.Store, cfg.Dataset.CSVPath); err == nil {
		t.Error("expected error for missing CSV")
	}
	writeCSV(t, cfg.Dataset.CSVPath, "header only\n")
	if _, err := ImportCSV(context.Background(), rt.Store, cfg.Dataset.CSVPath); err == nil {
		t.Error("expected error for CSV without rows")
	}
}

func TestRuntime_CloseTwice(t *testing.T) {
	rt, err := NewRuntime(context.Background(), testConfig(t, config.BackendSQLite), nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	rt.Close()
	rt.Close()
}

func TestNew_RegistersEverything(t *testing.T) {
	rt, err := NewRuntime(context.Background(), testConfig(t, config.BackendCSV), nil)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	defer rt.Close()

	s := New(rt)
	if s == nil {
		t.Fatal("New returned nil")
	}

	names := make(map[string]bool)
	for name := range s.ListTools() {
		names[name] = true
	}
	for _, want := range []string{"fortune_resolve", "fortune_zodiac", "fortune_animal", "fortune_calibrate", "fortune_dataset_status"} {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}
}
