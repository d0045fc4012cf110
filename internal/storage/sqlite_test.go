package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, r Run) string {
	t.Helper()
	id, err := store.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id := mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 80, Ticks: 900})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("Expected run to survive reopen")
	}
	if r.Moves != 80 {
		t.Errorf("Moves = %d, expected 80", r.Moves)
	}
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 42, Ticks: 600})
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q: %v", id, err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if r.Player != "local" {
		t.Errorf("Player = %q, expected %q", r.Player, "local")
	}
	if r.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", r.TickRate)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunKeepsID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	got := mustSave(t, store, Run{ID: want, Player: "alice", Rows: 5, Cols: 5, Moves: 8, Ticks: 40})
	if got != want {
		t.Errorf("SaveRun() id = %q, expected %q", got, want)
	}

	if _, err := store.SaveRun(Run{ID: want, Rows: 5, Cols: 5}); err == nil {
		t.Error("Expected duplicate id to fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r != nil {
		t.Errorf("Expected nil for unknown id, got %+v", r)
	}
}

func TestStoreTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 120, Ticks: 100})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 90, Ticks: 700})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 90, Ticks: 500})
	// Different size
	mustSave(t, store, Run{Rows: 10, Cols: 10, Moves: 10, Ticks: 50})

	runs, err := store.TopRuns(20, 30, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	tests := []struct {
		moves int
		ticks int64
	}{
		{90, 500},
		{90, 700},
		{120, 100},
	}
	for i, tt := range tests {
		if runs[i].Moves != tt.moves || runs[i].Ticks != tt.ticks {
			t.Errorf("runs[%d] = (%d, %d), expected (%d, %d)",
				i, runs[i].Moves, runs[i].Ticks, tt.moves, tt.ticks)
		}
	}

	small, err := store.TopRuns(10, 10, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 run for 10x10, got %d", len(small))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		mustSave(t, store, Run{Rows: 8, Cols: 8, Moves: 20 + i, Ticks: 100})
	}

	runs, err := store.TopRuns(8, 8, 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(runs))
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns(8, 8, 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 runs with default limit, got %d", len(runs))
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun(20, 30)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on empty store, got %+v", best)
	}

	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 75, Ticks: 900})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 60, Ticks: 1200})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 99, Ticks: 300})

	best, err = store.BestRun(20, 30)
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best run")
	}
	if best.Moves != 60 {
		t.Errorf("BestRun().Moves = %d, expected 60", best.Moves)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	first := mustSave(t, store, Run{Rows: 5, Cols: 5, Moves: 8, Ticks: 40})
	mustSave(t, store, Run{Rows: 6, Cols: 6, Moves: 10, Ticks: 50})
	last := mustSave(t, store, Run{Rows: 7, Cols: 7, Moves: 12, Ticks: 60})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != last {
		t.Errorf("Expected newest run first, got %s", runs[0].ID)
	}
	if runs[2].ID != first {
		t.Errorf("Expected oldest run last, got %s", runs[2].ID)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 80, Ticks: 900})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 85, Ticks: 950})
	mustSave(t, store, Run{Rows: 10, Cols: 10, Moves: 20, Ticks: 200})

	if err := store.ClearRuns(20, 30); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(20, 30, 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// Other sizes are untouched
	runs, _ = store.TopRuns(10, 10, 10)
	if len(runs) != 1 {
		t.Errorf("Expected 1 run for 10x10, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats on empty store, got %d", len(stats))
	}

	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 80, Ticks: 900})
	mustSave(t, store, Run{Rows: 20, Cols: 30, Moves: 100, Ticks: 600})
	mustSave(t, store, Run{Rows: 5, Cols: 5, Moves: 8, Ticks: 40})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 sizes, got %d", len(stats))
	}

	// Ordered by rows, cols
	if stats[0].Rows != 5 || stats[0].Cols != 5 {
		t.Errorf("stats[0] size = %dx%d, expected 5x5", stats[0].Rows, stats[0].Cols)
	}

	big := stats[1]
	if big.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", big.Runs)
	}
	if big.BestMoves != 80 {
		t.Errorf("BestMoves = %d, expected 80", big.BestMoves)
	}
	if big.AvgMoves != 90 {
		t.Errorf("AvgMoves = %v, expected 90", big.AvgMoves)
	}
	if big.BestTicks != 600 {
		t.Errorf("BestTicks = %d, expected 600", big.BestTicks)
	}
}

func TestRunDuration(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want time.Duration
	}{
		{"60 fps", Run{Ticks: 90, TickRate: 60}, 1500 * time.Millisecond},
		{"30 fps", Run{Ticks: 30, TickRate: 30}, time.Second},
		{"zero rate", Run{Ticks: 30}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	if got := parseTime(now); !got.Equal(now) {
		t.Errorf("parseTime(time.Time) = %v, expected %v", got, now)
	}
	if got := parseTime("2024-03-01 12:30:00"); !got.Equal(now) {
		t.Errorf("parseTime(string) = %v, expected %v", got, now)
	}
	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v, expected zero", got)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.maze/data/runs.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".maze", "data", "runs.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home directory")
	}
}
