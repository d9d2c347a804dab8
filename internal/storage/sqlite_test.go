package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "flappy", Score: 3, Pairs: 3, Ticks: 400, Seed: 1},
		{GameID: "flappy", Score: 7, Pairs: 7, Ticks: 900, Seed: 2, Player: "alice"},
		{GameID: "flappy", Score: 5, Pairs: 5, Ticks: 700, Seed: 3},
		{GameID: "flappy_stream", Score: 12, Pairs: 12, Ticks: 800, Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 flappy runs, got %d", len(top))
	}
	for i, want := range []int{7, 5, 3} {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if top[0].Player != "alice" || top[0].Ticks != 900 || top[0].Seed != 2 {
		t.Errorf("best run = %+v", top[0])
	}
	if top[1].Player != LocalPlayer {
		t.Errorf("empty player stored as %q, expected %q", top[1].Player, LocalPlayer)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{GameID: "flappy", Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores("flappy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 5 || top[0].Score != 19 {
		t.Errorf("got %d runs starting at %d, expected 5 starting at 19", len(top), top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopScores("flappy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("default limit returned %d runs, expected 10", len(top))
	}
}

func TestStoreTopScoresTiesKeepFirst(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "flappy", Score: 4, Player: "first"})
	store.SaveRun(Run{GameID: "flappy", Score: 4, Player: "second"})

	top, err := store.TopScores("flappy", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if top[0].ID != first {
		t.Errorf("tie went to %q, expected the earlier run", top[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("high score of an unplayed game = %d, expected 0", high)
	}

	store.SaveRun(Run{GameID: "flappy", Score: 9})
	store.SaveRun(Run{GameID: "flappy", Score: 14})

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 14 {
		t.Errorf("HighScore() = %d, expected 14", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Score: 1})
	store.SaveRun(Run{GameID: "flappy_stream", Score: 2})

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	top, _ := store.TopScores("flappy", 10)
	if len(top) != 0 {
		t.Errorf("expected no flappy runs after clear, got %d", len(top))
	}
	other, _ := store.TopScores("flappy_stream", 10)
	if len(other) != 1 {
		t.Errorf("clear touched another game: %d runs left", len(other))
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Score: 1, Player: "bob"})
	store.SaveRun(Run{GameID: "flappy_stream", Score: 2, Player: "bob"})
	store.SaveRun(Run{GameID: "flappy", Score: 3, Player: "carol"})

	runs, err := store.PlayerRuns("bob", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].GameID != "flappy_stream" {
		t.Errorf("PlayerRuns() = %+v, expected bob's two runs newest first", runs)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("flappy")
	if err != nil {
		t.Fatalf("GameStats() on empty table failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "flappy", Score: 2, Pairs: 2})
	store.SaveRun(Run{GameID: "flappy", Score: 4, Pairs: 4})
	store.SaveRun(Run{GameID: "flappy_stream", Score: 10, Pairs: 10})

	stats, err := store.GameStats("flappy")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalPairs != 6 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.AllGameStats()
	if err != nil {
		t.Fatalf("AllGameStats() failed: %v", err)
	}
	if len(all) != 2 || all["flappy_stream"].HighScore != 10 {
		t.Errorf("AllGameStats() = %v", all)
	}
}
