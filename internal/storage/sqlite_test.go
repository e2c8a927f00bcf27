package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tower/internal/config"
	"github.com/vovakirdan/tui-tower/internal/games/stacker"
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

func mustSave(t *testing.T, store *Store, gameID string, score int) string {
	t.Helper()
	id, err := store.SaveRun(Run{GameID: gameID, Difficulty: "medium", Score: score})
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
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "tower", Difficulty: "fast", Score: 12, Outcome: OutcomeLost})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q: %v", id, err)
	}

	mustSave(t, store, "tower", 5)
	mustSave(t, store, "tower", 20)
	mustSave(t, store, "tower_goal", 18)

	scores, err := store.TopScores("tower", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{20, 12, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	fast := scores[1]
	if fast.ID != id || fast.Difficulty != "fast" || fast.Outcome != OutcomeLost {
		t.Errorf("Unexpected run: %+v", fast)
	}
	if fast.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
	if time.Since(fast.CreatedAt) > time.Hour {
		t.Errorf("CreatedAt too old: %v", fast.CreatedAt)
	}

	goalScores, err := store.TopScores("tower_goal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(goalScores) != 1 {
		t.Errorf("Expected 1 tower_goal score, got %d", len(goalScores))
	}
}

func TestStoreDefaultOutcome(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "tower", 3)

	runs, _ := store.TopScores("tower", 1)
	if len(runs) != 1 || runs[0].Outcome != OutcomeLost {
		t.Errorf("Expected default outcome %q, got %+v", OutcomeLost, runs)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*10)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tower")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "tower", 10)
	mustSave(t, store, "tower", 30)
	mustSave(t, store, "tower", 20)

	high, err = store.HighScore("tower")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "tower", 10)
	mustSave(t, store, "tower", 20)
	mustSave(t, store, "tower_goal", 30)
	if err := store.SaveBest(stacker.BestScoreKey, 20); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	if err := store.ClearScores("tower"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	towerScores, _ := store.TopScores("tower", 10)
	if len(towerScores) != 0 {
		t.Errorf("Expected 0 tower scores after clear, got %d", len(towerScores))
	}

	goalScores, _ := store.TopScores("tower_goal", 10)
	if len(goalScores) != 1 {
		t.Errorf("tower_goal scores should not be affected by clearing tower")
	}

	if best, _ := store.LoadBest(stacker.BestScoreKey); best != 20 {
		t.Errorf("ClearScores should keep the best score, got %d", best)
	}

	if err := store.ClearBest(stacker.BestScoreKey); err != nil {
		t.Fatalf("ClearBest() failed: %v", err)
	}
	if best, _ := store.LoadBest(stacker.BestScoreKey); best != 0 {
		t.Errorf("Expected best score 0 after ClearBest, got %d", best)
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", i)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		save int
		want int
	}{
		{"first value", 7, 7},
		{"higher value", 12, 12},
		{"lower value is ignored", 3, 12},
		{"equal value", 12, 12},
	}

	best, err := store.LoadBest("towerGame.bestScore")
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", best)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SaveBest("towerGame.bestScore", tt.save); err != nil {
				t.Fatalf("SaveBest() failed: %v", err)
			}
			got, err := store.LoadBest("towerGame.bestScore")
			if err != nil {
				t.Fatalf("LoadBest() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadBest() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "best.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBest(stacker.BestScoreKey, 9); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.LoadBest(stacker.BestScoreKey); best != 9 {
		t.Errorf("Expected best score 9 after reopen, got %d", best)
	}
}

func TestStoreBacksEngineBestScore(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveBest(stacker.BestScoreKey, 4); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	cfg := config.DefaultStackerConfig()
	e := stacker.NewEngine(cfg, stacker.WithBestStore(store))
	if e.Err() != nil {
		t.Fatalf("engine reported store error: %v", e.Err())
	}
	if e.BestScore() != 4 {
		t.Errorf("Engine BestScore() = %d, want 4", e.BestScore())
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tower")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{GameID: "tower_goal", Difficulty: "slow", Score: 18, Outcome: OutcomeWon})
	store.SaveRun(Run{GameID: "tower_goal", Difficulty: "fast", Score: 6, Outcome: OutcomeLost})

	stats, err = store.GetGameStats("tower_goal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.HighScore != 18 || stats.TotalScore != 24 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 12 {
		t.Errorf("AvgScore = %v, want 12", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestStoreTopScoresByDifficulty(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "tower", Difficulty: "slow", Score: 4},
		{GameID: "tower", Difficulty: "fast", Score: 9},
		{GameID: "tower", Difficulty: "slow", Score: 6},
		{GameID: "tower_goal", Difficulty: "slow", Score: 20},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		name       string
		difficulty string
		want       []int
	}{
		{"slow only", "slow", []int{6, 4}},
		{"fast only", "fast", []int{9}},
		{"no runs", "medium", nil},
		{"all", "", []int{9, 6, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.TopScoresByDifficulty("tower", tt.difficulty, 10)
			if err != nil {
				t.Fatalf("TopScoresByDifficulty() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d runs, want %d", len(got), len(tt.want))
			}
			for i, score := range tt.want {
				if got[i].Score != score {
					t.Errorf("run %d score = %d, want %d", i, got[i].Score, score)
				}
			}
		})
	}
}
