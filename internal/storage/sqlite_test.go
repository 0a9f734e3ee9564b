package storage

import (
	"os"
	"path/filepath"
	"testing"

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

func mustSave(t *testing.T, s *Store, rec ScoreRecord) {
	t.Helper()
	if _, err := s.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 400})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("uniform")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 400 {
		t.Errorf("expected 400 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 100, Lines: 3, Level: 1})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 50, Lines: 1, Level: 1})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 1200, Lines: 12, Level: 2})
	mustSave(t, store, ScoreRecord{Mode: "bag", Score: 5000, Lines: 30, Level: 4})

	scores, err := store.TopScores("uniform", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []int{1200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Lines != 12 || scores[0].Level != 2 {
		t.Errorf("lines/level not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	for _, s := range scores {
		if _, err := uuid.Parse(s.RunID); err != nil {
			t.Errorf("RunID %q is not a UUID: %v", s.RunID, err)
		}
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Mode != "bag" {
		t.Errorf("empty mode should rank every run, got %+v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		mustSave(t, store, ScoreRecord{Mode: "uniform", Score: i * 40})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10},
		{-1, 10},
		{100, 15},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("uniform", tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d rows, expected %d", tt.limit, len(scores), tt.want)
		}
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	mustSave(t, store, ScoreRecord{RunID: id, Mode: "uniform", Score: 10})
	if _, err := store.SaveScore(ScoreRecord{RunID: id, Mode: "uniform", Score: 20}); err == nil {
		t.Error("saving the same run twice should fail")
	}

	rec, err := store.ScoreByRun(id)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if rec == nil || rec.Score != 10 {
		t.Errorf("ScoreByRun() = %+v, expected score 10", rec)
	}

	missing, err := store.ScoreByRun("nope")
	if err != nil {
		t.Fatalf("ScoreByRun(missing) failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("uniform")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty store, got %d", high)
	}

	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 300})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 900})
	mustSave(t, store, ScoreRecord{Mode: "bag", Score: 2000})

	high, _ = store.HighScore("uniform")
	if high != 900 {
		t.Errorf("expected 900, got %d", high)
	}
	high, _ = store.HighScore("")
	if high != 2000 {
		t.Errorf("expected 2000 across modes, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 100})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 200})
	mustSave(t, store, ScoreRecord{Mode: "bag", Score: 300})

	n, err := store.ClearScores("uniform")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows cleared, got %d", n)
	}

	scores, _ := store.TopScores("uniform", 10)
	if len(scores) != 0 {
		t.Errorf("expected no uniform scores, got %d", len(scores))
	}
	bag, _ := store.TopScores("bag", 10)
	if len(bag) != 1 {
		t.Errorf("other modes should survive, got %d bag scores", len(bag))
	}

	n, _ = store.ClearScores("")
	if n != 1 {
		t.Errorf("clearing everything should remove 1 row, got %d", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("uniform")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 100, Lines: 2, Level: 1})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 300, Lines: 14, Level: 2})
	mustSave(t, store, ScoreRecord{Mode: "bag", Score: 9999, Lines: 99, Level: 10})

	st, err := store.Stats("uniform")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 2 {
		t.Errorf("Games = %d, expected 2", st.Games)
	}
	if st.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", st.HighScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", st.AvgScore)
	}
	if st.TotalLines != 16 {
		t.Errorf("TotalLines = %d, expected 16", st.TotalLines)
	}
	if st.BestLevel != 2 {
		t.Errorf("BestLevel = %d, expected 2", st.BestLevel)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreModes(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 1})
	mustSave(t, store, ScoreRecord{Mode: "bag", Score: 2})
	mustSave(t, store, ScoreRecord{Mode: "uniform", Score: 3})

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != "bag" || modes[1] != "uniform" {
		t.Errorf("Modes() = %v, expected [bag uniform]", modes)
	}
}
