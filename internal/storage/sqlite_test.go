package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	store.Close()
}

func TestRecordAndRecentGames(t *testing.T) {
	store := openTestStore(t)

	id, err := store.RecordGame(GameRecord{Result: ResultLost, MaxTile: 256, Moves: 180, Duration: 95})
	if err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive insert ID, got %d", id)
	}

	if _, err := store.RecordGame(GameRecord{Result: ResultWon, MaxTile: 2048, Moves: 940, Duration: 600}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}

	records, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Newest first
	if records[0].Result != ResultWon {
		t.Errorf("first record result = %q, expected won", records[0].Result)
	}
	if records[0].MaxTile != 2048 {
		t.Errorf("first record max tile = %d, expected 2048", records[0].MaxTile)
	}
	if records[1].Moves != 180 {
		t.Errorf("second record moves = %d, expected 180", records[1].Moves)
	}
}

func TestRecentGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.RecordGame(GameRecord{Result: ResultLost, MaxTile: 64, Moves: 50 + i}); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
	}

	records, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 records with limit 3, got %d", len(records))
	}

	// Non-positive limit falls back to a default
	records, err = store.RecentGames(0)
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("expected all 5 records with default limit, got %d", len(records))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.Wins != 0 || empty.BestTile != 0 {
		t.Errorf("stats on empty database should be zero, got %+v", empty)
	}

	store.RecordGame(GameRecord{Result: ResultWon, MaxTile: 2048, Moves: 900})
	store.RecordGame(GameRecord{Result: ResultLost, MaxTile: 512, Moves: 300})
	store.RecordGame(GameRecord{Result: ResultLost, MaxTile: 1024, Moves: 400})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, expected 3", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("wins = %d, expected 1", stats.Wins)
	}
	if stats.BestTile != 2048 {
		t.Errorf("best tile = %d, expected 2048", stats.BestTile)
	}
	if stats.TotalMoves != 1600 {
		t.Errorf("total moves = %d, expected 1600", stats.TotalMoves)
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame(GameRecord{Result: ResultLost, MaxTile: 128, Moves: 100})
	store.RecordGame(GameRecord{Result: ResultWon, MaxTile: 2048, Moves: 800})

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}

	records, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after clear, got %d", len(records))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.RecordGame(GameRecord{Result: ResultWon, MaxTile: 2048, Moves: 700}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	records, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}
	if len(records) != 1 || records[0].Result != ResultWon {
		t.Errorf("record should survive reopen, got %+v", records)
	}
}
