package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestShowRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"), storage.DefaultCapacity)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Append(storage.Entry{RoundID: "r1", Name: "ada", Score: 12, Difficulty: "easy"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		roundID string
	}{
		{"saved round", "r1"},
		{"round not in table", "r2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := showRound(store, tc.roundID); err != nil {
				t.Errorf("showRound(%q) = %v", tc.roundID, err)
			}
		})
	}

	store.Close()
	if err := showRound(store, "r1"); err == nil {
		t.Error("expected error from a closed store")
	}
}
