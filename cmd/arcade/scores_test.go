package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []struct {
		game   string
		player string
		score  int
	}{
		{"tanks", "alice", 300},
		{"tanks", "bob", 500},
		{"paint", "alice", 12},
		{"retired", "carol", 7},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.player, r.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestPrintScenarioScores(t *testing.T) {
	store := seededStore(t)
	tests := []struct {
		name     string
		game     string
		all      bool
		contains []string
	}{
		{"ranked", "tanks", false, []string{"High Scores - Tanks", "bob", "Best: 500  Runs: 2"}},
		{"all", "tanks", true, []string{"alice", "bob"}},
		{"empty", "palette", false, []string{"No scores recorded yet.", "arcade play palette"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			title := strings.ToUpper(tc.game[:1]) + tc.game[1:]
			if err := printScenarioScores(&out, store, tc.game, title, tc.all); err != nil {
				t.Fatalf("printScenarioScores() failed: %v", err)
			}
			for _, want := range tc.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}

	var out bytes.Buffer
	printScenarioScores(&out, store, "tanks", "Tanks", false)
	if strings.Index(out.String(), "bob") > strings.Index(out.String(), "alice") {
		t.Error("higher score should rank first")
	}
}

func TestPrintPlayerScores(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := printPlayerScores(&out, store, "alice", ""); err != nil {
		t.Fatalf("printPlayerScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "tanks") || !strings.Contains(out.String(), "paint") {
		t.Errorf("expected both scenarios:\n%s", out.String())
	}

	out.Reset()
	printPlayerScores(&out, store, "alice", "paint")
	if strings.Contains(out.String(), "tanks") {
		t.Errorf("scenario filter ignored:\n%s", out.String())
	}

	out.Reset()
	printPlayerScores(&out, store, "nobody", "")
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output for unknown player:\n%s", out.String())
	}
}

func TestPrintSummary(t *testing.T) {
	store := seededStore(t)

	var out bytes.Buffer
	if err := printSummary(&out, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	s := out.String()
	for _, id := range []string{"tanks", "paint", "retired"} {
		if !strings.Contains(s, id) {
			t.Errorf("summary missing %q:\n%s", id, s)
		}
	}
	// Unregistered scenarios come after the registered ones
	if strings.Index(s, "retired") < strings.Index(s, "tanks") {
		t.Errorf("unregistered scenario listed too early:\n%s", s)
	}

	if err := store.ClearScores("tanks"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	out.Reset()
	printSummary(&out, store)
	if strings.Contains(out.String(), "tanks") {
		t.Errorf("cleared scenario still listed:\n%s", out.String())
	}
}
