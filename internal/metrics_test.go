package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsRecordNothing(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("nil metrics panicked: %v", r)
		}
	}()

	var m *Metrics
	m.observeOutcome(Less)
	m.observeMalformed()
	m.observeWin(time.Second)
}

func TestNewMetricsRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.observeOutcome(Greater)
	m.observeWin(3 * time.Second)

	count, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	// guesses_total{too_big}, games_won_total, game_duration_seconds
	if count != 3 {
		t.Errorf("gathered %d metrics, want 3", count)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("registering the metrics twice on one registry should panic")
		}
	}()
	NewMetrics(reg)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.observeOutcome(Equal)
	m.observeWin(2 * time.Second)

	path := filepath.Join(t.TempDir(), "guessgame.prom")
	if err := WriteTextfile(reg, path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}

	for _, want := range []string{
		`guessgame_guesses_total{result="correct"} 1`,
		"guessgame_games_won_total 1",
		"guessgame_game_duration_seconds_count 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	path := filepath.Join(t.TempDir(), "missing", "dir", "guessgame.prom")
	if err := WriteTextfile(reg, path); err == nil {
		t.Error("WriteTextfile should fail when the directory does not exist")
	}
}
