package main

import (
	"context"
	"errors"
	"testing"

	"github.com/decker502/skyshooter/pkg/config"
)

func TestRunAllIsReproducible(t *testing.T) {
	opts := options{runs: 3, ticks: 900, seedBase: 7, seedStep: 3, fps: 60, parallel: 2}
	cfg := config.DefaultGameConfig()

	first, err := runAll(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("runAll() error = %v", err)
	}
	second, err := runAll(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("runAll() error = %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("run %d differs between passes: %+v vs %+v", i+1, first[i], second[i])
		}
		if first[i].runIndex != i+1 || first[i].seed != 7+uint64(i)*3 {
			t.Errorf("run %d has index=%d seed=%d", i+1, first[i].runIndex, first[i].seed)
		}
		if first[i].waves == 0 {
			t.Errorf("run %d: 15 synthetic seconds should spawn waves", i+1)
		}
	}
	t.Logf("✓ scores %d %d %d", first[0].score, first[1].score, first[2].score)
}

func TestRunSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runSession(ctx, config.DefaultGameConfig(), 1, 1, 100, 60)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runSession() error = %v, want context.Canceled", err)
	}
}
