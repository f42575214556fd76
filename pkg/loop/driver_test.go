package loop

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/systems"
	"github.com/decker502/skyshooter/pkg/utils"
)

type recordingRenderer struct {
	snapshots []game.Snapshot
}

func (r *recordingRenderer) Render(s game.Snapshot) {
	r.snapshots = append(r.snapshots, s)
}

type countingObserver struct {
	observed int
	resets   int
}

func (o *countingObserver) Observe(*game.World) bool {
	o.observed++
	return false
}

func (o *countingObserver) Reset() {
	o.resets++
}

func newTestDriver(r Renderer) *Driver {
	sim := systems.NewSimulation(config.DefaultGameConfig(), utils.NewSequenceRandom(0.5), nil)
	return NewDriver(sim, nil, r)
}

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

func TestStepFrameDelta(t *testing.T) {
	d := newTestDriver(nil)

	tests := []struct {
		name     string
		now      float64
		expected float64
	}{
		{"first step sets the clock", 0, 0},
		{"normal frame", 1.0 / 60, 1.0 / 60},
		{"stall is clamped", 1.5, 1.0 / 30},
		{"clock going backwards", 1.0, 0},
		{"after backwards step", 1.0 + 1.0/60, 1.0 / 60},
	}

	for _, tt := range tests {
		got := d.Step(at(tt.now))
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%s: dt = %v, want %v", tt.name, got, tt.expected)
		}
	}
	if d.Frames() != len(tests) {
		t.Errorf("Frames: got %d, want %d", d.Frames(), len(tests))
	}
}

// TestStepWaveCadence 波次按墙钟每秒触发一次，与帧率无关
func TestStepWaveCadence(t *testing.T) {
	d := newTestDriver(nil)
	w := d.World()

	d.Step(at(0))
	d.Step(at(0.999))
	if w.SpawnTicks != 0 {
		t.Fatalf("SpawnTicks before first interval: got %d, want 0", w.SpawnTicks)
	}

	d.Step(at(1.0))
	if w.SpawnTicks != 1 {
		t.Errorf("SpawnTicks at 1s: got %d, want 1", w.SpawnTicks)
	}

	// 一次 Step 内补发到期的波次
	d.Step(at(3.0))
	if w.SpawnTicks != 3 {
		t.Errorf("SpawnTicks at 3s: got %d, want 3", w.SpawnTicks)
	}
}

func TestStepWaveCatchUpIsBounded(t *testing.T) {
	d := newTestDriver(nil)
	w := d.World()

	d.Step(at(0))
	d.Step(at(100))
	if w.SpawnTicks != maxWaveCatchUp {
		t.Fatalf("SpawnTicks after stall: got %d, want %d", w.SpawnTicks, maxWaveCatchUp)
	}

	// 重新对齐后按正常节拍继续
	d.Step(at(100.5))
	if w.SpawnTicks != maxWaveCatchUp {
		t.Errorf("SpawnTicks at 100.5s: got %d, want %d", w.SpawnTicks, maxWaveCatchUp)
	}
	d.Step(at(101))
	if w.SpawnTicks != maxWaveCatchUp+1 {
		t.Errorf("SpawnTicks at 101s: got %d, want %d", w.SpawnTicks, maxWaveCatchUp+1)
	}
}

func TestStepRendersAndObserves(t *testing.T) {
	r := &recordingRenderer{}
	d := newTestDriver(r)
	o := &countingObserver{}
	d.SetObserver(o)

	d.Step(at(0))
	d.World().Score = 40
	d.Step(at(0.016))

	if len(r.snapshots) != 2 || o.observed != 2 {
		t.Fatalf("renders=%d observes=%d, want 2 2", len(r.snapshots), o.observed)
	}
	if r.snapshots[1].Score != 40 {
		t.Errorf("snapshot score: got %d, want 40", r.snapshots[1].Score)
	}
	if r.snapshots[1].SessionID != d.World().SessionID {
		t.Error("snapshot should carry the session id")
	}
}

func TestApplyIntents(t *testing.T) {
	d := newTestDriver(nil)
	w := d.World()

	d.Apply(Intent{Kind: IntentLeft, Active: true}, at(0))
	d.Apply(Intent{Kind: IntentRight, Active: true}, at(0))
	d.Apply(Intent{Kind: IntentShoot, Active: true}, at(0))
	if !w.Player.MovingLeft || !w.Player.MovingRight || !w.Player.Shooting {
		t.Error("held intents should be set")
	}

	d.Apply(Intent{Kind: IntentLeft}, at(0))
	if w.Player.MovingLeft {
		t.Error("released intent should be cleared")
	}

	w.Player.Bombs = 1
	d.Apply(Intent{Kind: IntentBomb}, at(0))
	if w.Player.Bombs != 0 {
		t.Errorf("Bombs: got %d, want 0", w.Player.Bombs)
	}
}

// TestPauseResetsFrameClock 取消暂停后的第一帧不会带上暂停期间的时间
func TestPauseResetsFrameClock(t *testing.T) {
	d := newTestDriver(nil)
	w := d.World()

	d.Step(at(0))
	d.Apply(Intent{Kind: IntentPause}, at(0.01))
	if !w.Paused {
		t.Fatal("world should be paused")
	}
	d.Step(at(5))

	d.Apply(Intent{Kind: IntentPause}, at(10))
	if w.Paused {
		t.Fatal("world should be running")
	}
	if dt := d.Step(at(10.01)); math.Abs(dt-0.01) > 1e-9 {
		t.Errorf("first dt after resume: got %v, want 0.01", dt)
	}
}

func TestRestart(t *testing.T) {
	d := newTestDriver(nil)
	o := &countingObserver{}
	d.SetObserver(o)
	old := d.World()
	old.Score = 120
	old.GameOver = true

	d.Apply(Intent{Kind: IntentRestart}, at(0))

	w := d.World()
	if w == old || w.Score != 0 || w.GameOver {
		t.Error("restart should create a fresh world")
	}
	if w.SessionID == old.SessionID {
		t.Error("restart should start a new session")
	}
	if o.resets != 1 {
		t.Errorf("observer resets: got %d, want 1", o.resets)
	}
}

func TestRunAppliesIntentsUntilCancelled(t *testing.T) {
	d := newTestDriver(nil)
	d.FrameInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	intents := make(chan Intent)
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, intents)
	}()

	intents <- Intent{Kind: IntentShoot, Active: true}
	intents <- Intent{Kind: IntentPause}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run: got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	w := d.World()
	if !w.Player.Shooting || !w.Paused {
		t.Errorf("intents not applied: shooting=%v paused=%v", w.Player.Shooting, w.Paused)
	}
}

func TestRunSurvivesClosedIntents(t *testing.T) {
	d := newTestDriver(nil)
	d.FrameInterval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	intents := make(chan Intent)
	close(intents)

	err := d.Run(ctx, intents)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run: got %v, want context.DeadlineExceeded", err)
	}
	if d.Frames() == 0 {
		t.Error("Run should keep stepping after intents are closed")
	}
}

func TestIntentKindString(t *testing.T) {
	if IntentBomb.String() != "bomb" || IntentKind(99).String() != "unknown" {
		t.Errorf("unexpected names: %s %s", IntentBomb, IntentKind(99))
	}
}

func TestObserversFanOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	d := newTestDriver(nil)
	d.SetObserver(Observers{a, b})

	d.Step(at(0))
	d.Restart()

	if a.observed != 1 || b.observed != 1 || a.resets != 1 || b.resets != 1 {
		t.Errorf("a=%+v b=%+v", a, b)
	}
}
