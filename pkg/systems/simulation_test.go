package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/game/mocks"
)

// TestAdvancePlayerMovement 从 x=100 向右移动 0.5 秒到达 x=280
func TestAdvancePlayerMovement(t *testing.T) {
	sim, w := newTestSimulation(nil)
	w.Player.X = 100
	w.SetMovingRight(true)

	sim.Advance(w, 0.5)

	if w.Player.X != 280 {
		t.Errorf("Player.X: got %v, want 280", w.Player.X)
	}
}

func TestAdvanceNoOpWhenStopped(t *testing.T) {
	tests := []struct {
		name     string
		paused   bool
		gameOver bool
	}{
		{"paused", true, false},
		{"game over", false, true},
		{"both", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, w := newTestSimulation(nil)
			w.Paused = tt.paused
			w.GameOver = tt.gameOver
			w.SetMovingRight(true)
			w.Enemies = append(w.Enemies, newTestEnemy(10, 10, 40))
			x := w.Player.X

			sim.Advance(w, 0.1)

			if w.Player.X != x || w.Enemies[0].Y != 10 || w.BackgroundY != 0 || w.PowerUpTimer != 0 {
				t.Error("Advance must not change a stopped world")
			}
		})
	}
}

// TestAdvanceMalformedDelta 负数、NaN、无穷大的 dt 都按 0 处理，且不会破坏之后的帧
func TestAdvanceMalformedDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"负数", -1},
		{"NaN", math.NaN()},
		{"正无穷", math.Inf(1)},
		{"负无穷", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, w := newTestSimulation(nil)
			w.SetMovingLeft(true)
			w.SetShooting(true)
			x := w.Player.X

			sim.Advance(w, tt.dt)

			if w.Player.X != x || w.BackgroundY != 0 || w.PowerUpTimer != 0 {
				t.Fatalf("dt=%v should behave as 0: x=%v bg=%v timer=%v", tt.dt, w.Player.X, w.BackgroundY, w.PowerUpTimer)
			}

			// 之后的正常帧仍然可以移动和射击
			sim.Advance(w, 0.2)
			sim.Advance(w, 0.2)
			p := w.Player
			if math.IsNaN(p.X) || math.IsNaN(p.FireCooldown) || math.IsNaN(w.BackgroundY) {
				t.Fatalf("world corrupted: x=%v cooldown=%v bg=%v", p.X, p.FireCooldown, w.BackgroundY)
			}
			if p.X >= x {
				t.Errorf("ship should move left after the bad frame: x=%v, start %v", p.X, x)
			}
			if len(w.Bullets) == 0 {
				t.Error("ship should still fire after the bad frame")
			}
		})
	}
}

func TestAdvanceBackgroundWraps(t *testing.T) {
	sim, w := newTestSimulation(nil)
	w.BackgroundY = 590

	sim.Advance(w, 0.1) // +14

	if math.Abs(w.BackgroundY-4) > 1e-9 {
		t.Errorf("BackgroundY: got %v, want 4", w.BackgroundY)
	}
}

// TestAdvanceEnemyFires 可见的射手敌人开火，子弹速度为敌人速度加随机增量
func TestAdvanceEnemyFires(t *testing.T) {
	sim, w := newTestSimulation(nil)
	e := newTestEnemy(200, 100, 40)
	e.CanShoot = true
	w.Enemies = append(w.Enemies, e)

	sim.Advance(w, 0.01)

	if len(w.EnemyBullets) != 1 {
		t.Fatalf("enemy bullets: got %d, want 1", len(w.EnemyBullets))
	}
	// randomInt(100, 200) with 0.5 → 150
	if w.EnemyBullets[0].Speed != 250 {
		t.Errorf("enemy bullet speed: got %v, want 250", w.EnemyBullets[0].Speed)
	}
	if e.FireCooldown != 2 {
		t.Errorf("enemy cooldown: got %v, want 2", e.FireCooldown)
	}
}

// TestAdvanceShootPlaysSound 每次射击恰好一个射击音效
func TestAdvanceShootPlaysSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	sound := mocks.NewMockSoundPlayer(ctrl)
	sim, w := newTestSimulation(sound)
	w.SetShooting(true)

	sound.EXPECT().PlaySound(components.SoundShoot).Return(true).Times(2)

	// 冷却 1/7 秒：第一帧射击，第二帧冷却中，第三帧再次射击
	sim.Advance(w, 0.01)
	sim.Advance(w, 0.1)
	sim.Advance(w, 0.1)

	if len(w.Bullets) != 2 {
		t.Errorf("bullets: got %d, want 2", len(w.Bullets))
	}
}

func TestAdvanceSpawnsPowerUpOnThreshold(t *testing.T) {
	sim, w := newTestSimulation(nil)
	w.NextPowerUpAt = 1

	for i := 0; i < 9; i++ {
		sim.Advance(w, 0.1)
	}
	if len(w.PowerUps) != 0 {
		t.Fatalf("power-up spawned too early at %v", w.PowerUpTimer)
	}

	sim.Advance(w, 0.2)
	if len(w.PowerUps) != 1 {
		t.Fatalf("power-ups: got %d, want 1", len(w.PowerUps))
	}
	if w.PowerUpTimer != 0 {
		t.Errorf("PowerUpTimer should reset, got %v", w.PowerUpTimer)
	}
}

func TestSimulationDelegates(t *testing.T) {
	sim, w := newTestSimulation(nil)

	if n := sim.SpawnWave(w); n != 1 || len(w.Enemies) != 1 {
		t.Errorf("SpawnWave: got %d enemies", n)
	}
	if sim.SpawnPowerUp(w) == nil || len(w.PowerUps) != 1 {
		t.Error("SpawnPowerUp should append a power-up")
	}
	if sim.FireBomb(w) {
		t.Error("FireBomb without bombs should fail")
	}
	if sim.Config().World.Width != 800 {
		t.Error("Config() should return the simulation config")
	}
}

// TestAdvanceInvariants 长时间随机运行，检查每帧的不变量
func TestAdvanceInvariants(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulation(cfg, rand.New(rand.NewPCG(7, 11)), nil)
	w := sim.NewWorld()
	w.SetShooting(true)
	w.Player.Bombs = 3

	prevScore := 0
	for frame := 0; frame < 5000 && !w.GameOver; frame++ {
		if frame%30 == 0 {
			sim.SpawnWave(w)
		}
		if frame%400 == 0 {
			w.SetMovingLeft(!w.Player.MovingLeft)
			w.SetMovingRight(!w.Player.MovingLeft)
		}
		if frame == 2500 {
			sim.FireBomb(w)
		}

		sim.Advance(w, 1.0/30.0)

		p := w.Player
		for i, v := range []float64{p.FireCooldown, p.Invulnerable, p.ShieldTimer, p.DoubleShotTimer, p.TripleShotTimer} {
			if v < 0 {
				t.Fatalf("frame %d: timer %d negative: %v", frame, i, v)
			}
		}

		if w.Score < prevScore {
			t.Fatalf("frame %d: score decreased %d -> %d", frame, prevScore, w.Score)
		}
		prevScore = w.Score

		if p.X < 0 || p.X > w.Width-p.Width {
			t.Fatalf("frame %d: player out of bounds: %v", frame, p.X)
		}
		if w.Lives() < 0 {
			t.Fatalf("frame %d: negative lives", frame)
		}
		assertAllActive(t, frame, w)
		if w.BackgroundY < 0 || w.BackgroundY >= w.Height {
			t.Fatalf("frame %d: BackgroundY out of range: %v", frame, w.BackgroundY)
		}
	}
	t.Logf("✓ final score %d after %d waves, game over: %v", w.Score, w.SpawnTicks, w.GameOver)
}

func assertAllActive(t *testing.T, frame int, w *game.World) {
	t.Helper()
	for _, b := range w.Bullets {
		if !b.Active {
			t.Fatalf("frame %d: inactive bullet survived prune", frame)
		}
	}
	for _, b := range w.EnemyBullets {
		if !b.Active {
			t.Fatalf("frame %d: inactive enemy bullet survived prune", frame)
		}
	}
	for _, e := range w.Enemies {
		if !e.Active {
			t.Fatalf("frame %d: inactive enemy survived prune", frame)
		}
	}
	for _, p := range w.Particles {
		if !p.Active {
			t.Fatalf("frame %d: inactive particle survived prune", frame)
		}
	}
	for _, p := range w.PowerUps {
		if !p.Active {
			t.Fatalf("frame %d: inactive power-up survived prune", frame)
		}
	}
}
