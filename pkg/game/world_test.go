package game

import (
	"testing"

	"github.com/google/uuid"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/utils"
)

func newTestWorld() *World {
	cfg := config.DefaultGameConfig()
	cfg.World.Width = 800
	cfg.World.Height = 600
	return NewWorld(cfg, utils.NewSequenceRandom(0.5))
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	if w.Player == nil {
		t.Fatal("world should have a player")
	}
	if w.Player.X != 385 || w.Player.Y != 560 {
		t.Errorf("player position: got (%v, %v), want (385, 560)", w.Player.X, w.Player.Y)
	}
	// randomInt(10, 20) with 0.5 → 15
	if w.NextPowerUpAt != 15 {
		t.Errorf("NextPowerUpAt: got %v, want 15", w.NextPowerUpAt)
	}
	if w.SessionID == uuid.Nil {
		t.Error("SessionID should be set")
	}
	if !w.Running() {
		t.Error("new world should be running")
	}
}

func TestWorldSessionIDsDiffer(t *testing.T) {
	if newTestWorld().SessionID == newTestWorld().SessionID {
		t.Error("each world should get its own session id")
	}
}

func TestWorldIntents(t *testing.T) {
	w := newTestWorld()

	w.SetMovingLeft(true)
	w.SetMovingRight(true)
	w.SetShooting(true)
	if !w.Player.MovingLeft || !w.Player.MovingRight || !w.Player.Shooting {
		t.Error("intents should be forwarded to the player")
	}

	// 后写入者生效
	w.SetShooting(false)
	if w.Player.Shooting {
		t.Error("last write should win")
	}
}

func TestWorldTogglePause(t *testing.T) {
	w := newTestWorld()

	if !w.TogglePause() || !w.Paused || w.Running() {
		t.Error("first toggle should pause")
	}
	if w.TogglePause() || w.Paused {
		t.Error("second toggle should resume")
	}
}

// TestWorldHitPlayer 生命归零时游戏结束，之后的伤害不再生效
func TestWorldHitPlayer(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 3; i++ {
		w.Player.Invulnerable = 0
		if !w.HitPlayer() {
			t.Fatalf("hit %d should apply", i+1)
		}
	}
	if w.Lives() != 0 || !w.GameOver {
		t.Errorf("lives=%d gameOver=%v, want 0 true", w.Lives(), w.GameOver)
	}

	w.Player.Invulnerable = 0
	if w.HitPlayer() {
		t.Error("hit after game over should be ignored")
	}
	if w.Lives() != 0 {
		t.Errorf("lives should stay at 0, got %d", w.Lives())
	}
}

func TestWorldHitPlayerShielded(t *testing.T) {
	w := newTestWorld()
	w.Player.ShieldTimer = 3

	if w.HitPlayer() {
		t.Error("shielded hit should be ignored")
	}
	if w.Lives() != 3 {
		t.Errorf("lives: got %d, want 3", w.Lives())
	}
}

func TestWorldAddScore(t *testing.T) {
	w := newTestWorld()
	w.AddScore(10)
	w.AddScore(-5)
	w.AddScore(0)

	if w.Score != 10 {
		t.Errorf("Score: got %d, want 10", w.Score)
	}
}

// TestWorldPrune 清理后只剩存活实体，且保持原有顺序
func TestWorldPrune(t *testing.T) {
	w := newTestWorld()

	e1 := &entities.Enemy{Active: true, Speed: 1}
	e2 := &entities.Enemy{Active: false, Speed: 2}
	e3 := &entities.Enemy{Active: true, Speed: 3}
	w.Enemies = []*entities.Enemy{e1, e2, e3}
	w.Bullets = []*entities.Bullet{{Active: false}, {Active: false}}
	w.EnemyBullets = []*entities.EnemyBullet{{Active: true}}
	w.Particles = []*entities.Particle{{Active: false}, {Active: true}}
	w.PowerUps = []*entities.PowerUp{{Active: false}}

	w.Prune()

	if len(w.Enemies) != 2 || w.Enemies[0] != e1 || w.Enemies[1] != e3 {
		t.Errorf("enemies after prune: %+v", w.Enemies)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets: got %d, want 0", len(w.Bullets))
	}
	if len(w.EnemyBullets) != 1 {
		t.Errorf("enemy bullets: got %d, want 1", len(w.EnemyBullets))
	}
	if len(w.Particles) != 1 || !w.Particles[0].Active {
		t.Errorf("particles: got %d", len(w.Particles))
	}
	if len(w.PowerUps) != 0 {
		t.Errorf("power-ups: got %d, want 0", len(w.PowerUps))
	}
	if w.Player == nil {
		t.Error("player must never be pruned")
	}
}

func TestNextPowerUpThreshold(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUp

	tests := []struct {
		rnd      float64
		expected float64
	}{
		{0, 10},
		{0.5, 15},
		{0.99, 19},
	}

	for _, tt := range tests {
		got := NextPowerUpThreshold(utils.NewSequenceRandom(tt.rnd), cfg)
		if got != tt.expected {
			t.Errorf("NextPowerUpThreshold(%v) = %v, want %v", tt.rnd, got, tt.expected)
		}
	}
}
