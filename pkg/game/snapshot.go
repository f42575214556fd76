package game

import (
	"github.com/google/uuid"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/entities"
)

// Snapshot 世界状态的只读副本
// 渲染器只读取快照，持有快照不会影响之后的模拟
type Snapshot struct {
	Width, Height float64

	Score      int
	SpawnTicks int
	Paused     bool
	GameOver   bool

	BackgroundY float64
	SessionID   uuid.UUID

	Player       entities.Player
	FireMode     components.FireMode
	Bullets      []entities.Bullet
	EnemyBullets []entities.EnemyBullet
	Enemies      []entities.Enemy
	Particles    []entities.Particle
	PowerUps     []entities.PowerUp
}

// Snapshot 复制当前世界状态
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:        w.Width,
		Height:       w.Height,
		Score:        w.Score,
		SpawnTicks:   w.SpawnTicks,
		Paused:       w.Paused,
		GameOver:     w.GameOver,
		BackgroundY:  w.BackgroundY,
		SessionID:    w.SessionID,
		Player:       *w.Player,
		FireMode:     w.Player.FireMode(),
		Bullets:      copyValues(w.Bullets),
		EnemyBullets: copyValues(w.EnemyBullets),
		Enemies:      copyValues(w.Enemies),
		Particles:    copyValues(w.Particles),
		PowerUps:     copyValues(w.PowerUps),
	}
}

// Lives 快照中的玩家生命
func (s Snapshot) Lives() int {
	return s.Player.Lives
}

// Bombs 快照中的炸弹库存
func (s Snapshot) Bombs() int {
	return s.Player.Bombs
}

func copyValues[T any](items []*T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}
