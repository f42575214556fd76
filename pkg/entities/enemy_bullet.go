package entities

import (
	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
)

// EnemyBullet 敌人子弹，只向下飞行
type EnemyBullet struct {
	components.Box

	Speed  float64
	Active bool
}

// NewEnemyBullet 创建敌人子弹
// (x, y) 是发射点，子弹顶部中心对齐发射点
func NewEnemyBullet(cfg config.BulletConfig, x, y, speed float64) *EnemyBullet {
	return &EnemyBullet{
		Box: components.Box{
			X:      x - cfg.EnemyWidth/2,
			Y:      y,
			Width:  cfg.EnemyWidth,
			Height: cfg.EnemyHeight,
		},
		Speed:  speed,
		Active: true,
	}
}

// Update 推进子弹，越过世界底部后失效
func (b *EnemyBullet) Update(dt, worldHeight float64) {
	if !b.Active {
		return
	}
	b.Y += b.Speed * dt
	if b.Y > worldHeight {
		b.Active = false
	}
}
