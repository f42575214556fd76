package entities

import (
	"math"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
)

// Bullet 玩家子弹
// 发射角在生命周期内不变：0 度竖直向上，正角度向右偏
type Bullet struct {
	components.Box

	Shot   components.ShotType
	Angle  float64 // 发射角（度）
	Speed  float64 // 速度（像素/秒）
	VX     float64 // 水平速度分量
	VY     float64 // 竖直速度分量（向上为负）
	Active bool
}

// NewBullet 创建玩家子弹
// (x, y) 是发射点，子弹底部中心对齐发射点
func NewBullet(cfg config.BulletConfig, x, y float64, shot components.ShotType, angle float64) *Bullet {
	width := cfg.Width
	if shot == components.ShotDouble {
		width = cfg.DoubleWidth
	}

	rad := angle * math.Pi / 180
	return &Bullet{
		Box: components.Box{
			X:      x - width/2,
			Y:      y - cfg.Height,
			Width:  width,
			Height: cfg.Height,
		},
		Shot:   shot,
		Angle:  angle,
		Speed:  cfg.Speed,
		VX:     math.Sin(rad) * cfg.Speed,
		VY:     -math.Cos(rad) * cfg.Speed,
		Active: true,
	}
}

// Update 推进子弹，飞出上、左、右边界后失效
func (b *Bullet) Update(dt, worldWidth float64) {
	if !b.Active {
		return
	}

	if b.Angle == 0 {
		b.Y -= b.Speed * dt
	} else {
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}

	if b.Y < -b.Height || b.X < -b.Width || b.X > worldWidth {
		b.Active = false
	}
}
