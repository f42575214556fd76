package entities

import (
	"image/color"

	"github.com/decker502/skyshooter/pkg/utils"
)

// ParticleColor 命中粒子的基础颜色
var ParticleColor = color.RGBA{R: 255, G: 220, B: 120, A: 255}

// Particle 纯视觉的短寿命粒子，受恒定向下的加速度影响
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      float64 // 已存活时间（秒）
	Lifespan float64 // 寿命（秒）
	Gravity  float64 // 竖直加速度（像素/秒²）
	Color    color.RGBA
	Active   bool
}

// NewParticle 创建粒子
func NewParticle(x, y, vx, vy, lifespan, gravity float64) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Lifespan: lifespan,
		Gravity:  gravity,
		Color:    ParticleColor,
		Active:   true,
	}
}

// Update 推进粒子；寿命耗尽后失效，不再移动
func (p *Particle) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Age += dt
	if p.Age >= p.Lifespan {
		p.Active = false
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += p.Gravity * dt
}

// Alpha 返回淡出透明度 [0, 1]
func (p *Particle) Alpha() float64 {
	return utils.Clamp(1-p.Age/p.Lifespan, 0, 1)
}
