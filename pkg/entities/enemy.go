package entities

import (
	"image/color"
	"math"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/utils"
)

// Enemy 从顶部下落的敌人
type Enemy struct {
	components.Box

	Speed  float64    // 下落速度（像素/秒）
	Color  color.RGBA // 机身颜色
	Skin   int        // 外观模板索引
	Active bool

	CanShoot     bool    // 生成时决定，之后不变
	FireRate     float64 // 射速（发/秒）
	FireCooldown float64
}

// NewEnemy 创建敌人，位于可视区域上方、随机水平位置
//
// 参数：
//   - rng: 随机数来源
//   - cfg: 敌人配置
//   - speed: 下落速度
//   - size: 边长（敌人为正方形）
//   - worldWidth: 世界宽度
func NewEnemy(rng utils.RandomSource, cfg config.EnemyConfig, speed, size, worldWidth float64) *Enemy {
	e := &Enemy{
		Box: components.Box{
			X:      utils.RandomRange(rng, 0, worldWidth-size),
			Y:      -size,
			Width:  size,
			Height: size,
		},
		Speed:  speed,
		Active: true,
	}
	e.Color = utils.RandomBrightColor(rng)
	e.FireRate = float64(utils.RandomInt(rng, cfg.FireRateMinCentis, cfg.FireRateMaxCentis)) / 100
	e.CanShoot = rng.Float64() < cfg.ShootChance
	e.Skin = int(math.Floor(rng.Float64() * float64(cfg.SkinCount)))
	return e
}

// Update 推进下落与射击冷却
// 越过世界底部后失效；只有完整处于可视区域内的射手才会开火
//
// 返回：
//   - bool: 本帧是否开火（子弹由调用方创建）
func (e *Enemy) Update(dt, worldHeight float64) bool {
	if !e.Active {
		return false
	}
	e.Y += e.Speed * dt
	if e.Y > worldHeight {
		e.Active = false
		return false
	}

	if !e.CanShoot || e.Y <= 0 || e.Y >= worldHeight-e.Height {
		return false
	}
	e.FireCooldown = math.Max(0, e.FireCooldown-dt)
	if e.FireCooldown > 0 {
		return false
	}
	e.FireCooldown = 1 / e.FireRate
	return true
}

// Muzzle 返回发射点（机身底部中心）
func (e *Enemy) Muzzle() (float64, float64) {
	return e.X + e.Width/2, e.Y + e.Height
}
