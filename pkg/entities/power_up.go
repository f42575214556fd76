package entities

import (
	"math"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/utils"
)

// PowerUp 下落的道具
// 效果由 game.ApplyPowerUp 在拾取时结算
type PowerUp struct {
	components.Box

	Kind   components.PowerUpType
	Speed  float64
	Active bool
}

// RandomPowerUpType 按两档频率抽取道具类型
// 以 normalTierChance 的概率从常见档抽取，否则从稀有档抽取，档内均匀
func RandomPowerUpType(rng utils.RandomSource, normalTierChance float64) components.PowerUpType {
	tier := components.LowTierPowerUps
	if rng.Float64() < normalTierChance {
		tier = components.NormalTierPowerUps
	}
	index := int(math.Floor(rng.Float64() * float64(len(tier))))
	if index >= len(tier) {
		index = len(tier) - 1
	}
	return tier[index]
}

// NewPowerUp 创建随机类型的道具，位于可视区域上方
func NewPowerUp(rng utils.RandomSource, cfg config.PowerUpConfig, worldWidth float64) *PowerUp {
	kind := RandomPowerUpType(rng, cfg.NormalTierChance)
	width := powerUpWidth(cfg, kind)
	return NewPowerUpAt(cfg, kind, utils.RandomRange(rng, 0, worldWidth-width))
}

// NewPowerUpAt 在指定水平位置创建指定类型的道具
func NewPowerUpAt(cfg config.PowerUpConfig, kind components.PowerUpType, x float64) *PowerUp {
	return &PowerUp{
		Box: components.Box{
			X:      x,
			Y:      -cfg.Size,
			Width:  powerUpWidth(cfg, kind),
			Height: cfg.Size,
		},
		Kind:   kind,
		Speed:  cfg.Speed,
		Active: true,
	}
}

// powerUpWidth 双发道具的图标较宽
func powerUpWidth(cfg config.PowerUpConfig, kind components.PowerUpType) float64 {
	if kind == components.PowerUpDoubleShot {
		return cfg.WideWidth
	}
	return cfg.Size
}

// Update 推进下落，越过世界底部后失效
func (p *PowerUp) Update(dt, worldHeight float64) {
	if !p.Active {
		return
	}
	p.Y += p.Speed * dt
	if p.Y > worldHeight {
		p.Active = false
	}
}

// Hit 道具被拾取，标记失效
func (p *PowerUp) Hit() {
	p.Active = false
}
