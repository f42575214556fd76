package entities

import (
	"math"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/utils"
)

// NewHitParticles 在 (cx, cy) 生成一团向四周飞散的命中粒子
//
// 参数：
//   - rng: 随机数来源（方向与速度）
//   - cfg: 粒子配置
//   - cx, cy: 爆发中心
//   - count: 粒子数量
//
// 返回：
//   - []*Particle: 新创建的粒子，由调用方追加到世界
func NewHitParticles(rng utils.RandomSource, cfg config.ParticleConfig, cx, cy float64, count int) []*Particle {
	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := utils.RandomRange(rng, 0, 2*math.Pi)
		speed := float64(utils.RandomInt(rng, cfg.SpeedMin, cfg.SpeedMax))
		particles = append(particles, NewParticle(
			cx, cy,
			math.Cos(angle)*speed,
			math.Sin(angle)*speed,
			cfg.Lifespan,
			cfg.Gravity,
		))
	}
	return particles
}
