package systems

import (
	"log"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

// waveLogInterval 每隔多少波输出一次难度日志
const waveLogInterval = 10

// SpawnSystem 敌人波次与道具的生成
//
// 波次由外部按墙钟节拍触发（loop.Driver），道具按模拟时间累计触发
type SpawnSystem struct {
	cfg        *config.GameConfig
	rng        utils.RandomSource
	difficulty *DifficultyEngine
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(cfg *config.GameConfig, rng utils.RandomSource) *SpawnSystem {
	return &SpawnSystem{
		cfg:        cfg,
		rng:        rng,
		difficulty: NewDifficultyEngine(cfg.Spawn),
	}
}

// Difficulty 返回第 ticks 波的难度参数
func (s *SpawnSystem) Difficulty(ticks int) Difficulty {
	return s.difficulty.Calculate(ticks)
}

// SpawnWave 触发一个敌人波次
// 暂停或游戏结束时不做任何事（也不计入波次）
//
// 返回：
//   - int: 本波生成的敌人数量
func (s *SpawnSystem) SpawnWave(w *game.World) int {
	if !w.Running() {
		return 0
	}
	w.SpawnTicks++

	d := s.difficulty.Calculate(w.SpawnTicks)
	minSpeed := int(s.cfg.Spawn.MinSpeed)
	minSize := int(s.cfg.Spawn.MinSize)
	for i := 0; i < d.Count; i++ {
		speed := float64(utils.RandomInt(s.rng, minSpeed, int(d.MaxSpeed)))
		size := float64(utils.RandomInt(s.rng, minSize, int(d.MaxSize)))
		w.Enemies = append(w.Enemies, entities.NewEnemy(s.rng, s.cfg.Enemy, speed, size, w.Width))
	}

	if w.SpawnTicks%waveLogInterval == 0 {
		log.Printf("[SpawnSystem] Wave %d: %d enemies, maxSpeed=%.0f, maxSize=%.0f",
			w.SpawnTicks, d.Count, d.MaxSpeed, d.MaxSize)
	}
	return d.Count
}

// UpdatePowerUpTimer 累计道具计时，到达阈值时生成一个道具并抽取新阈值
//
// 返回：
//   - bool: 本次是否生成了道具
func (s *SpawnSystem) UpdatePowerUpTimer(w *game.World, dt float64) bool {
	if !w.Running() {
		return false
	}
	w.PowerUpTimer += dt
	if w.PowerUpTimer < w.NextPowerUpAt {
		return false
	}

	s.SpawnPowerUp(w)
	w.PowerUpTimer = 0
	w.NextPowerUpAt = game.NextPowerUpThreshold(s.rng, s.cfg.PowerUp)
	return true
}

// SpawnPowerUp 立即生成一个按频率档位抽取的道具
//
// 返回：
//   - *entities.PowerUp: 新道具；暂停或游戏结束时返回 nil
func (s *SpawnSystem) SpawnPowerUp(w *game.World) *entities.PowerUp {
	if !w.Running() {
		return nil
	}
	p := entities.NewPowerUp(s.rng, s.cfg.PowerUp, w.Width)
	w.PowerUps = append(w.PowerUps, p)
	return p
}
