package systems

import (
	"math"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

// Simulation 模拟核心：把各个系统按固定顺序组合成一帧
//
// Simulation 本身不持有世界状态，所有操作都作用于传入的 *game.World，
// 同一个 Simulation 可以依次驱动多局游戏（每局一个 World）
type Simulation struct {
	cfg *config.GameConfig
	rng utils.RandomSource

	Player    *PlayerSystem
	Spawn     *SpawnSystem
	Collision *CollisionSystem
}

// NewSimulation 创建模拟核心
//
// 参数：
//   - cfg: 游戏数值配置
//   - rng: 随机数来源
//   - sound: 音效播放接口，nil 时静音
func NewSimulation(cfg *config.GameConfig, rng utils.RandomSource, sound game.SoundPlayer) *Simulation {
	if sound == nil {
		sound = game.NopSound{}
	}
	return &Simulation{
		cfg:       cfg,
		rng:       rng,
		Player:    NewPlayerSystem(cfg, rng, sound),
		Spawn:     NewSpawnSystem(cfg, rng),
		Collision: NewCollisionSystem(cfg, rng, sound),
	}
}

// Config 返回模拟使用的配置
func (s *Simulation) Config() *config.GameConfig {
	return s.cfg
}

// NewWorld 使用同一配置和随机源创建一局新游戏
func (s *Simulation) NewWorld() *game.World {
	return game.NewWorld(s.cfg, s.rng)
}

// Advance 推进一帧
//
// 顺序：玩家 → 敌人（可能开火）→ 敌人子弹 → 玩家子弹 → 粒子 → 道具
// → 道具计时 → 碰撞 → 清理失效实体 → 背景滚动
//
// 暂停或游戏结束时不做任何事；负数、NaN 或无穷大的 dt 视为 0。
// dt 的上限由调用方（loop.Driver）负责限制
func (s *Simulation) Advance(w *game.World, dt float64) {
	if !w.Running() {
		return
	}
	if !(dt >= 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	s.Player.Update(w, dt)
	s.updateEnemies(w, dt)
	for _, b := range w.EnemyBullets {
		b.Update(dt, w.Height)
	}
	for _, b := range w.Bullets {
		b.Update(dt, w.Width)
	}
	for _, p := range w.Particles {
		p.Update(dt)
	}
	for _, p := range w.PowerUps {
		p.Update(dt, w.Height)
	}

	s.Spawn.UpdatePowerUpTimer(w, dt)
	s.Collision.Update(w)
	w.Prune()

	w.BackgroundY = utils.Wrap(w.BackgroundY+s.cfg.World.BackgroundSpeed*dt, w.Height)
}

// updateEnemies 推进敌人，开火的敌人在机身底部中心生成子弹
// 子弹速度 = 敌人速度 + [EnemySpeedDeltaMin, EnemySpeedDeltaMax) 内的随机增量
func (s *Simulation) updateEnemies(w *game.World, dt float64) {
	bc := s.cfg.Bullet
	for _, e := range w.Enemies {
		if !e.Update(dt, w.Height) {
			continue
		}
		x, y := e.Muzzle()
		speed := e.Speed + float64(utils.RandomInt(s.rng, bc.EnemySpeedDeltaMin, bc.EnemySpeedDeltaMax))
		w.EnemyBullets = append(w.EnemyBullets, entities.NewEnemyBullet(bc, x, y, speed))
	}
}

// SpawnWave 触发一个敌人波次
func (s *Simulation) SpawnWave(w *game.World) int {
	return s.Spawn.SpawnWave(w)
}

// SpawnPowerUp 立即生成一个道具
func (s *Simulation) SpawnPowerUp(w *game.World) *entities.PowerUp {
	return s.Spawn.SpawnPowerUp(w)
}

// FireBomb 引爆一枚炸弹
func (s *Simulation) FireBomb(w *game.World) bool {
	return s.Player.FireBomb(w)
}
