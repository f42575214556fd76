package game

import (
	"github.com/google/uuid"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/utils"
)

// World 一局游戏的全部可变状态
//
// 同一时间只有一个 goroutine 修改 World：
// 实时前端由 loop.Driver 驱动，无头模拟每局独占一个 goroutine。
// 各 System 通过显式的 *World 参数读写状态，实体本身从不引用 World。
//
// 五个实体序列的追加顺序即遍历和渲染顺序；
// 每帧结束时 Prune 移除失效实体，之后序列中只剩存活实体
type World struct {
	Width  float64 // 世界宽度（像素）
	Height float64 // 世界高度（像素）

	SpawnTicks int  // 已触发的敌人波次数（难度缩放的输入）
	Score      int  // 当前分数，只增不减
	Paused     bool // 暂停中：所有推进操作都是空操作
	GameOver   bool // 游戏结束：同上，直到重新开始

	BackgroundY   float64 // 背景滚动偏移，范围 [0, Height)
	PowerUpTimer  float64 // 距离上一次生成道具累计的时间
	NextPowerUpAt float64 // 下一次生成道具的阈值（秒）

	SessionID uuid.UUID // 本局唯一标识，用于日志和战绩

	Player       *entities.Player
	Bullets      []*entities.Bullet
	EnemyBullets []*entities.EnemyBullet
	Enemies      []*entities.Enemy
	Particles    []*entities.Particle
	PowerUps     []*entities.PowerUp
}

// NewWorld 创建一局新游戏
//
// 参数：
//   - cfg: 游戏数值配置
//   - rng: 随机数来源（用于抽取第一个道具生成阈值）
//
// 返回：
//   - *World: 初始状态的世界，玩家位于底部居中
func NewWorld(cfg *config.GameConfig, rng utils.RandomSource) *World {
	w := &World{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		SessionID: uuid.New(),
	}
	w.Player = entities.NewPlayer(cfg.Player, w.Width, w.Height)
	w.NextPowerUpAt = NextPowerUpThreshold(rng, cfg.PowerUp)
	return w
}

// NextPowerUpThreshold 抽取下一个道具生成阈值：[IntervalMin, IntervalMax) 内的整数秒
func NextPowerUpThreshold(rng utils.RandomSource, cfg config.PowerUpConfig) float64 {
	return float64(utils.RandomInt(rng, cfg.IntervalMin, cfg.IntervalMax))
}

// Running 既未暂停也未结束
func (w *World) Running() bool {
	return !w.Paused && !w.GameOver
}

// SetMovingLeft 设置左移意图，下一次推进时生效
func (w *World) SetMovingLeft(moving bool) {
	w.Player.MovingLeft = moving
}

// SetMovingRight 设置右移意图，下一次推进时生效
func (w *World) SetMovingRight(moving bool) {
	w.Player.MovingRight = moving
}

// SetShooting 设置射击意图，下一次推进时生效
func (w *World) SetShooting(shooting bool) {
	w.Player.Shooting = shooting
}

// TogglePause 切换暂停状态
//
// 返回：
//   - bool: 切换后是否处于暂停
func (w *World) TogglePause() bool {
	w.Paused = !w.Paused
	return w.Paused
}

// Lives 返回玩家剩余生命
func (w *World) Lives() int {
	return w.Player.Lives
}

// HitPlayer 对玩家结算一次伤害
// 护盾、无敌或游戏已结束时不生效；生命归零时游戏结束
//
// 返回：
//   - bool: 本次伤害是否生效
func (w *World) HitPlayer() bool {
	if w.GameOver {
		return false
	}
	if !w.Player.Hit() {
		return false
	}
	if w.Player.Lives <= 0 {
		w.GameOver = true
	}
	return true
}

// AddScore 增加分数，负值被忽略
func (w *World) AddScore(points int) {
	if points > 0 {
		w.Score += points
	}
}

// Prune 移除五个序列中所有失效的实体，保持剩余实体的相对顺序
func (w *World) Prune() {
	w.Bullets = pruneInactive(w.Bullets, func(b *entities.Bullet) bool { return b.Active })
	w.EnemyBullets = pruneInactive(w.EnemyBullets, func(b *entities.EnemyBullet) bool { return b.Active })
	w.Enemies = pruneInactive(w.Enemies, func(e *entities.Enemy) bool { return e.Active })
	w.Particles = pruneInactive(w.Particles, func(p *entities.Particle) bool { return p.Active })
	w.PowerUps = pruneInactive(w.PowerUps, func(p *entities.PowerUp) bool { return p.Active })
}

// pruneInactive 原地过滤，复用底层数组
func pruneInactive[T any](items []*T, active func(*T) bool) []*T {
	kept := items[:0]
	for _, item := range items {
		if active(item) {
			kept = append(kept, item)
		}
	}
	// 释放尾部引用，避免失效实体无法回收
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept
}
