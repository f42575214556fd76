package entities

import (
	"math"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/utils"
)

// Player 玩家飞船
//
// 三个输入意图（左移、右移、射击）由外部输入绑定设置，
// 每帧 Update 推进移动和所有计时器；射击的模式选择和子弹生成
// 由 systems.PlayerSystem 根据 FireMode 完成
type Player struct {
	components.Box

	// 输入意图（后写入者生效，只在下一次 Update 读取）
	MovingLeft  bool
	MovingRight bool
	Shooting    bool

	BaseSpeed float64 // 基础速度（像素/秒）
	Speed     float64 // 当前生效速度
	FireRate  float64 // 普通射速（发/秒）

	Lives int // 剩余生命，归零即游戏结束
	Bombs int // 炸弹库存

	// 倒计时（秒），每帧递减并在 0 处截止
	FireCooldown    float64
	Invulnerable    float64 // 受击后的无敌时间
	ShieldTimer     float64 // 护盾道具
	DoubleShotTimer float64 // 双发道具
	TripleShotTimer float64 // 三发道具

	invulnerableDuration float64
}

// NewPlayer 创建玩家，初始位置在世界底部居中
//
// 参数：
//   - cfg: 玩家配置
//   - worldWidth, worldHeight: 创建时的世界尺寸
func NewPlayer(cfg config.PlayerConfig, worldWidth, worldHeight float64) *Player {
	return &Player{
		Box: components.Box{
			X:      worldWidth/2 - cfg.Width/2,
			Y:      worldHeight - cfg.Height - cfg.BottomMargin,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
		BaseSpeed:            cfg.BaseSpeed,
		Speed:                cfg.BaseSpeed,
		FireRate:             cfg.FireRate,
		Lives:                cfg.Lives,
		Bombs:                cfg.Bombs,
		invulnerableDuration: cfg.InvulnerableDuration,
	}
}

// Update 推进移动与计时器
// 水平位置被限制在 [0, worldWidth - Width] 内
func (p *Player) Update(dt, worldWidth float64) {
	vx := 0.0
	if p.MovingLeft {
		vx -= 1
	}
	if p.MovingRight {
		vx += 1
	}
	p.X += vx * p.Speed * dt
	p.X = utils.Clamp(p.X, 0, worldWidth-p.Width)

	p.FireCooldown = math.Max(0, p.FireCooldown-dt)
	p.Invulnerable = math.Max(0, p.Invulnerable-dt)
	p.ShieldTimer = math.Max(0, p.ShieldTimer-dt)
	p.DoubleShotTimer = math.Max(0, p.DoubleShotTimer-dt)
	p.TripleShotTimer = math.Max(0, p.TripleShotTimer-dt)
}

// FireMode 根据道具计时器计算当前射击模式（三发 > 双发 > 普通）
func (p *Player) FireMode() components.FireMode {
	switch {
	case p.TripleShotTimer > 0:
		return components.FireModeTriple
	case p.DoubleShotTimer > 0:
		return components.FireModeDouble
	default:
		return components.FireModeNormal
	}
}

// ReadyToFire 射击意图为真且冷却结束
func (p *Player) ReadyToFire() bool {
	return p.Shooting && p.FireCooldown == 0
}

// Protected 是否处于护盾或无敌状态
func (p *Player) Protected() bool {
	return p.ShieldTimer > 0 || p.Invulnerable > 0
}

// Hit 玩家受到一次伤害
// 护盾或无敌期间不生效；生效时扣一条命并重置无敌时间
//
// 返回：
//   - bool: 本次伤害是否生效
func (p *Player) Hit() bool {
	if p.Protected() {
		return false
	}
	p.Lives--
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Invulnerable = p.invulnerableDuration
	return true
}

// Muzzle 返回发射点（机头中心）
func (p *Player) Muzzle() (float64, float64) {
	return p.X + p.Width/2, p.Y
}
