package systems

import (
	"log"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

// PlayerSystem 玩家飞船的射击与炸弹
// 移动与计时器在 entities.Player.Update 中推进，这里负责需要读写 World 的部分
type PlayerSystem struct {
	cfg   *config.GameConfig
	rng   utils.RandomSource
	sound game.SoundPlayer
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(cfg *config.GameConfig, rng utils.RandomSource, sound game.SoundPlayer) *PlayerSystem {
	return &PlayerSystem{cfg: cfg, rng: rng, sound: sound}
}

// Update 推进玩家一帧：移动、计时器，然后在冷却结束时射击
//
// 返回：
//   - bool: 本帧是否射击
func (ps *PlayerSystem) Update(w *game.World, dt float64) bool {
	p := w.Player
	p.Update(dt, w.Width)
	if !p.ReadyToFire() {
		return false
	}
	ps.fire(w, p.FireMode())
	return true
}

// fire 按射击模式生成子弹并设置冷却，每次射击播放一次射击音效
func (ps *PlayerSystem) fire(w *game.World, mode components.FireMode) {
	p := w.Player
	bc := ps.cfg.Bullet
	pc := ps.cfg.Player
	cx, y := p.Muzzle()

	switch mode {
	case components.FireModeTriple:
		p.FireCooldown = 1 / (p.FireRate * 2)
		w.Bullets = append(w.Bullets,
			entities.NewBullet(bc, cx, y, components.ShotTriple, 0),
			entities.NewBullet(bc, cx-pc.TripleShotOffset, y, components.ShotTriple, -pc.TripleShotAngle),
			entities.NewBullet(bc, cx+pc.TripleShotOffset, y, components.ShotTriple, pc.TripleShotAngle),
		)
	case components.FireModeDouble:
		p.FireCooldown = 1 / (p.FireRate * 2)
		half := pc.DoubleShotSpacing / 2
		w.Bullets = append(w.Bullets,
			entities.NewBullet(bc, cx-half, y, components.ShotDouble, 0),
			entities.NewBullet(bc, cx+half, y, components.ShotDouble, 0),
		)
	case components.FireModeNormal:
		p.FireCooldown = 1 / p.FireRate
		w.Bullets = append(w.Bullets, entities.NewBullet(bc, cx, y, components.ShotNormal, 0))
	}
	ps.sound.PlaySound(components.SoundShoot)
}

// FireBomb 引爆一枚炸弹：击毁全部存活敌人并清除全部敌人子弹
// 库存为空、暂停或游戏结束时不做任何事
//
// 返回：
//   - bool: 是否消耗了炸弹
func (ps *PlayerSystem) FireBomb(w *game.World) bool {
	p := w.Player
	if !w.Running() || p.Bombs <= 0 {
		return false
	}
	p.Bombs--

	killed := 0
	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		e.Active = false
		w.AddScore(ps.cfg.Score.EnemyKill)
		cx, cy := e.Center()
		w.Particles = append(w.Particles,
			entities.NewHitParticles(ps.rng, ps.cfg.Particle, cx, cy, ps.cfg.Particle.Bomb)...)
		killed++
	}
	for _, b := range w.EnemyBullets {
		b.Active = false
	}

	ps.sound.PlaySound(components.SoundExplosion)
	log.Printf("[PlayerSystem] Bomb destroyed %d enemies, %d bombs left", killed, p.Bombs)
	return true
}
