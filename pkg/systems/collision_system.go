package systems

import (
	"log"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

// CollisionSystem 碰撞结算
//
// 每帧按固定顺序执行四轮检测：
//  1. 玩家子弹 × 敌人
//  2. 敌人子弹 × 玩家
//  3. 敌人 × 玩家
//  4. 道具 × 玩家
//
// 只标记失效，实体的移除由帧末的 Prune 完成
type CollisionSystem struct {
	cfg   *config.GameConfig
	rng   utils.RandomSource
	sound game.SoundPlayer
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(cfg *config.GameConfig, rng utils.RandomSource, sound game.SoundPlayer) *CollisionSystem {
	return &CollisionSystem{cfg: cfg, rng: rng, sound: sound}
}

// Update 执行本帧的全部碰撞检测
func (c *CollisionSystem) Update(w *game.World) {
	c.bulletsVersusEnemies(w)
	c.enemyBulletsVersusPlayer(w)
	c.enemiesVersusPlayer(w)
	c.powerUpsVersusPlayer(w)
}

// bulletsVersusEnemies 每颗子弹最多击毁一个敌人（按敌人序列顺序取第一个）
func (c *CollisionSystem) bulletsVersusEnemies(w *game.World) {
	offset := c.cfg.Collision.BulletEnemy
	for _, b := range w.Bullets {
		if !b.Active {
			continue
		}
		for _, e := range w.Enemies {
			if !e.Active || !utils.Collision(b.Box, e.Box, offset) {
				continue
			}
			b.Active = false
			e.Active = false
			w.AddScore(c.cfg.Score.EnemyKill)
			c.burst(w, e.Box, c.cfg.Particle.EnemyHit)
			break
		}
	}
}

// enemyBulletsVersusPlayer 第一颗命中的敌人子弹之后不再检测
func (c *CollisionSystem) enemyBulletsVersusPlayer(w *game.World) {
	offset := c.cfg.Collision.EnemyBulletPlayer
	for _, b := range w.EnemyBullets {
		if !b.Active || !utils.Collision(b.Box, w.Player.Box, offset) {
			continue
		}
		b.Active = false
		c.burst(w, w.Player.Box, c.cfg.Particle.PlayerHitByBullet)
		c.hitPlayer(w, "enemy bullet")
		return
	}
}

func (c *CollisionSystem) enemiesVersusPlayer(w *game.World) {
	offset := c.cfg.Collision.EnemyPlayer
	for _, e := range w.Enemies {
		if !e.Active || !utils.Collision(w.Player.Box, e.Box, offset) {
			continue
		}
		e.Active = false
		c.burst(w, w.Player.Box, c.cfg.Particle.PlayerHitByEnemy)
		c.hitPlayer(w, "enemy")
	}
}

func (c *CollisionSystem) powerUpsVersusPlayer(w *game.World) {
	offset := c.cfg.Collision.PowerUpPlayer
	for _, p := range w.PowerUps {
		if !p.Active || !utils.Collision(w.Player.Box, p.Box, offset) {
			continue
		}
		p.Hit()
		game.ApplyPowerUp(p.Kind, w, c.cfg.PowerUp)
		c.sound.PlaySound(components.SoundAchievement)
		c.burst(w, p.Box, c.cfg.Particle.PowerUpPickup)
		log.Printf("[CollisionSystem] Picked up power-up: %s", p.Kind)
	}
}

func (c *CollisionSystem) hitPlayer(w *game.World, source string) {
	if !w.HitPlayer() {
		return
	}
	log.Printf("[CollisionSystem] Player hit by %s, lives left: %d", source, w.Lives())
	if w.GameOver {
		log.Printf("[CollisionSystem] Game over (session %s, score %d)", w.SessionID, w.Score)
	}
}

// burst 在碰撞盒中心生成命中粒子
func (c *CollisionSystem) burst(w *game.World, box components.Box, count int) {
	cx, cy := box.Center()
	w.Particles = append(w.Particles, entities.NewHitParticles(c.rng, c.cfg.Particle, cx, cy, count)...)
}
