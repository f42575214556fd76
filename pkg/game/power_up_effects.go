package game

import (
	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
)

// ApplyPowerUp 结算一次道具效果
// 计时类效果累加（+=），不会重置已有的剩余时间
//
// 参数：
//   - kind: 道具类型
//   - w: 世界状态
//   - cfg: 道具配置（时长与加分数值）
func ApplyPowerUp(kind components.PowerUpType, w *World, cfg config.PowerUpConfig) {
	p := w.Player
	switch kind {
	case components.PowerUpShield:
		p.ShieldTimer += cfg.TimedDuration
	case components.PowerUpDoubleShot:
		p.DoubleShotTimer += cfg.TimedDuration
	case components.PowerUpTripleShot:
		p.TripleShotTimer += cfg.TimedDuration
	case components.PowerUpBomb:
		p.Bombs++
	case components.PowerUpExtraLife:
		p.Lives++
	case components.PowerUpScoreSmall:
		w.AddScore(cfg.ScoreSmall)
	case components.PowerUpScoreLarge:
		w.AddScore(cfg.ScoreLarge)
	}
}
