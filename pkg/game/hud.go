package game

import (
	"fmt"
	"math"

	"github.com/decker502/skyshooter/pkg/components"
)

// HUDLines HUD 文本：分数与纪录、生命，然后是生效中的道具计时（向上取整秒）和炸弹
// ebiten 与终端前端共用
func HUDLines(s Snapshot, best int) []string {
	p := s.Player
	lines := []string{
		fmt.Sprintf("Score %d Record %d", s.Score, best),
		fmt.Sprintf("Lives %d", p.Lives),
	}
	if p.ShieldTimer > 0 {
		lines = append(lines, fmt.Sprintf("%s %.0fs", components.PowerUpShield.Icon(), math.Ceil(p.ShieldTimer)))
	}
	if p.DoubleShotTimer > 0 {
		lines = append(lines, fmt.Sprintf("%s %.0fs", components.PowerUpDoubleShot.Icon(), math.Ceil(p.DoubleShotTimer)))
	}
	if p.TripleShotTimer > 0 {
		lines = append(lines, fmt.Sprintf("%s %.0fs", components.PowerUpTripleShot.Icon(), math.Ceil(p.TripleShotTimer)))
	}
	if p.Bombs > 0 {
		lines = append(lines, fmt.Sprintf("%s %d", components.PowerUpBomb.Icon(), p.Bombs))
	}
	return lines
}
