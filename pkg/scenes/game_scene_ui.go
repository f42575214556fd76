package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

const (
	hudX          = 20.0
	hudTopY       = 24.0
	hudLineHeight = 22.0
	hudScale      = 1.5
	titleScale    = 4.0
	subtitleScale = 2.0
)

var (
	colorHUD     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 153}
	colorButton  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	for i, line := range game.HUDLines(snap, s.tracker.Best()) {
		s.drawText(screen, line, hudX, hudTopY+float64(i)*hudLineHeight, hudScale, colorHUD)
	}
	if !s.soundEnabled() {
		s.drawText(screen, "sound off (S)", hudX, snap.Height-hudLineHeight, 1, colorHUD)
	}
}

// drawOverlays 游戏结束优先于暂停
// gameOverDropTime 游戏结束标题从顶部落到位的时间（秒）
const gameOverDropTime = 0.6

// gameOverTitleY 游戏结束标题的纵坐标：since 秒内从屏幕上方缓出落到 restY
func gameOverTitleY(since, restY float64) float64 {
	return utils.Lerp(-titleScale*13, restY, utils.EaseOutCubic(utils.Progress(since, gameOverDropTime)))
}

func (s *GameScene) drawOverlays(screen *ebiten.Image, snap game.Snapshot) {
	if !snap.GameOver && !snap.Paused {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colorOverlay, false)

	cx, cy := snap.Width/2, snap.Height/2
	if snap.GameOver {
		s.drawTextCentered(screen, "GAME OVER", cx, gameOverTitleY(s.elapsed-s.gameOverAt, cy-30), titleScale, colorHUD)
		s.drawTextCentered(screen, "Press R to restart", cx, cy+40, subtitleScale, colorHUD)
		return
	}
	s.drawTextCentered(screen, "PAUSED", cx, cy, titleScale, colorHUD)
}

func (s *GameScene) drawTouchButtons(screen *ebiten.Image) {
	for _, b := range s.touches {
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), colorButton, false)
		cx, cy := r.Center()
		s.drawTextCentered(screen, b.label, cx, cy, subtitleScale, colorHUD)
	}
}

// drawText 以 (x, y) 为左上角绘制文本
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

// drawTextCentered 以 (cx, cy) 为中心绘制文本
func (s *GameScene) drawTextCentered(screen *ebiten.Image, str string, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(str, s.face, 0)
	s.drawText(screen, str, cx-w*scale/2, cy-h*scale/2, scale, clr)
}
