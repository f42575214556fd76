package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
)

const (
	starCount = 90

	// 闪烁周期（秒）
	playerBlinkPeriod  = 0.1
	powerUpBlinkPeriod = 0.2
)

var (
	colorSky         = color.RGBA{R: 6, G: 8, B: 22, A: 255}
	colorStar        = color.RGBA{R: 200, G: 210, B: 255, A: 255}
	colorStarFar     = color.RGBA{R: 90, G: 100, B: 150, A: 255}
	colorPlayer      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorCockpit     = color.RGBA{R: 230, G: 250, B: 255, A: 255}
	colorShield      = color.RGBA{R: 120, G: 255, B: 180, A: 200}
	colorEnemyBullet = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	colorPowerUp     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// shotColor 子弹颜色：普通白色，双发黄色，三发青色
func shotColor(shot components.ShotType) color.RGBA {
	switch shot {
	case components.ShotDouble:
		return color.RGBA{R: 255, G: 230, B: 60, A: 255}
	case components.ShotTriple:
		return color.RGBA{R: 60, G: 255, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// blinkHidden 闪烁的隐藏相位：floor(t / period) 为偶数时不绘制
func blinkHidden(t, period float64) bool {
	return int(math.Floor(t/period))%2 == 0
}

// starPosition 第 i 颗星在滚动偏移 offset 下的位置
// 奇数号星在远景层，以一半速度滚动
func starPosition(i int, width, height, offset float64) (float64, float64) {
	x := math.Mod(float64(i*7919), width)
	y := math.Mod(float64(i*104729), height)
	if i%2 == 1 {
		offset /= 2
	}
	return x, math.Mod(y+offset, height)
}

func (s *GameScene) drawBackground(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(colorSky)
	for i := 0; i < starCount; i++ {
		x, y := starPosition(i, snap.Width, snap.Height, snap.BackgroundY)
		clr, size := colorStar, float32(2)
		if i%2 == 1 {
			clr, size = colorStarFar, 1
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, clr, false)
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	p := snap.Player
	if snap.GameOver {
		return
	}
	if p.Protected() && blinkHidden(s.elapsed, playerBlinkPeriod) {
		return
	}

	x, y := float32(p.X), float32(p.Y)
	w, h := float32(p.Width), float32(p.Height)
	// 机身、机翼、座舱
	vector.DrawFilledRect(screen, x+w*0.35, y, w*0.3, h, colorPlayer, false)
	vector.DrawFilledRect(screen, x, y+h*0.55, w, h*0.3, colorPlayer, false)
	vector.DrawFilledRect(screen, x+w*0.42, y+h*0.2, w*0.16, h*0.25, colorCockpit, false)

	if p.ShieldTimer > 0 {
		cx, cy := p.Center()
		vector.StrokeCircle(screen, float32(cx), float32(cy), w*0.9, 2, colorShield, true)
	}
}

// drawEnemies 敌机外形由 Skin 决定
func (s *GameScene) drawEnemies(screen *ebiten.Image, snap game.Snapshot) {
	for i := range snap.Enemies {
		drawEnemy(screen, &snap.Enemies[i])
	}
}

func drawEnemy(screen *ebiten.Image, e *entities.Enemy) {
	x, y := float32(e.X), float32(e.Y)
	w, h := float32(e.Width), float32(e.Height)
	cx, cy := x+w/2, y+h/2
	clr := e.Color

	switch e.Skin {
	case 0:
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	case 1:
		vector.DrawFilledCircle(screen, cx, cy, w/2, clr, true)
	case 2:
		vector.StrokeRect(screen, x, y, w, h, 3, clr, false)
		vector.DrawFilledRect(screen, x+w/4, y+h/4, w/2, h/2, clr, false)
	case 3:
		vector.StrokeLine(screen, cx, y, x+w, cy, 3, clr, true)
		vector.StrokeLine(screen, x+w, cy, cx, y+h, 3, clr, true)
		vector.StrokeLine(screen, cx, y+h, x, cy, 3, clr, true)
		vector.StrokeLine(screen, x, cy, cx, y, 3, clr, true)
	default:
		vector.DrawFilledRect(screen, x, y+h/3, w, h/3, clr, false)
		vector.DrawFilledRect(screen, x+w/3, y, w/3, h, clr, false)
	}
	if e.CanShoot {
		vector.DrawFilledCircle(screen, cx, y+h, 3, colorEnemyBullet, true)
	}
}

func (s *GameScene) drawBullets(screen *ebiten.Image, snap game.Snapshot) {
	for _, b := range snap.Bullets {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), shotColor(b.Shot), false)
	}
	for _, b := range snap.EnemyBullets {
		cx, cy := b.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(b.Width/2), colorEnemyBullet, true)
	}
}

func (s *GameScene) drawParticles(screen *ebiten.Image, snap game.Snapshot) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		clr := p.Color
		clr.A = uint8(float64(clr.A) * p.Alpha())
		vector.DrawFilledRect(screen, float32(p.X)-1.5, float32(p.Y)-1.5, 3, 3, clr, false)
	}
}

func (s *GameScene) drawPowerUps(screen *ebiten.Image, snap game.Snapshot) {
	if blinkHidden(s.elapsed, powerUpBlinkPeriod) {
		return
	}
	for _, p := range snap.PowerUps {
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, colorPowerUp, false)
		cx, cy := p.Center()
		s.drawTextCentered(screen, p.Kind.Icon(), cx, cy, 1, colorPowerUp)
	}
}
