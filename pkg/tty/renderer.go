package tty

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/game"
)

// 敌机字符由 Skin 决定
var enemyGlyphs = []rune{'#', '@', '%', '&', 'W'}

var (
	styleHUD         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePlayer      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 200, 255)).Bold(true)
	styleShield      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 255, 180))
	styleEnemyBullet = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 70, 70))
	styleParticle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 220, 120))
	stylePowerUp     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0)).Bold(true)
	styleStar        = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 100, 150))
)

func shotStyle(shot components.ShotType) tcell.Style {
	switch shot {
	case components.ShotDouble:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 230, 60))
	case components.ShotTriple:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 255, 255))
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// Renderer 把快照绘制到终端
// 第一行是 HUD，其余行按比例映射整个世界
type Renderer struct {
	screen tcell.Screen
	best   func() int
	frame  int
}

// NewRenderer 创建终端渲染器
//
// 参数：
//   - screen: 已初始化的 tcell 屏幕
//   - best: HUD 显示的纪录，可为 nil
func NewRenderer(screen tcell.Screen, best func() int) *Renderer {
	if best == nil {
		best = func() int { return 0 }
	}
	return &Renderer{screen: screen, best: best}
}

// viewport 世界坐标到终端单元格的映射
type viewport struct {
	cols, rows int // 游戏区域大小（不含 HUD 行）
	sx, sy     float64
}

func newViewport(cols, rows int, s game.Snapshot) viewport {
	rows--
	if rows < 1 {
		rows = 1
	}
	return viewport{cols: cols, rows: rows, sx: float64(cols) / s.Width, sy: float64(rows) / s.Height}
}

// cell 返回世界坐标所在的单元格（行已包含 HUD 偏移）
func (v viewport) cell(x, y float64) (int, int, bool) {
	cx := int(math.Floor(x * v.sx))
	cy := int(math.Floor(y * v.sy))
	if cx < 0 || cx >= v.cols || cy < 0 || cy >= v.rows {
		return 0, 0, false
	}
	return cx, cy + 1, true
}

// fill 用 glyph 填满包围盒覆盖的单元格，至少一个
func (r *Renderer) fill(v viewport, b components.Box, glyph rune, style tcell.Style) {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := max(x0, int(math.Ceil((b.X+b.Width)*v.sx))-1)
	y1 := max(y0, int(math.Ceil((b.Y+b.Height)*v.sy))-1)
	for y := max(y0, 0); y <= min(y1, v.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, v.cols-1); x++ {
			r.screen.SetContent(x, y+1, glyph, nil, style)
		}
	}
}

func (r *Renderer) put(v viewport, x, y float64, glyph rune, style tcell.Style) {
	if cx, cy, ok := v.cell(x, y); ok {
		r.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) textCentered(cols, y int, s string, style tcell.Style) {
	r.text(max(0, (cols-len([]rune(s)))/2), y, s, style)
}

// Render 实现 loop.Renderer
func (r *Renderer) Render(s game.Snapshot) {
	r.frame++
	r.screen.Clear()
	cols, rows := r.screen.Size()
	v := newViewport(cols, rows, s)

	// 星空随背景滚动
	for i := 0; i < cols*v.rows/40; i++ {
		x := math.Mod(float64(i*7919), s.Width)
		y := math.Mod(float64(i*104729)+s.BackgroundY, s.Height)
		r.put(v, x, y, '.', styleStar)
	}

	for _, e := range s.Enemies {
		glyph := enemyGlyphs[e.Skin%len(enemyGlyphs)]
		r.fill(v, e.Box, glyph, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(e.Color.R), int32(e.Color.G), int32(e.Color.B))))
	}
	for _, b := range s.Bullets {
		glyph := '|'
		switch {
		case b.Angle < 0:
			glyph = '\\'
		case b.Angle > 0:
			glyph = '/'
		}
		cx, cy := b.Center()
		r.put(v, cx, cy, glyph, shotStyle(b.Shot))
	}
	for _, b := range s.EnemyBullets {
		cx, cy := b.Center()
		r.put(v, cx, cy, '*', styleEnemyBullet)
	}
	for _, p := range s.Particles {
		r.put(v, p.X, p.Y, '.', styleParticle)
	}
	if r.frame/4%2 == 0 {
		for _, p := range s.PowerUps {
			if cx, cy, ok := v.cell(p.X, p.Y); ok {
				r.text(cx, cy, p.Kind.Icon(), stylePowerUp)
			}
		}
	}

	p := s.Player
	if !s.GameOver && !(p.Protected() && r.frame/3%2 == 0) {
		style := stylePlayer
		if p.ShieldTimer > 0 {
			style = styleShield
		}
		r.fill(v, p.Box, 'A', style)
	}

	r.text(0, 0, strings.Join(game.HUDLines(s, r.best()), "  "), styleHUD)
	mid := 1 + v.rows/2
	switch {
	case s.GameOver:
		r.textCentered(cols, mid-1, "GAME OVER", styleHUD)
		r.textCentered(cols, mid+1, "Press R to restart, Q to quit", styleHUD)
	case s.Paused:
		r.textCentered(cols, mid, "PAUSED", styleHUD)
	}

	r.screen.Show()
}
