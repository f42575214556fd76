package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/utils"
)

// controls 一帧的输入
type controls struct {
	// 按住类
	left, right, shoot bool
	// 触发类（只在按下的那一帧为 true）
	pause, sound, restart, bomb bool
	// 本帧是否有任何新的按键或触摸
	any bool
}

// touchAction 触摸按钮的动作
type touchAction int

const (
	touchLeft touchAction = iota
	touchRight
	touchShoot
	touchBomb
	touchSound
	touchPause
	touchRestart
)

// touchButton 屏幕上的一个触摸按钮
type touchButton struct {
	action touchAction
	label  string
	rect   components.Box
}

// touchLayout 触摸按钮布局
// 底部：左、右、射击、炸弹；右上角：声音、暂停、重新开始
type touchLayout []touchButton

const (
	touchButtonSize   = 72.0
	touchButtonMargin = 16.0
	touchMenuSize     = 44.0
)

func newTouchLayout(width, height float64) touchLayout {
	bottom := height - touchButtonSize - touchButtonMargin
	menuX := width - touchMenuSize - touchButtonMargin
	box := func(x, y, size float64) components.Box {
		return components.Box{X: x, Y: y, Width: size, Height: size}
	}
	return touchLayout{
		{touchLeft, "<", box(touchButtonMargin, bottom, touchButtonSize)},
		{touchRight, ">", box(touchButtonMargin*2+touchButtonSize, bottom, touchButtonSize)},
		{touchShoot, "FIRE", box(width-touchButtonSize-touchButtonMargin, bottom, touchButtonSize)},
		{touchBomb, "BOMB", box(width-touchButtonSize*2-touchButtonMargin*2, bottom, touchButtonSize)},
		{touchSound, "S", box(menuX, touchButtonMargin, touchMenuSize)},
		{touchPause, "P", box(menuX-touchMenuSize-touchButtonMargin, touchButtonMargin, touchMenuSize)},
		{touchRestart, "R", box(menuX-(touchMenuSize+touchButtonMargin)*2, touchButtonMargin, touchMenuSize)},
	}
}

// hit 返回 (x, y) 处的按钮
func (l touchLayout) hit(x, y float64) (touchAction, bool) {
	for _, b := range l {
		r := b.rect
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return b.action, true
		}
	}
	return 0, false
}

// apply 把一次触摸合并进 controls
// held 为持续按住（移动、射击），justPressed 为本帧新按下（菜单、炸弹）
func (l touchLayout) apply(c *controls, x, y float64, held, justPressed bool) {
	action, ok := l.hit(x, y)
	if !ok {
		return
	}
	switch action {
	case touchLeft:
		c.left = c.left || held
	case touchRight:
		c.right = c.right || held
	case touchShoot:
		c.shoot = c.shoot || held
	case touchBomb:
		c.bomb = c.bomb || justPressed
	case touchSound:
		c.sound = c.sound || justPressed
	case touchPause:
		c.pause = c.pause || justPressed
	case touchRestart:
		c.restart = c.restart || justPressed
	}
}

// showTouch 出现过触摸输入或运行在移动端时显示触摸按钮（鼠标也可点击）
func (s *GameScene) showTouch() bool {
	return s.touchSeen || utils.IsMobile()
}

// pollControls 读取键盘、触摸和鼠标
// 方向键移动，空格射击，S 声音，P 暂停，R 重新开始，B 炸弹
func (s *GameScene) pollControls() controls {
	c := controls{
		left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		shoot:   ebiten.IsKeyPressed(ebiten.KeySpace),
		pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		sound:   inpututil.IsKeyJustPressed(ebiten.KeyS),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		bomb:    inpututil.IsKeyJustPressed(ebiten.KeyB),
	}
	c.any = len(inpututil.AppendJustPressedKeys(nil)) > 0

	pointers := appendPointers(nil)
	touched, clicked := anyJustPressed(pointers)
	if touched {
		s.touchSeen = true
	}
	c.any = c.any || clicked
	if !s.showTouch() {
		return c
	}
	for _, p := range pointers {
		s.touches.apply(&c, float64(p.X), float64(p.Y), true, p.JustPressed)
	}
	return c
}
