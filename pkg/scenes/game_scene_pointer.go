package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer 一个按下中的指针
type pointer struct {
	X, Y        int
	JustPressed bool // 本帧刚按下
	Touch       bool // 触摸点；false 表示鼠标左键
}

// appendPointers 追加当前所有按下的指针：每个触摸点，以及按下中的鼠标左键
// 鼠标让桌面端也能点击触摸按钮
func appendPointers(ps []pointer) []pointer {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ps = append(ps, pointer{X: x, Y: y, JustPressed: inpututil.TouchPressDuration(id) == 1, Touch: true})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ps = append(ps, pointer{X: x, Y: y, JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)})
	}
	return ps
}

// anyJustPressed 是否有指针在本帧刚按下
func anyJustPressed(ps []pointer) (touch, pressed bool) {
	for _, p := range ps {
		if p.JustPressed {
			pressed = true
			touch = touch || p.Touch
		}
	}
	return touch, pressed
}
