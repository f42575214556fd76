package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyshooter/pkg/loop"
)

// DefaultLatch 终端没有按键松开事件：按键在最后一次按下（含自动重复）后
// 保持这么久，然后视为松开
const DefaultLatch = 150 * time.Millisecond

// latched 会被锁存的按住类意图，按固定顺序释放
var latched = []loop.IntentKind{loop.IntentLeft, loop.IntentRight, loop.IntentShoot}

// Input 把终端按键翻译为 loop.Intent
// 方向键（或 a/d）移动，空格射击，p 暂停，r 重新开始，b 炸弹，q/Esc/Ctrl-C 退出
type Input struct {
	latch time.Duration
	held  map[loop.IntentKind]time.Time
}

// NewInput 创建输入翻译器，latch <= 0 时使用 DefaultLatch
func NewInput(latch time.Duration) *Input {
	if latch <= 0 {
		latch = DefaultLatch
	}
	return &Input{latch: latch, held: make(map[loop.IntentKind]time.Time)}
}

// Key 处理一次按键
//
// 返回：
//   - []loop.Intent: 需要应用的意图（已按住的键重复按下不会重复产生）
//   - bool: 是否请求退出
func (in *Input) Key(key tcell.Key, r rune, now time.Time) ([]loop.Intent, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		return in.press(loop.IntentLeft, now), false
	case tcell.KeyRight:
		return in.press(loop.IntentRight, now), false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r {
	case 'q', 'Q':
		return nil, true
	case 'a', 'A':
		return in.press(loop.IntentLeft, now), false
	case 'd', 'D':
		return in.press(loop.IntentRight, now), false
	case ' ':
		return in.press(loop.IntentShoot, now), false
	case 'p', 'P':
		return []loop.Intent{{Kind: loop.IntentPause}}, false
	case 'r', 'R':
		// 新会话从没有按键的状态开始，之后的重复按键要重新产生按下意图
		clear(in.held)
		return []loop.Intent{{Kind: loop.IntentRestart}}, false
	case 'b', 'B':
		return []loop.Intent{{Kind: loop.IntentBomb}}, false
	}
	return nil, false
}

func (in *Input) press(kind loop.IntentKind, now time.Time) []loop.Intent {
	_, already := in.held[kind]
	in.held[kind] = now
	if already {
		return nil
	}
	return []loop.Intent{{Kind: kind, Active: true}}
}

// Expire 释放锁存时间已过的按键
func (in *Input) Expire(now time.Time) []loop.Intent {
	var released []loop.Intent
	for _, kind := range latched {
		last, ok := in.held[kind]
		if !ok || now.Sub(last) < in.latch {
			continue
		}
		delete(in.held, kind)
		released = append(released, loop.Intent{Kind: kind})
	}
	return released
}

// Held 某个意图当前是否处于锁存状态
func (in *Input) Held(kind loop.IntentKind) bool {
	_, ok := in.held[kind]
	return ok
}
