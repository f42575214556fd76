package tty

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/skyshooter/pkg/loop"
)

// errQuit 玩家请求退出
var errQuit = errors.New("quit requested")

// Run 在终端中运行一局游戏，直到玩家退出或 ctx 取消
//
// 事件读取、按键翻译和游戏循环各自运行在独立的 goroutine 中，
// 翻译器通过 intents 通道把意图交给 driver.Run
//
// 参数：
//   - ctx: 取消时结束游戏
//   - screen: 已初始化的屏幕，调用方负责 Fini
//   - driver: 游戏循环，其 Renderer 通常是绘制到同一 screen 的 *Renderer
//   - input: 按键翻译器，nil 时使用默认锁存时间
//
// 返回：
//   - error: 玩家退出或 ctx 取消时返回 nil
func Run(ctx context.Context, screen tcell.Screen, driver *loop.Driver, input *Input) error {
	if input == nil {
		input = NewInput(DefaultLatch)
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	g, gctx := errgroup.WithContext(ctx)
	intents := make(chan loop.Intent, 16)

	g.Go(func() error {
		return driver.Run(gctx, intents)
	})

	g.Go(func() error {
		ticker := time.NewTicker(input.latch / 4)
		defer ticker.Stop()

		send := func(list []loop.Intent) error {
			for _, in := range list {
				select {
				case intents <- in:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		}

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case now := <-ticker.C:
				if err := send(input.Expire(now)); err != nil {
					return err
				}
			case ev, ok := <-events:
				if !ok {
					return errQuit
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					list, stop := input.Key(ev.Key(), ev.Rune(), time.Now())
					if stop {
						return errQuit
					}
					if err := send(list); err != nil {
						return err
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		log.Printf("[TTY] Session ended after %d frames", driver.Frames())
		return nil
	}
	return err
}
