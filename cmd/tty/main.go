// Command tty 在终端中运行 Sky Shooter
//
// 用法：
//
//	go run ./cmd/tty [-config game.yaml] [-autopilot] [-log tty.log]
//
// 终端没有按键松开事件，移动和射击键在最后一次按下后锁存一小段时间
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/loop"
	"github.com/decker502/skyshooter/pkg/systems"
	"github.com/decker502/skyshooter/pkg/tty"
	"github.com/decker502/skyshooter/pkg/utils"
)

var (
	configPath = flag.String("config", "", "Game config YAML (defaults to built-in values)")
	autopilot  = flag.Bool("autopilot", false, "Let the autopilot fly the ship")
	logPath    = flag.String("log", "", "Write logs to this file (discarded otherwise)")
	latch      = flag.Duration("latch", tty.DefaultLatch, "How long a key stays held after its last repeat")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 终端被游戏占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load game config %s: %w", *configPath, err)
		}
		cfg = loaded
	}

	storage := game.OpenStorage(game.AppName)
	scores := game.NewHighScoreManager(storage)
	tracker := game.NewRecordTracker(scores, nil)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()

	sim := systems.NewSimulation(cfg, utils.NewTimeSeededRandom(), nil)
	driver := loop.NewDriver(sim, nil, tty.NewRenderer(screen, tracker.Best))
	observers := loop.Observers{tracker}
	if *autopilot {
		observers = append(observers, loop.NewAutopilotObserver(sim))
	}
	driver.SetObserver(observers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tty.Run(ctx, screen, driver, tty.NewInput(*latch))
}
