// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/embedded"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件，为空时使用嵌入的 data/game.yaml
	ConfigPath string
	// Autopilot 演示模式：由自动驾驶控制飞船
	Autopilot bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	gameConfig               *config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 桌面端调用此函数前应先调用 embedded.Init()；未初始化时使用默认配置。
// 存储和音频的失败只记录警告并降级，不会阻止游戏启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 显式指定的配置文件必须可用；嵌入配置损坏时退回默认值
	gameConfig, err := embedded.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		if cfg.ConfigPath != "" {
			return nil, fmt.Errorf("failed to load game config %s: %w", cfg.ConfigPath, err)
		}
		log.Printf("[App] Warning: %v, using default game config", err)
		gameConfig = config.DefaultGameConfig()
	}
	log.Printf("[Config] World %.0fx%.0f, wave every %.1fs", gameConfig.World.Width, gameConfig.World.Height, gameConfig.World.WaveInterval)

	// 持久化：设置与纪录共用一个 gdata 管理器，失败时为 nil（内存模式）
	storage := game.OpenStorage(game.AppName)
	settingsManager := game.NewSettingsManager(storage)
	highScoreManager := game.NewHighScoreManager(storage)

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized (sound enabled: %v)", audioManager.SoundEnabled())

	// 创建场景管理器，R 键通过工厂开始新的一局
	sceneManager := game.NewSceneManager()
	deps := scenes.GameSceneDeps{
		Config:       gameConfig,
		Audio:        audioManager,
		Scores:       highScoreManager,
		SceneManager: sceneManager,
		Autopilot:    cfg.Autopilot,
	}
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(deps)
	})
	sceneManager.Restart()

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，即世界尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.World.Width), int(a.gameConfig.World.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// SaveOnExit 在程序退出时保存当前场景的状态
//
// 返回：
//   - bool: 保存是否成功
func (a *App) SaveOnExit() bool {
	saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
