package scenes

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/loop"
	"github.com/decker502/skyshooter/pkg/systems"
	"github.com/decker502/skyshooter/pkg/utils"
)

// GameSceneDeps 创建 GameScene 所需的依赖
// 同一组依赖在每次重新开始时复用（由 app 包的场景工厂持有）
type GameSceneDeps struct {
	Config       *config.GameConfig
	Audio        *game.AudioManager     // nil 时静音
	Scores       *game.HighScoreManager // nil 时使用内存纪录
	SceneManager *game.SceneManager     // 用于 R 键重新开始
	RNG          utils.RandomSource     // nil 时使用按时间播种的随机源
	Autopilot    bool                   // 由自动驾驶代替键盘控制移动和射击

	// Clipboard 复制游戏结束总结，nil 时使用系统剪贴板
	Clipboard func(string) error
}

// GameScene 一局游戏
// 每帧：读取键盘/触摸输入 → 写入世界意图 → Driver.Step → 检查游戏结束
type GameScene struct {
	deps      GameSceneDeps
	driver    *loop.Driver
	tracker   *game.RecordTracker
	autopilot *systems.AutopilotSystem

	face    text.Face
	touches touchLayout

	elapsed       float64 // 场景时间，用于闪烁
	musicStarted  bool    // 背景音乐在第一次输入后开始
	musicPaused   bool    // 暂停期间背景音乐停下
	touchSeen     bool    // 出现过触摸输入后才显示触摸按钮
	gameOverAt    float64 // 游戏结束时的场景时间，-1 表示尚未结束
	summaryCopied bool
}

// NewGameScene 创建一局新游戏
func NewGameScene(deps GameSceneDeps) *GameScene {
	if deps.Config == nil {
		deps.Config = config.DefaultGameConfig()
	}
	if deps.Scores == nil {
		deps.Scores = game.NewHighScoreManager(nil)
	}
	if deps.RNG == nil {
		deps.RNG = utils.NewTimeSeededRandom()
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}

	var sound game.SoundPlayer = game.NopSound{}
	if deps.Audio != nil {
		sound = deps.Audio
	}

	sim := systems.NewSimulation(deps.Config, deps.RNG, sound)
	driver := loop.NewDriver(sim, nil, nil)
	tracker := game.NewRecordTracker(deps.Scores, sound)
	driver.SetObserver(tracker)

	s := &GameScene{
		deps:       deps,
		driver:     driver,
		tracker:    tracker,
		face:       text.NewGoXFace(basicfont.Face7x13),
		touches:    newTouchLayout(deps.Config.World.Width, deps.Config.World.Height),
		gameOverAt: -1,
	}
	if deps.Autopilot {
		s.autopilot = systems.NewAutopilotSystem()
	}

	w := driver.World()
	log.Printf("[GameScene] New session %s (%.0fx%.0f, autopilot=%v)", w.SessionID, w.Width, w.Height, deps.Autopilot)
	return s
}

// World 返回当前世界
func (s *GameScene) World() *game.World {
	return s.driver.World()
}

// Update 推进一帧
// deltaTime 只用于闪烁等视觉效果，模拟的 dt 由 Driver 按墙钟测量
func (s *GameScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.applyControls(s.pollControls())
	s.step(time.Now())
}

// applyControls 把一帧的输入写入世界
// 按住类输入每帧覆盖（后写入者生效），触发类输入只在按下的那一帧生效
func (s *GameScene) applyControls(c controls) {
	if c.any && !s.musicStarted && s.deps.Audio != nil {
		s.deps.Audio.PlayMusic()
		s.musicStarted = true
	}

	if c.restart {
		s.restart()
		return
	}
	if c.sound && s.deps.Audio != nil {
		s.deps.Audio.ToggleSound()
	}

	now := time.Now()
	if c.pause {
		s.driver.Apply(loop.Intent{Kind: loop.IntentPause}, now)
		s.syncMusicPause()
	}

	w := s.driver.World()
	if s.autopilot != nil {
		s.autopilot.Apply(w, s.driver.Simulation(), s.autopilot.Steer(w))
	} else {
		s.driver.Apply(loop.Intent{Kind: loop.IntentLeft, Active: c.left}, now)
		s.driver.Apply(loop.Intent{Kind: loop.IntentRight, Active: c.right}, now)
		s.driver.Apply(loop.Intent{Kind: loop.IntentShoot, Active: c.shoot}, now)
	}
	if c.bomb {
		s.driver.Apply(loop.Intent{Kind: loop.IntentBomb}, now)
	}
}

// syncMusicPause 暂停时停下背景音乐，恢复时继续播放
func (s *GameScene) syncMusicPause() {
	if s.deps.Audio == nil || !s.musicStarted {
		return
	}
	paused := s.driver.World().Paused
	if paused == s.musicPaused {
		return
	}
	if paused {
		s.deps.Audio.PauseMusic()
	} else {
		s.deps.Audio.PlayMusic()
	}
	s.musicPaused = paused
}

// step 推进模拟，并在游戏结束后复制一次总结
func (s *GameScene) step(now time.Time) {
	s.driver.Step(now)
	if s.driver.World().GameOver && s.gameOverAt < 0 {
		s.gameOverAt = s.elapsed
	}

	if !s.tracker.Finished() || s.summaryCopied {
		return
	}
	s.summaryCopied = true
	summary := game.SessionSummary(s.driver.World(), s.tracker.Best())
	if err := s.deps.Clipboard(summary); err != nil {
		log.Printf("[GameScene] Warning: failed to copy session summary: %v", err)
		return
	}
	log.Printf("[GameScene] Copied session summary to clipboard")
}

// restart 通过场景管理器开始新的一局；没有场景管理器时原地重置世界
func (s *GameScene) restart() {
	if s.deps.SceneManager != nil && s.deps.SceneManager.Restart() {
		return
	}
	s.driver.Restart()
	s.summaryCopied = false
	s.gameOverAt = -1
}

func (s *GameScene) soundEnabled() bool {
	return s.deps.Audio != nil && s.deps.Audio.SoundEnabled()
}

// SaveOnExit 程序退出时保存用户设置
func (s *GameScene) SaveOnExit() bool {
	if s.deps.Audio == nil {
		return true
	}
	if err := s.deps.Audio.SaveSettings(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return false
	}
	return true
}

// Draw 绘制一帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.driver.World().Snapshot()
	s.drawBackground(screen, snap)
	s.drawEnemies(screen, snap)
	s.drawBullets(screen, snap)
	s.drawParticles(screen, snap)
	s.drawPowerUps(screen, snap)
	s.drawPlayer(screen, snap)
	s.drawHUD(screen, snap)
	s.drawOverlays(screen, snap)
	if s.showTouch() {
		s.drawTouchButtons(screen)
	}
}
