package loop

import (
	"context"
	"log"
	"time"

	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/systems"
	"github.com/decker502/skyshooter/pkg/utils"
)

// maxWaveCatchUp 单次 Step 最多补发的波次，超过后重新对齐波次时钟
const maxWaveCatchUp = 5

// DefaultFrameInterval Run 使用的默认帧间隔（60 FPS）
const DefaultFrameInterval = time.Second / 60

// Renderer 每帧结束时接收只读快照
type Renderer interface {
	Render(s game.Snapshot)
}

// Observer 每帧推进之后检查世界（例如 game.RecordTracker）
type Observer interface {
	Observe(w *game.World) bool
	Reset()
}

// Observers 依次调用多个 Observer
type Observers []Observer

// Observe 调用全部 Observer，任一返回 true 时返回 true
func (obs Observers) Observe(w *game.World) bool {
	done := false
	for _, o := range obs {
		if o.Observe(w) {
			done = true
		}
	}
	return done
}

// Reset 重置全部 Observer
func (obs Observers) Reset() {
	for _, o := range obs {
		o.Reset()
	}
}

// Driver 把墙钟时间转换为模拟步进
//
// 两个相互独立的节拍：
//   - 帧：每次 Step 测量距上一次的 dt，限制在 [0, MaxFrameDelta] 后调用 Advance
//   - 波次：每隔 WaveInterval 秒墙钟时间触发一次 SpawnWave
//
// Driver 不是并发安全的，所有方法必须在同一个 goroutine 上调用（Run 即如此）
type Driver struct {
	sim      *systems.Simulation
	world    *game.World
	renderer Renderer
	observer Observer

	MaxFrameDelta float64       // 单帧 dt 上限（秒）
	WaveInterval  time.Duration // 波次间隔
	FrameInterval time.Duration // Run 的帧间隔

	started  bool
	last     time.Time
	nextWave time.Time
	frames   int
}

// NewDriver 创建驱动器
//
// 参数：
//   - sim: 模拟核心
//   - w: 初始世界，nil 时由 sim 创建
//   - renderer: 每帧渲染回调，可为 nil
func NewDriver(sim *systems.Simulation, w *game.World, renderer Renderer) *Driver {
	if w == nil {
		w = sim.NewWorld()
	}
	wc := sim.Config().World
	return &Driver{
		sim:           sim,
		world:         w,
		renderer:      renderer,
		MaxFrameDelta: wc.MaxFrameDelta,
		WaveInterval:  time.Duration(wc.WaveInterval * float64(time.Second)),
		FrameInterval: DefaultFrameInterval,
	}
}

// SetObserver 设置帧后回调
func (d *Driver) SetObserver(o Observer) {
	d.observer = o
}

// World 返回当前世界（Restart 之后会变化）
func (d *Driver) World() *game.World {
	return d.world
}

// Simulation 返回模拟核心
func (d *Driver) Simulation() *systems.Simulation {
	return d.sim
}

// Frames 返回已执行的 Step 次数
func (d *Driver) Frames() int {
	return d.frames
}

// Step 以墙钟时间 now 推进一帧
// 第一次调用只建立时钟基准（dt = 0）
//
// 返回：
//   - float64: 实际使用的 dt（秒）
func (d *Driver) Step(now time.Time) float64 {
	if !d.started {
		d.started = true
		d.last = now
		d.nextWave = now.Add(d.WaveInterval)
	}

	dt := utils.Clamp(now.Sub(d.last).Seconds(), 0, d.MaxFrameDelta)
	d.last = now

	d.fireDueWaves(now)
	d.sim.Advance(d.world, dt)
	if d.observer != nil {
		d.observer.Observe(d.world)
	}
	if d.renderer != nil {
		d.renderer.Render(d.world.Snapshot())
	}
	d.frames++
	return dt
}

func (d *Driver) fireDueWaves(now time.Time) {
	if d.WaveInterval <= 0 {
		return
	}
	fired := 0
	for !now.Before(d.nextWave) {
		if fired == maxWaveCatchUp {
			d.nextWave = now.Add(d.WaveInterval)
			return
		}
		d.sim.SpawnWave(d.world)
		d.nextWave = d.nextWave.Add(d.WaveInterval)
		fired++
	}
}

// Resume 重置帧时钟，下一次 Step 的 dt 从 now 开始计算
func (d *Driver) Resume(now time.Time) {
	d.last = now
}

// Restart 开始新的一局
func (d *Driver) Restart() {
	d.world = d.sim.NewWorld()
	if d.observer != nil {
		d.observer.Reset()
	}
	log.Printf("[Driver] New session %s", d.world.SessionID)
}

// Apply 在驱动器所在的 goroutine 上应用一次输入
//
// 参数：
//   - in: 输入事件
//   - now: 当前墙钟时间（取消暂停时用于重置帧时钟）
func (d *Driver) Apply(in Intent, now time.Time) {
	w := d.world
	switch in.Kind {
	case IntentLeft:
		w.SetMovingLeft(in.Active)
	case IntentRight:
		w.SetMovingRight(in.Active)
	case IntentShoot:
		w.SetShooting(in.Active)
	case IntentPause:
		if !w.TogglePause() {
			d.Resume(now)
		}
	case IntentBomb:
		d.sim.FireBomb(w)
	case IntentRestart:
		d.Restart()
	}
}

// Run 以 FrameInterval 为节拍持续推进，直到 ctx 被取消
// intents 中的输入在同一个 goroutine 上应用；intents 关闭后继续运行
//
// 返回：
//   - error: ctx.Err()
func (d *Driver) Run(ctx context.Context, intents <-chan Intent) error {
	interval := d.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[Driver] Running session %s at %v per frame", d.world.SessionID, interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[Driver] Stopped after %d frames: %v", d.frames, ctx.Err())
			return ctx.Err()
		case in, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			d.Apply(in, time.Now())
		case now := <-ticker.C:
			d.Step(now)
		}
	}
}
