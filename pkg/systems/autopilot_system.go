package systems

import (
	"math"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/game"
)

// Steering 自动驾驶在一帧内给出的操作
type Steering struct {
	Left  bool
	Right bool
	Shoot bool
	Bomb  bool
}

// AutopilotSystem 简单的自动驾驶，用于无头模拟和演示模式
//
// 决策优先级：
//  1. 躲避即将落到飞船上的敌人子弹和敌人
//  2. 靠近正在下落的道具
//  3. 对准最低的敌人
//
// 持续射击；下半屏敌人过多时使用炸弹
type AutopilotSystem struct {
	DangerDistance float64 // 威胁距离飞船顶部多远时开始躲避
	Margin         float64 // 威胁判定的水平余量
	DeadBand       float64 // 对准目标时允许的水平误差
	BombThreshold  int     // 下半屏敌人达到该数量时使用炸弹
}

// NewAutopilotSystem 创建使用默认参数的自动驾驶
func NewAutopilotSystem() *AutopilotSystem {
	return &AutopilotSystem{
		DangerDistance: 140,
		Margin:         12,
		DeadBand:       4,
		BombThreshold:  6,
	}
}

// Steer 根据当前世界状态决定本帧操作（只读，不修改世界）
func (a *AutopilotSystem) Steer(w *game.World) Steering {
	s := Steering{Shoot: true}
	p := w.Player

	lowerHalf := 0
	for _, e := range w.Enemies {
		if e.Active && e.Y > w.Height/2 {
			lowerHalf++
		}
	}
	s.Bomb = p.Bombs > 0 && lowerHalf >= a.BombThreshold

	if dir, ok := a.dodge(w); ok {
		s.Left, s.Right = dir < 0, dir > 0
		return s
	}

	targetX, ok := a.target(w)
	if !ok {
		return s
	}
	cx, _ := p.Center()
	switch {
	case targetX < cx-a.DeadBand:
		s.Left = true
	case targetX > cx+a.DeadBand:
		s.Right = true
	}
	return s
}

// Apply 把操作写入世界，需要时通过模拟核心引爆炸弹
func (a *AutopilotSystem) Apply(w *game.World, sim *Simulation, s Steering) {
	w.SetMovingLeft(s.Left)
	w.SetMovingRight(s.Right)
	w.SetShooting(s.Shoot)
	if s.Bomb {
		sim.FireBomb(w)
	}
}

// dodge 找出最近的威胁，返回躲避方向（-1 左，+1 右）
func (a *AutopilotSystem) dodge(w *game.World) (float64, bool) {
	p := w.Player
	nearest := math.Inf(1)
	threatX := 0.0

	consider := func(box components.Box) {
		if box.X > p.X+p.Width+a.Margin || box.X+box.Width < p.X-a.Margin {
			return
		}
		gap := p.Y - (box.Y + box.Height)
		if gap > a.DangerDistance || box.Y > p.Y+p.Height {
			return
		}
		if gap < nearest {
			nearest = gap
			threatX, _ = box.Center()
		}
	}
	for _, b := range w.EnemyBullets {
		if b.Active {
			consider(b.Box)
		}
	}
	if p.ShieldTimer <= 0 {
		for _, e := range w.Enemies {
			if e.Active {
				consider(e.Box)
			}
		}
	}
	if math.IsInf(nearest, 1) {
		return 0, false
	}

	cx, _ := p.Center()
	dir := 1.0
	if threatX > cx {
		dir = -1
	}
	// 贴墙时换方向
	if dir < 0 && p.X <= 0 {
		dir = 1
	}
	if dir > 0 && p.X >= w.Width-p.Width {
		dir = -1
	}
	return dir, true
}

// target 先找下半屏的道具，再找最低的敌人
func (a *AutopilotSystem) target(w *game.World) (float64, bool) {
	for _, pu := range w.PowerUps {
		if pu.Active && pu.Y > w.Height/3 {
			x, _ := pu.Center()
			return x, true
		}
	}

	lowest := -math.MaxFloat64
	x, found := 0.0, false
	for _, e := range w.Enemies {
		if e.Active && e.Y > lowest {
			lowest = e.Y
			x, _ = e.Center()
			found = true
		}
	}
	return x, found
}
