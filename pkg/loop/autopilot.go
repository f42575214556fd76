package loop

import (
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/systems"
)

// AutopilotObserver 每帧推进之后由自动驾驶接管操作
// 作为 Observer 挂到 Driver 上，适用于没有人类输入的前端
type AutopilotObserver struct {
	Pilot *systems.AutopilotSystem
	Sim   *systems.Simulation
}

// NewAutopilotObserver 创建使用默认参数的自动驾驶观察者
func NewAutopilotObserver(sim *systems.Simulation) *AutopilotObserver {
	return &AutopilotObserver{Pilot: systems.NewAutopilotSystem(), Sim: sim}
}

// Observe 写入下一帧的操作，从不结束会话
func (a *AutopilotObserver) Observe(w *game.World) bool {
	if !w.Running() {
		return false
	}
	a.Pilot.Apply(w, a.Sim, a.Pilot.Steer(w))
	return false
}

// Reset 无状态
func (a *AutopilotObserver) Reset() {}
