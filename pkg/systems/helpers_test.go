package systems

import (
	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/entities"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/utils"
)

// testConfig 800x600 的世界，便于手算坐标
func testConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.World.Width = 800
	cfg.World.Height = 600
	return cfg
}

// newTestSimulation 使用固定随机序列创建模拟核心与世界
func newTestSimulation(sound game.SoundPlayer, values ...float64) (*Simulation, *game.World) {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	sim := NewSimulation(testConfig(), utils.NewSequenceRandom(values...), sound)
	return sim, sim.NewWorld()
}

func newTestEnemy(x, y, size float64) *entities.Enemy {
	return &entities.Enemy{
		Box:      components.Box{X: x, Y: y, Width: size, Height: size},
		Speed:    100,
		Active:   true,
		FireRate: 0.5,
	}
}
