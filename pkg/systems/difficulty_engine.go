package systems

import (
	"math"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/utils"
)

// Difficulty 某个波次的难度参数
type Difficulty struct {
	Count    int     // 本波敌人数量
	MaxSpeed float64 // 敌人速度上限（不包含）
	MaxSize  float64 // 敌人尺寸上限（不包含）
}

// DifficultyEngine 难度引擎
// 根据已触发的波次数计算敌人数量、速度上限和尺寸上限
type DifficultyEngine struct {
	spawn config.SpawnConfig
}

// NewDifficultyEngine 创建难度引擎
func NewDifficultyEngine(spawn config.SpawnConfig) *DifficultyEngine {
	return &DifficultyEngine{spawn: spawn}
}

// Calculate 计算第 ticks 波的难度
// 公式:
//
//	Count    = round(clamp(ticks / TicksPerEnemy, 1, MaxEnemies))
//	MaxSpeed = clamp(MinSpeed + ticks*SpeedPerTick, MinSpeed, MaxSpeed)
//	MaxSize  = clamp(MinSize + ticks*SizePerTick, MinSize, MaxSize)
func (d *DifficultyEngine) Calculate(ticks int) Difficulty {
	n := float64(ticks)
	s := d.spawn
	return Difficulty{
		Count:    int(math.Round(utils.Clamp(n/s.TicksPerEnemy, 1, s.MaxEnemies))),
		MaxSpeed: utils.Clamp(s.MinSpeed+n*s.SpeedPerTick, s.MinSpeed, s.MaxSpeed),
		MaxSize:  utils.Clamp(s.MinSize+n*s.SizePerTick, s.MinSize, s.MaxSize),
	}
}
