package utils

import (
	"image/color"
	"math"
)

// RandomSource 随机数来源
// 返回 [0, 1) 区间内均匀分布的浮点数
//
// *rand.Rand 天然满足此接口；测试中可替换为固定序列，保证结果可复现
type RandomSource interface {
	Float64() float64
}

// Clamp 将 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RandomInt 返回 [min, max) 区间内的随机整数
// 当 max <= min 时区间退化，始终返回 min
//
// 参数：
//   - rng: 随机数来源
//   - min: 下界（包含）
//   - max: 上界（不包含）
func RandomInt(rng RandomSource, min, max int) int {
	diff := max - min
	if diff < 0 {
		diff = 0
	}
	return int(math.Floor(rng.Float64()*float64(diff))) + min
}

// RandomRange 返回 [min, max) 区间内的随机浮点数
func RandomRange(rng RandomSource, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomBrightColor 生成一个明亮的随机颜色
// 每个通道取值 [100, 256)，避免生成接近黑色、在深色背景上看不清的颜色
func RandomBrightColor(rng RandomSource) color.RGBA {
	return color.RGBA{
		R: uint8(RandomInt(rng, 100, 256)),
		G: uint8(RandomInt(rng, 100, 256)),
		B: uint8(RandomInt(rng, 100, 256)),
		A: 255,
	}
}

// Wrap 将 v 回绕到 [0, period) 区间
// period <= 0 时原样返回
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return v
	}
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
