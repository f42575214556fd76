package utils

import (
	"math/rand/v2"
	"time"
)

// NewSeededRandom 创建 PCG 随机源，相同种子产生相同序列
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>17))
}

// NewTimeSeededRandom 以当前时间为种子创建随机源
func NewTimeSeededRandom() *rand.Rand {
	return NewSeededRandom(uint64(time.Now().UnixNano()))
}

// SequenceRandom 按固定序列循环返回数值的随机源
// 用于测试和回放脚本化场景，序列为空时始终返回 0
type SequenceRandom struct {
	values []float64
	next   int
}

// NewSequenceRandom 创建固定序列随机源
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{values: values}
}

// Float64 返回序列中的下一个值
func (s *SequenceRandom) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Calls 返回已经取过的次数
func (s *SequenceRandom) Calls() int {
	return s.next
}
