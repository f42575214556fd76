package game

import "github.com/decker502/skyshooter/pkg/components"

//go:generate go tool mockgen -destination=mocks/mock_sound_player.go -package=mocks github.com/decker502/skyshooter/pkg/game SoundPlayer

// SoundPlayer 音效播放接口
// 模拟核心只通过它触发音效；实现必须立即返回，不得阻塞或 panic
type SoundPlayer interface {
	PlaySound(id components.SoundID) bool
}

// NopSound 静音实现，用于无头模拟和测试
type NopSound struct{}

// PlaySound 不播放任何声音
func (NopSound) PlaySound(components.SoundID) bool {
	return false
}
