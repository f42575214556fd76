package game

import (
	"testing"

	"github.com/decker502/skyshooter/pkg/components"
)

// TestAudioManagerSilent 没有音频上下文时所有请求都是空操作
func TestAudioManagerSilent(t *testing.T) {
	am := NewAudioManager(nil, nil)

	for _, id := range []components.SoundID{
		components.SoundShoot,
		components.SoundExplosion,
		components.SoundAchievement,
		components.SoundSoundtrack,
	} {
		if am.PlaySound(id) {
			t.Errorf("PlaySound(%v) should report no output without a context", id)
		}
	}
	am.PauseMusic()
}

// TestAudioManagerToggleSound 开关状态写入设置
func TestAudioManagerToggleSound(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.SoundEnabled() {
		t.Fatal("sound should start disabled")
	}
	if !am.ToggleSound() || !sm.GetSettings().SoundEnabled {
		t.Error("ToggleSound() should enable sound in settings")
	}

	// 没有播放器时即使声音开启也不会输出
	if am.PlaySound(components.SoundShoot) {
		t.Error("PlaySound without players should return false")
	}

	// 降级模式（无 gdata）保存总是成功
	if err := am.SaveSettings(); err != nil {
		t.Errorf("SaveSettings() in degraded mode: %v", err)
	}
}

var _ SoundPlayer = (*AudioManager)(nil)
var _ SoundPlayer = NopSound{}
