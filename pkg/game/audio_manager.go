package game

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/skyshooter/pkg/components"
)

// AudioManager 音频管理器，实现 SoundPlayer
// 职责：
//   - 启动时合成所有音效并缓存为播放器
//   - 按 SettingsManager 中的开关和音量播放
//   - 背景音乐循环播放，声音关闭时静音而不停止
//
// context 为 nil 时（音频设备不可用）所有播放请求都是空操作
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	soundPlayers    map[components.SoundID]*audio.Player
	music           *audio.Player
}

// cueIDs 需要预先合成的单次音效
var cueIDs = []components.SoundID{
	components.SoundShoot,
	components.SoundExplosion,
	components.SoundAchievement,
}

// NewAudioManager 创建音频管理器并合成音效
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: 设置管理器，可为 nil（使用默认设置）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	if sm == nil {
		sm = NewSettingsManager(nil)
	}
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[components.SoundID]*audio.Player),
	}
	if ctx == nil {
		log.Printf("[AudioManager] Warning: no audio context, running silent")
		return am
	}

	for _, id := range cueIDs {
		am.soundPlayers[id] = ctx.NewPlayerFromBytes(RenderPCM(SynthesizeCue(id)))
	}

	track := RenderPCM(SynthesizeCue(components.SoundSoundtrack))
	loop := audio.NewInfiniteLoop(bytes.NewReader(track), int64(len(track)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create soundtrack player: %v", err)
	} else {
		am.music = music
	}

	log.Printf("[AudioManager] Synthesized %d sound cues", len(am.soundPlayers))
	return am
}

// PlaySound 播放音效
// 声音关闭时单次音效不播放；背景音乐仍会启动（静音），打开声音后即可听到
//
// 返回：
//   - bool: 是否有可听见的声音输出
func (am *AudioManager) PlaySound(id components.SoundID) bool {
	if id == components.SoundSoundtrack {
		return am.PlayMusic()
	}

	settings := am.settingsManager.GetSettings()
	if !settings.SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[id]
	if !ok {
		return false
	}

	player.SetVolume(settings.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// PlayMusic 启动背景音乐，已在播放时不重复启动
func (am *AudioManager) PlayMusic() bool {
	if am.music == nil {
		return false
	}
	am.applyMusicVolume()
	if !am.music.IsPlaying() {
		am.music.Play()
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ToggleSound 切换声音开关，立即作用于背景音乐
//
// 返回：
//   - bool: 切换后声音是否开启
func (am *AudioManager) ToggleSound() bool {
	enabled := am.settingsManager.ToggleSound()
	am.applyMusicVolume()
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SoundEnabled 当前声音开关
func (am *AudioManager) SoundEnabled() bool {
	return am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) applyMusicVolume() {
	if am.music == nil {
		return
	}
	settings := am.settingsManager.GetSettings()
	if settings.SoundEnabled {
		am.music.SetVolume(settings.MusicVolume)
	} else {
		am.music.SetVolume(0)
	}
}

// SaveSettings 持久化声音设置
func (am *AudioManager) SaveSettings() error {
	return am.settingsManager.Save()
}
