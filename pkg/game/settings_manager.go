package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/skyshooter/pkg/utils"
)

// GameSettings 玩家设置，跨局保存
type GameSettings struct {
	SoundEnabled bool    `yaml:"soundEnabled"` // 声音开关（音效与背景音乐），默认关闭
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicVolume  float64 `yaml:"musicVolume"`  // 背景音乐音量 0.0 ~ 1.0
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundEnabled: false,
		SoundVolume:  0.2,
		MusicVolume:  0.25,
		Fullscreen:   false,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 设置的加载、修改与保存
// gdataManager 为 nil 时进入降级模式：设置只保存在内存中
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: 存储管理器，可为 nil
//
// 返回：
//   - *SettingsManager: 设置管理器；加载失败时使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新加载设置
// 降级模式或尚未保存过时恢复默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = utils.Clamp(loaded.SoundVolume, 0, 1)
	loaded.MusicVolume = utils.Clamp(loaded.MusicVolume, 0, 1)

	sm.settings = loaded
	return nil
}

// Save 持久化当前设置，降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 返回当前设置（同一实例）
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// ToggleSound 切换声音开关并立即保存
//
// 返回：
//   - bool: 切换后声音是否开启
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	return sm.settings.SoundEnabled
}

// SetSoundVolume 设置音效音量，限制在 [0, 1]；需调用 Save 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = utils.Clamp(volume, 0, 1)
}

// SetMusicVolume 设置背景音乐音量，限制在 [0, 1]；需调用 Save 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = utils.Clamp(volume, 0, 1)
}

// SetFullscreen 记录全屏状态；需调用 Save 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}
