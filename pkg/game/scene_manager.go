package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 创建一局新游戏的场景
// 由 app 包注入，避免 game 与 scenes 之间的循环依赖
type SceneFactory func() Scene

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw are called.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	restarts     int
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 丢弃当前场景，通过工厂创建一局全新的游戏
//
// 返回：
//   - bool: 是否成功切换
func (sm *SceneManager) Restart() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory not set")
		return false
	}

	scene := sm.sceneFactory()
	if scene == nil {
		log.Printf("[SceneManager] Error: SceneFactory returned nil")
		return false
	}

	sm.SwitchTo(scene)
	sm.restarts++
	log.Printf("[SceneManager] Started session #%d", sm.restarts)
	return true
}

// Restarts 返回已开始的局数
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// Update updates the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
