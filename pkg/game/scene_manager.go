package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 配置热重载时用它按新配置重建场景
type SceneFactory func() (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于重建场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
// 被替换的旧场景如果实现了 SceneCloser，会先被关闭。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(SceneCloser); ok && sm.currentScene != scene {
		old.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Rebuild 用工厂函数重建当前场景
// 工厂失败时保留旧场景继续运行，返回 false
func (sm *SceneManager) Rebuild() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] Rebuild failed, keeping current scene: %v", err)
		return false
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] Scene rebuilt")
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(delta float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(delta)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Dispatch 把输入事件交给当前场景（场景实现 EventHandler 时）
func (sm *SceneManager) Dispatch(event InputEvent) {
	if handler, ok := sm.currentScene.(EventHandler); ok {
		handler.HandleEvent(event)
	}
}

// PickEntity 在当前场景中做命中测试（场景实现 EntityPicker 时）
func (sm *SceneManager) PickEntity(x, y float64) (Entity, bool) {
	if picker, ok := sm.currentScene.(EntityPicker); ok {
		return picker.PickEntity(x, y)
	}
	return nil, false
}
