package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重建当前场景（例如配置热重载后）
type SceneFactory func() (Scene, error)

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw methods are called.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory

	// 最近一次已知的视口尺寸，0 表示尚未收到
	viewportWidth  int
	viewportHeight int
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
// 如果新场景实现了 Resizable，会立即收到当前视口尺寸
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if sm.viewportWidth > 0 && sm.viewportHeight > 0 {
		if r, ok := scene.(Resizable); ok {
			r.Resize(sm.viewportWidth, sm.viewportHeight)
		}
	}
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Rebuild 使用工厂函数重新创建场景
// 创建失败时保留当前场景并返回错误
func (sm *SceneManager) Rebuild() error {
	if sm.sceneFactory == nil {
		return errors.New("scene factory not set")
	}

	scene, err := sm.sceneFactory()
	if err != nil {
		return err
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 场景已重建")
	return nil
}

// Resize 记录新的视口尺寸，尺寸变化时通知当前场景
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.viewportWidth && height == sm.viewportHeight {
		return
	}
	sm.viewportWidth, sm.viewportHeight = width, height
	log.Printf("[SceneManager] 视口尺寸变化: %dx%d", width, height)

	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// ViewportSize 返回最近一次已知的视口尺寸
func (sm *SceneManager) ViewportSize() (int, int) {
	return sm.viewportWidth, sm.viewportHeight
}

// Update updates the active scene. Does nothing without one.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene. Does nothing without one.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
