package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现它即可在视口尺寸变化时收到通知
//
// 调用时机：
//   - 场景被切换为当前场景时（使用最近一次已知的视口尺寸）
//   - 窗口尺寸实际发生变化时
type Resizable interface {
	Resize(width, height int)
}
