// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSnapshot 当前帧的指针状态
// 同时支持鼠标和触摸，触摸优先
type PointerSnapshot struct {
	// JustPressed 本帧是否发生了点击/触摸
	JustPressed bool
	// X, Y 指针位置（视口坐标）
	X, Y int
}

// ReadPointer 读取当前帧的指针状态
func ReadPointer() PointerSnapshot {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSnapshot{JustPressed: true, X: x, Y: y}
	}

	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSnapshot{X: x, Y: y}
	}

	x, y := ebiten.CursorPosition()
	return PointerSnapshot{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
	}
}
