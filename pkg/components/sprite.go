package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的图像及锚点
type SpriteComponent struct {
	Image *ebiten.Image
	// AnchorX, AnchorY 锚点（0~1），0.5 表示以图像中心对齐位置
	AnchorX float64
	AnchorY float64
}
