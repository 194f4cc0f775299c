package components

import "github.com/hajimehoshi/ebiten/v2"

// DisplacementScrollComponent 持续滚动的置换贴图
//
// 与冲击波无关：没有阈值，也没有休眠，每帧无条件前进并在超过贴图宽度后归零。
type DisplacementScrollComponent struct {
	// Pattern 平铺采样的置换贴图，本身不直接绘制
	Pattern *ebiten.Image

	// OffsetX 当前水平偏移（像素）
	OffsetX float64
	// Step 每帧增加的偏移量
	Step float64
	// PatternWidth 回绕宽度，通常等于贴图宽度
	PatternWidth float64

	// ScaleX, ScaleY 置换强度（像素）
	ScaleX float64
	ScaleY float64
}
