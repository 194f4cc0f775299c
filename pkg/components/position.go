package components

// PositionComponent 实体在视口中的位置（像素）
type PositionComponent struct {
	X, Y float64
}

// CenterAnchorComponent 标记需要随视口尺寸变化重新居中的元素
type CenterAnchorComponent struct {
	// OffsetX, OffsetY 相对视口中心的偏移
	OffsetX float64
	OffsetY float64
}
