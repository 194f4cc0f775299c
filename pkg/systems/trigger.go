package systems

import "github.com/gonewx/aquashop/pkg/components"

// FireShockwave 触发冲击波：移动圆心并把时钟归零
//
// 无论效果处于 Active 还是 Dormant 都会立即重新开始，不排队也不忽略；
// 这是唯一允许让 Time 变小的操作。
func FireShockwave(sw *components.ShockwaveComponent, x, y float64) {
	sw.CenterX = x
	sw.CenterY = y
	sw.Time = 0
}
