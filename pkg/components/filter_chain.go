package components

import "github.com/gonewx/aquashop/pkg/ecs"

// FilterChainComponent 挂在场景容器实体上的有序滤镜列表
//
// 渲染系统按顺序应用：先是置换滚动，然后依次是每个冲击波。
// Filters 中的实体必须拥有 DisplacementScrollComponent 或 ShockwaveComponent。
type FilterChainComponent struct {
	Filters []ecs.EntityID
}
