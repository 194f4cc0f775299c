package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

// DisplacementScrollSystem 每帧滚动置换贴图
type DisplacementScrollSystem struct {
	entityManager *ecs.EntityManager
}

// NewDisplacementScrollSystem 创建置换滚动系统
func NewDisplacementScrollSystem(em *ecs.EntityManager) *DisplacementScrollSystem {
	return &DisplacementScrollSystem{entityManager: em}
}

// Update 无条件推进偏移，超过贴图宽度后归零
// 滚动按帧计数，与 frameDelta 无关
func (s *DisplacementScrollSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.DisplacementScrollComponent](s.entityManager) {
		scroll, ok := ecs.GetComponent[*components.DisplacementScrollComponent](s.entityManager, id)
		if !ok {
			continue
		}
		ScrollDisplacement(scroll)
	}
}

// ScrollDisplacement 推进单个滚动状态
func ScrollDisplacement(scroll *components.DisplacementScrollComponent) {
	scroll.OffsetX += scroll.Step
	if scroll.OffsetX > scroll.PatternWidth {
		scroll.OffsetX = 0
	}
}
