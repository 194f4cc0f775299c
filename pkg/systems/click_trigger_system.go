package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

// ClickTriggerSystem 点击确定性触发
// 每次点击都在点击位置触发所有带 ClickTriggerComponent 的冲击波
type ClickTriggerSystem struct {
	entityManager *ecs.EntityManager
}

// NewClickTriggerSystem 创建点击触发系统
func NewClickTriggerSystem(em *ecs.EntityManager) *ClickTriggerSystem {
	return &ClickTriggerSystem{entityManager: em}
}

// HandleClick 处理一次点击，返回触发的效果数量
func (s *ClickTriggerSystem) HandleClick(x, y float64) int {
	fired := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShockwaveComponent, *components.ClickTriggerComponent](s.entityManager) {
		sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id)
		if !ok {
			continue
		}
		FireShockwave(sw, x, y)
		fired++
	}
	return fired
}
