package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/gonewx/aquashop/pkg/utils"
)

// AutoRetriggerSystem 休眠后自动在随机位置重新触发
// 只作用于带 AutoRetriggerComponent 的冲击波，用于无人值守的循环展示
type AutoRetriggerSystem struct {
	entityManager *ecs.EntityManager
	random        utils.RandomSource

	viewportWidth  float64
	viewportHeight float64
}

// NewAutoRetriggerSystem 创建自动重触发系统
func NewAutoRetriggerSystem(em *ecs.EntityManager, random utils.RandomSource) *AutoRetriggerSystem {
	return &AutoRetriggerSystem{
		entityManager: em,
		random:        random,
	}
}

// SetViewport 更新随机落点的范围
func (s *AutoRetriggerSystem) SetViewport(width, height int) {
	s.viewportWidth = float64(width)
	s.viewportHeight = float64(height)
}

// Update 重新触发所有已休眠的效果，返回触发数量
func (s *AutoRetriggerSystem) Update() int {
	fired := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShockwaveComponent, *components.AutoRetriggerComponent](s.entityManager) {
		sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id)
		if !ok || !sw.IsDormant() {
			continue
		}
		x, y := s.RandomPoint()
		FireShockwave(sw, x, y)
		fired++
	}
	return fired
}

// RandomPoint 返回视口内均匀分布的随机点
func (s *AutoRetriggerSystem) RandomPoint() (float64, float64) {
	return s.random.Float64() * s.viewportWidth, s.random.Float64() * s.viewportHeight
}
