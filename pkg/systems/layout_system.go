package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/config"
	"github.com/gonewx/aquashop/pkg/ecs"
)

// LayoutSystem 视口尺寸变化时把背景和标题重新居中
// 只依赖当前视口尺寸，重复调用结果相同；不触碰冲击波
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{entityManager: em}
}

// Resize 根据新的视口尺寸重新定位所有居中锚定的元素
func (s *LayoutSystem) Resize(width, height int) {
	cx, cy := config.ViewportCenter(width, height)

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CenterAnchorComponent](s.entityManager) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		anchor, ok := ecs.GetComponent[*components.CenterAnchorComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos.X = cx + anchor.OffsetX
		pos.Y = cy + anchor.OffsetY
	}
}
