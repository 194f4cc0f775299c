package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

// DormantObserver 效果从 Active 进入 Dormant 时的回调
type DormantObserver func(id ecs.EntityID, sw *components.ShockwaveComponent)

// ShockwaveClockSystem 每帧推进所有冲击波的时钟
//
// 每个效果独立推进：
//   - Active：Time += frameDelta * rate
//   - Dormant：Time 保持不变
//
// 不把 Time 截断到阈值，跨越阈值那一帧允许略微超出。
type ShockwaveClockSystem struct {
	entityManager *ecs.EntityManager
	rate          float64
	onDormant     DormantObserver
}

// NewShockwaveClockSystem 创建时钟推进系统
// 参数：
//   - em: 实体管理器
//   - rate: 每帧时钟增量系数（参考值 0.05）
func NewShockwaveClockSystem(em *ecs.EntityManager, rate float64) *ShockwaveClockSystem {
	return &ShockwaveClockSystem{
		entityManager: em,
		rate:          rate,
	}
}

// SetDormantObserver 设置休眠回调，nil 表示不通知
func (s *ShockwaveClockSystem) SetDormantObserver(observer DormantObserver) {
	s.onDormant = observer
}

// Update 推进所有冲击波时钟
// 参数：
//   - frameDelta: 帧归一化的时间增量（60Hz 下每帧为 1.0），不是毫秒
func (s *ShockwaveClockSystem) Update(frameDelta float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ShockwaveComponent](s.entityManager) {
		sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if AdvanceShockwave(sw, frameDelta*s.rate) && s.onDormant != nil {
			s.onDormant(id, sw)
		}
	}
}

// AdvanceShockwave 按 step 推进单个冲击波的时钟
// 返回本次推进是否使效果进入休眠（Active → Dormant）
func AdvanceShockwave(sw *components.ShockwaveComponent, step float64) bool {
	if sw.IsDormant() {
		return false
	}
	sw.Time += step
	return sw.IsDormant()
}
