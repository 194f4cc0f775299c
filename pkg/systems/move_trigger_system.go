package systems

import (
	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/gonewx/aquashop/pkg/utils"
)

// MoveTriggerSystem 指针移动概率触发，带冷却门
//
// 移动事件频率极高（每移动一个像素一次）：
//   - 概率门限制平均触发频率
//   - 冷却门限制最坏情况下的连续触发
//
// 两道门同时通过才触发。被拒绝是正常策略行为，不记录日志。
type MoveTriggerSystem struct {
	entityManager *ecs.EntityManager
	clock         utils.Clock
	random        utils.RandomSource
}

// NewMoveTriggerSystem 创建移动触发系统
// 参数：
//   - em: 实体管理器
//   - clock: 墙钟（冷却计算）
//   - random: [0, 1) 均匀随机数来源
func NewMoveTriggerSystem(em *ecs.EntityManager, clock utils.Clock, random utils.RandomSource) *MoveTriggerSystem {
	return &MoveTriggerSystem{
		entityManager: em,
		clock:         clock,
		random:        random,
	}
}

// HandleMove 处理一次指针移动，返回触发的效果数量
func (s *MoveTriggerSystem) HandleMove(x, y float64) int {
	now := s.clock.Now()
	fired := 0

	for _, id := range ecs.GetEntitiesWith2[*components.ShockwaveComponent, *components.MoveTriggerComponent](s.entityManager) {
		sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id)
		if !ok {
			continue
		}
		gate, ok := ecs.GetComponent[*components.MoveTriggerComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 每个效果独立抽样
		roll := s.random.Float64()
		if roll >= gate.Chance || !gate.CooldownElapsed(now) {
			continue
		}

		gate.LastFire = now
		FireShockwave(sw, x, y)
		fired++
	}
	return fired
}
