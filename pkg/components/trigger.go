package components

import "time"

// ClickTriggerComponent 标记由点击确定性触发的冲击波
// 每次点击都会在点击位置重新触发，没有限流
type ClickTriggerComponent struct{}

// MoveTriggerComponent 由指针移动概率触发的冲击波及其冷却门
//
// 冷却状态属于挂载它的那个效果，多个效果各自拥有独立的冷却门。
type MoveTriggerComponent struct {
	// Chance 每个移动事件的触发概率 [0, 1]
	Chance float64
	// MinDelay 两次成功触发之间必须超过的最小间隔
	MinDelay time.Duration
	// LastFire 上次成功触发的时间，零值表示从未触发（冷却门打开）
	LastFire time.Time
}

// CooldownElapsed 检查在 now 时刻冷却是否已结束
func (m *MoveTriggerComponent) CooldownElapsed(now time.Time) bool {
	if m.LastFire.IsZero() {
		return true
	}
	return now.Sub(m.LastFire) > m.MinDelay
}

// AutoRetriggerComponent 效果休眠后立即在视口内随机位置重新触发
// 启用后效果循环播放，不需要用户输入
type AutoRetriggerComponent struct{}
