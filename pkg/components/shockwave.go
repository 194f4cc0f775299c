package components

// EffectState 冲击波效果的生命周期状态
type EffectState int

const (
	// EffectActive 时钟低于不活跃阈值，效果正在播放
	EffectActive EffectState = iota
	// EffectDormant 时钟已达到或超过阈值，时钟冻结，画面上不可见
	EffectDormant
)

// String 返回状态名，用于日志
func (s EffectState) String() string {
	switch s {
	case EffectActive:
		return "Active"
	case EffectDormant:
		return "Dormant"
	default:
		return "Unknown"
	}
}

// ShockwaveComponent 冲击波效果组件
//
// 形状参数（Speed ~ Radius）只在构造时写入，之后仅由渲染系统读取并原样
// 传给着色器。CenterX/CenterY 与 Time 是可变部分：
//   - 时钟推进系统每帧增加 Time，直到达到 InactivityThreshold
//   - 触发器把 Time 重置为 0 并移动中心点，这是唯一会让 Time 变小的操作
//
// 字段不做范围校验，负半径等属于配置问题。
type ShockwaveComponent struct {
	// CenterX, CenterY 冲击波圆心（视口坐标）
	CenterX float64
	CenterY float64

	Speed      float64 // 波前扩散速度（像素/时间单位）
	Amplitude  float64 // 扭曲幅度
	Wavelength float64 // 波长
	Brightness float64 // 波前亮度系数，1.0 表示不改变亮度
	Radius     float64 // 最大半径，-1 表示不限制

	// Time 自上次触发以来经过的伪时间，始终 >= 0
	Time float64

	// InactivityThreshold 不活跃阈值，Time >= 该值时效果进入休眠
	InactivityThreshold float64
}

// State 根据时钟返回当前状态
func (s *ShockwaveComponent) State() EffectState {
	if s.Time >= s.InactivityThreshold {
		return EffectDormant
	}
	return EffectActive
}

// IsDormant 效果是否处于休眠状态
func (s *ShockwaveComponent) IsDormant() bool {
	return s.State() == EffectDormant
}
