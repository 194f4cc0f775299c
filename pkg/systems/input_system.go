package systems

import "github.com/gonewx/aquashop/pkg/utils"

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerClick 点击/触摸按下
	PointerClick PointerEventKind = iota
	// PointerMove 指针位置变化
	PointerMove
)

// PointerEvent 一次指针事件（视口坐标）
type PointerEvent struct {
	Kind PointerEventKind
	X, Y float64
}

// PointerReader 读取当前帧的指针状态
type PointerReader func() utils.PointerSnapshot

// InputSystem 把逐帧轮询的指针状态转换为离散事件
//
// Ebitengine 只能轮询，没有原生的 mousemove：位置与上一帧不同时产生 PointerMove。
// 同一帧内先产生 PointerMove 再产生 PointerClick，与浏览器中按下前先收到移动一致。
type InputSystem struct {
	read PointerReader

	lastX, lastY int
	hasLast      bool

	events []PointerEvent
}

// NewInputSystem 创建输入系统，reader 为 nil 时使用 utils.ReadPointer
func NewInputSystem(reader PointerReader) *InputSystem {
	if reader == nil {
		reader = utils.ReadPointer
	}
	return &InputSystem{read: reader}
}

// Poll 读取本帧输入并返回事件列表
// 返回的切片在下一次 Poll 之前有效
func (s *InputSystem) Poll() []PointerEvent {
	s.events = s.events[:0]
	p := s.read()

	if s.hasLast && (p.X != s.lastX || p.Y != s.lastY) {
		s.events = append(s.events, PointerEvent{Kind: PointerMove, X: float64(p.X), Y: float64(p.Y)})
	}
	s.lastX, s.lastY = p.X, p.Y
	s.hasLast = true

	if p.JustPressed {
		s.events = append(s.events, PointerEvent{Kind: PointerClick, X: float64(p.X), Y: float64(p.Y)})
	}
	return s.events
}
