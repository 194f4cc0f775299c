package systems

import (
	"time"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

// fakeClock 可手动拨动的时钟
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

// Set 把时钟设置为起点之后 ms 毫秒
func (c *fakeClock) Set(base time.Time, ms int) {
	c.now = base.Add(time.Duration(ms) * time.Millisecond)
}

// fixedRandom 始终返回同一个值
type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

// sequenceRandom 依次返回预设值，用完后重复最后一个
type sequenceRandom struct {
	values []float64
	index  int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.index]
	if r.index < len(r.values)-1 {
		r.index++
	}
	return v
}

// newTestShockwave 创建一个处于休眠状态的冲击波实体
func newTestShockwave(em *ecs.EntityManager, extra ...any) (ecs.EntityID, *components.ShockwaveComponent) {
	id := em.CreateEntity()
	sw := &components.ShockwaveComponent{
		Speed:               200,
		Amplitude:           40,
		Wavelength:          50,
		Brightness:          1,
		Radius:              380,
		Time:                4.7,
		InactivityThreshold: 4.7,
	}
	ecs.AddComponent(em, id, sw)
	for _, comp := range extra {
		em.AddComponent(id, comp)
	}
	return id, sw
}
