package systems

import (
	"testing"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

func TestAutoRetriggerFiresDormantEffects(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAutoRetriggerSystem(em, &sequenceRandom{values: []float64{0.25, 0.5}})
	system.SetViewport(800, 600)
	// Time 恰好等于阈值也算休眠
	_, sw := newTestShockwave(em, &components.AutoRetriggerComponent{})

	if n := system.Update(); n != 1 {
		t.Fatalf("Update fired %d effects, want 1", n)
	}
	if sw.Time != 0 || sw.CenterX != 200 || sw.CenterY != 300 {
		t.Errorf("got Time=%v Center=(%v,%v), want 0 (200,300)", sw.Time, sw.CenterX, sw.CenterY)
	}
}

func TestAutoRetriggerIgnoresActiveEffects(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAutoRetriggerSystem(em, fixedRandom(0.5))
	system.SetViewport(800, 600)
	_, sw := newTestShockwave(em, &components.AutoRetriggerComponent{})
	sw.Time = 2

	if n := system.Update(); n != 0 {
		t.Errorf("Update fired %d effects, want 0", n)
	}
	if sw.Time != 2 {
		t.Errorf("active effect Time changed to %v", sw.Time)
	}
}

func TestAutoRetriggerRequiresComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAutoRetriggerSystem(em, fixedRandom(0.5))
	system.SetViewport(800, 600)
	_, sw := newTestShockwave(em, &components.ClickTriggerComponent{})

	system.Update()
	if !sw.IsDormant() {
		t.Error("effects without AutoRetriggerComponent must stay dormant")
	}
}

func TestAutoRetriggerLoop(t *testing.T) {
	em := ecs.NewEntityManager()
	auto := NewAutoRetriggerSystem(em, fixedRandom(0.1))
	auto.SetViewport(1000, 1000)
	clock := NewShockwaveClockSystem(em, 0.05)
	_, sw := newTestShockwave(em, &components.AutoRetriggerComponent{})

	fires := 0
	for frame := 0; frame < 300; frame++ {
		fires += auto.Update()
		clock.Update(1)
	}
	// 每轮约 94 帧
	if fires < 3 || fires > 4 {
		t.Errorf("fired %d times in 300 frames, want 3 or 4", fires)
	}
	if sw.CenterX != 100 || sw.CenterY != 100 {
		t.Errorf("Center = (%v, %v), want (100, 100)", sw.CenterX, sw.CenterY)
	}
}
