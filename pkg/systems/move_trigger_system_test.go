package systems

import (
	"testing"
	"time"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
)

func newMoveGate() *components.MoveTriggerComponent {
	return &components.MoveTriggerComponent{Chance: 0.2, MinDelay: 1000 * time.Millisecond}
}

func TestMoveTriggerCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := newFakeClock()
	base := clock.Now()
	// 概率门总是通过
	system := NewMoveTriggerSystem(em, clock, fixedRandom(0))
	_, sw := newTestShockwave(em, newMoveGate())

	steps := []struct {
		ms       int
		wantFire bool
	}{
		{0, true},     // 冷却门初始打开
		{500, false},  // 500 - 0 <= 1000
		{1000, false}, // 恰好等于最小间隔也不触发
		{1200, true},  // 1200 - 0 > 1000
		{2100, false}, // 2100 - 1200 <= 1000
		{2201, true},
	}

	for _, step := range steps {
		clock.Set(base, step.ms)
		sw.Time = 3 // 置为播放中途，便于观察是否被重置
		fired := system.HandleMove(float64(step.ms), 1)

		if (fired == 1) != step.wantFire {
			t.Fatalf("t=%dms: fired=%d, want fire=%v", step.ms, fired, step.wantFire)
		}
		if step.wantFire && sw.Time != 0 {
			t.Fatalf("t=%dms: Time = %v, want 0", step.ms, sw.Time)
		}
		if !step.wantFire && sw.Time != 3 {
			t.Fatalf("t=%dms: rejected trigger changed Time to %v", step.ms, sw.Time)
		}
	}
}

func TestMoveTriggerProbabilityGate(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := newFakeClock()
	base := clock.Now()
	rng := &sequenceRandom{values: []float64{0.5, 0.2, 0.19999, 0.0}}
	system := NewMoveTriggerSystem(em, clock, rng)
	_, sw := newTestShockwave(em, newMoveGate())

	// 0.5 >= 0.2：拒绝
	clock.Set(base, 0)
	if system.HandleMove(1, 1) != 0 {
		t.Fatal("roll 0.5 must be rejected with chance 0.2")
	}
	// 0.2 >= 0.2：拒绝（严格小于才通过）
	clock.Set(base, 10)
	if system.HandleMove(1, 1) != 0 {
		t.Fatal("roll equal to chance must be rejected")
	}
	// 0.19999 < 0.2：通过
	clock.Set(base, 20)
	if system.HandleMove(5, 6) != 1 {
		t.Fatal("roll 0.19999 must pass with chance 0.2")
	}
	if sw.CenterX != 5 || sw.CenterY != 6 {
		t.Errorf("Center = (%v, %v), want (5, 6)", sw.CenterX, sw.CenterY)
	}
}

func TestMoveTriggerRejectedRollKeepsCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := newFakeClock()
	base := clock.Now()
	rng := &sequenceRandom{values: []float64{0.0, 0.9, 0.0}}
	system := NewMoveTriggerSystem(em, clock, rng)
	newTestShockwave(em, newMoveGate())

	clock.Set(base, 0)
	system.HandleMove(0, 0)

	// 概率失败时不能更新 LastFire
	clock.Set(base, 1500)
	system.HandleMove(0, 0)

	clock.Set(base, 1600)
	if system.HandleMove(0, 0) != 1 {
		t.Error("a rejected roll must not restart the cooldown")
	}
}

func TestMoveTriggerIndependentGates(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := newFakeClock()
	base := clock.Now()
	system := NewMoveTriggerSystem(em, clock, fixedRandom(0))

	gateA := newMoveGate()
	gateB := &components.MoveTriggerComponent{Chance: 1, MinDelay: 100 * time.Millisecond}
	_, a := newTestShockwave(em, gateA)
	_, b := newTestShockwave(em, gateB)

	clock.Set(base, 0)
	if n := system.HandleMove(1, 1); n != 2 {
		t.Fatalf("first move fired %d effects, want 2", n)
	}

	// 200ms 后只有 B 的冷却结束
	a.Time, b.Time = 2, 2
	clock.Set(base, 200)
	if n := system.HandleMove(9, 9); n != 1 {
		t.Fatalf("second move fired %d effects, want 1", n)
	}
	if a.Time != 2 {
		t.Error("gate A must still be cooling down")
	}
	if b.Time != 0 || b.CenterX != 9 {
		t.Error("gate B must fire independently of gate A")
	}
	if !gateA.LastFire.Equal(base) || !gateB.LastFire.Equal(base.Add(200*time.Millisecond)) {
		t.Errorf("LastFire A=%v B=%v", gateA.LastFire, gateB.LastFire)
	}
}

func TestMoveTriggerDoesNotTouchClickEffects(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMoveTriggerSystem(em, newFakeClock(), fixedRandom(0))
	_, primary := newTestShockwave(em, &components.ClickTriggerComponent{})

	if n := system.HandleMove(3, 3); n != 0 {
		t.Errorf("HandleMove fired %d effects, want 0", n)
	}
	if primary.Time != 4.7 {
		t.Error("click-triggered effect must not react to pointer moves")
	}
}

func TestMoveTriggerRetriggersMidAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := newFakeClock()
	base := clock.Now()
	system := NewMoveTriggerSystem(em, clock, fixedRandom(0))
	_, sw := newTestShockwave(em, newMoveGate())

	clock.Set(base, 0)
	system.HandleMove(1, 1)
	sw.Time = 1.5

	clock.Set(base, 1001)
	system.HandleMove(2, 2)
	if sw.Time != 0 || sw.CenterX != 2 {
		t.Errorf("retrigger mid-animation must restart, got Time=%v Center=(%v,%v)", sw.Time, sw.CenterX, sw.CenterY)
	}
}
