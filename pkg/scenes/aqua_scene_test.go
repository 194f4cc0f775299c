package scenes

import (
	"math"
	"testing"
	"time"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/config"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/gonewx/aquashop/pkg/game"
	"github.com/gonewx/aquashop/pkg/utils"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

// scriptedPointer 每次读取返回下一帧的指针状态，用完后保持最后一帧
type scriptedPointer struct {
	frames []utils.PointerSnapshot
	index  int
}

func (p *scriptedPointer) read() utils.PointerSnapshot {
	if len(p.frames) == 0 {
		return utils.PointerSnapshot{}
	}
	f := p.frames[p.index]
	if p.index < len(p.frames)-1 {
		p.index++
	}
	return f
}

func newTestScene(t *testing.T, pointer *scriptedPointer, random float64, auto bool) (*AquaScene, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	scene, err := newAquaWorld(game.NewResourceManager(), config.DefaultEffectConfig(), SceneOptions{
		Clock:         clock,
		Random:        fixedRandom(random),
		Pointer:       pointer.read,
		AutoRetrigger: auto,
	})
	if err != nil {
		t.Fatalf("newAquaWorld failed: %v", err)
	}
	return scene, clock
}

const tick = 1.0 / 60.0

func TestAquaSceneStartsDormant(t *testing.T) {
	scene, _ := newTestScene(t, &scriptedPointer{}, 0.9, false)

	for i := 0; i < 2; i++ {
		sw, ok := scene.Shockwave(i)
		if !ok {
			t.Fatalf("shockwave %d missing", i)
		}
		if !sw.IsDormant() {
			t.Errorf("shockwave %d should start dormant, Time=%v", i, sw.Time)
		}
	}
	if _, ok := scene.Shockwave(2); ok {
		t.Error("default config has only two shockwaves")
	}

	// 没有输入时时钟保持不动
	scene.Update(tick)
	sw, _ := scene.Shockwave(0)
	if sw.Time != config.DefaultInactivityThreshold {
		t.Errorf("dormant clock moved: %v", sw.Time)
	}
}

func TestAquaSceneClickFiresPrimaryOnly(t *testing.T) {
	pointer := &scriptedPointer{frames: []utils.PointerSnapshot{
		{X: 300, Y: 200, JustPressed: true},
	}}
	scene, _ := newTestScene(t, pointer, 0.9, false)

	scene.Update(tick)

	primary, _ := scene.Shockwave(0)
	if primary.CenterX != 300 || primary.CenterY != 200 {
		t.Errorf("primary center = (%v, %v), want (300, 200)", primary.CenterX, primary.CenterY)
	}
	// 触发置 0 后同一 tick 内推进一帧
	if math.Abs(primary.Time-config.DefaultClockRate) > 1e-9 {
		t.Errorf("primary Time = %v, want %v", primary.Time, config.DefaultClockRate)
	}

	secondary, _ := scene.Shockwave(1)
	if !secondary.IsDormant() {
		t.Error("click must not fire the move-triggered shockwave")
	}
}

func TestAquaSceneMoveRespectsCooldown(t *testing.T) {
	pointer := &scriptedPointer{frames: []utils.PointerSnapshot{
		{X: 10, Y: 10},
		{X: 20, Y: 10},
		{X: 30, Y: 10},
		{X: 40, Y: 10},
	}}
	scene, clock := newTestScene(t, pointer, 0.1, false)
	base := clock.now

	// 第一帧只记录位置
	scene.Update(tick)
	secondary, _ := scene.Shockwave(1)
	if !secondary.IsDormant() {
		t.Fatal("first tick has no previous position, nothing should fire")
	}

	scene.Update(tick)
	if secondary.CenterX != 20 {
		t.Fatalf("move should fire at x=20, center=%v", secondary.CenterX)
	}

	clock.now = base.Add(500 * time.Millisecond)
	scene.Update(tick)
	if secondary.CenterX != 20 {
		t.Errorf("fired during cooldown, center=%v", secondary.CenterX)
	}

	clock.now = base.Add(1200 * time.Millisecond)
	scene.Update(tick)
	if secondary.CenterX != 40 {
		t.Errorf("cooldown elapsed, expected fire at x=40, center=%v", secondary.CenterX)
	}

	primary, _ := scene.Shockwave(0)
	if !primary.IsDormant() {
		t.Error("pointer motion must not fire the click-triggered shockwave")
	}
}

func TestAquaSceneMoveRejectedByChance(t *testing.T) {
	pointer := &scriptedPointer{frames: []utils.PointerSnapshot{
		{X: 10, Y: 10},
		{X: 20, Y: 10},
	}}
	scene, _ := newTestScene(t, pointer, 0.5, false)

	scene.Update(tick)
	scene.Update(tick)

	secondary, _ := scene.Shockwave(1)
	if !secondary.IsDormant() {
		t.Error("roll 0.5 >= chance 0.2 should not fire")
	}
}

func TestAquaSceneEffectGoesDormantAfterActiveFrames(t *testing.T) {
	pointer := &scriptedPointer{frames: []utils.PointerSnapshot{
		{X: 100, Y: 100, JustPressed: true},
		{X: 100, Y: 100},
	}}
	scene, _ := newTestScene(t, pointer, 0.9, false)
	frames := int(config.DefaultEffectConfig().ActiveFrames())

	for i := 0; i < frames+2; i++ {
		scene.Update(tick)
	}

	primary, _ := scene.Shockwave(0)
	if !primary.IsDormant() {
		t.Errorf("primary should be dormant after %d frames, Time=%v", frames+2, primary.Time)
	}
	frozen := primary.Time
	scene.Update(tick)
	if primary.Time != frozen {
		t.Errorf("dormant clock moved from %v to %v", frozen, primary.Time)
	}
}

func TestAquaSceneResizePlacesCentersOnce(t *testing.T) {
	scene, _ := newTestScene(t, &scriptedPointer{}, 0.25, false)

	scene.Resize(800, 600)
	sw, _ := scene.Shockwave(0)
	if sw.CenterX != 200 || sw.CenterY != 150 {
		t.Errorf("initial center = (%v, %v), want (200, 150)", sw.CenterX, sw.CenterY)
	}
	if !sw.IsDormant() {
		t.Error("placing the initial center must not fire the effect")
	}

	scene.Resize(1600, 1200)
	if sw.CenterX != 200 || sw.CenterY != 150 {
		t.Error("later resizes must not move effect centers")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](scene.entityManager, scene.headerEntity)
	if !ok {
		t.Fatal("header has no position")
	}
	if pos.X != 800 || pos.Y != 600 {
		t.Errorf("header position = (%v, %v), want viewport center (800, 600)", pos.X, pos.Y)
	}
}

func TestAquaSceneAutoRetrigger(t *testing.T) {
	scene, _ := newTestScene(t, &scriptedPointer{}, 0.5, true)
	scene.Resize(1000, 500)

	scene.Update(tick)

	for i := 0; i < 2; i++ {
		sw, _ := scene.Shockwave(i)
		if sw.IsDormant() {
			t.Errorf("shockwave %d should be refired by auto retrigger", i)
		}
		if sw.CenterX != 500 || sw.CenterY != 250 {
			t.Errorf("shockwave %d center = (%v, %v), want (500, 250)", i, sw.CenterX, sw.CenterY)
		}
	}
}

func TestAquaSceneFilterChainOrder(t *testing.T) {
	scene, _ := newTestScene(t, &scriptedPointer{}, 0.5, false)

	chain, ok := ecs.GetComponent[*components.FilterChainComponent](scene.entityManager, scene.containerEntity)
	if !ok {
		t.Fatal("container has no filter chain")
	}
	want := append([]ecs.EntityID{scene.displacementEntity}, scene.shockwaveEntities...)
	if len(chain.Filters) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(chain.Filters), len(want))
	}
	for i := range want {
		if chain.Filters[i] != want[i] {
			t.Errorf("filter %d = %d, want %d", i, chain.Filters[i], want[i])
		}
	}
}
