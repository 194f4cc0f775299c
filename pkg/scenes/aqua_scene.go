package scenes

import (
	"log"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/config"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/gonewx/aquashop/pkg/game"
	"github.com/gonewx/aquashop/pkg/systems"
	"github.com/gonewx/aquashop/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneOptions 场景的可替换依赖，零值字段使用默认实现
type SceneOptions struct {
	Clock   utils.Clock
	Random  utils.RandomSource
	Pointer systems.PointerReader

	// AutoRetrigger 覆盖配置文件中的 autoRetrigger
	AutoRetrigger bool
}

// AquaScene 水族店标题场景：背景、标题和冲击波效果层
//
// 并发模型：Update、Resize、Draw 都由 Ebitengine 在同一个 goroutine 上依次调用，
// 每次调用都完整执行完毕才会进入下一次。冲击波时钟、圆心和冷却时间戳只在这些
// 调用中读写，因此不加锁。如果将来在其他 goroutine 上触发效果，必须为每个效果
// 加锁，或让单一 goroutine 独占实体管理器。
type AquaScene struct {
	entityManager *ecs.EntityManager
	config        *config.EffectConfig

	inputSystem         *systems.InputSystem
	clickTriggerSystem  *systems.ClickTriggerSystem
	moveTriggerSystem   *systems.MoveTriggerSystem
	autoRetriggerSystem *systems.AutoRetriggerSystem
	clockSystem         *systems.ShockwaveClockSystem
	scrollSystem        *systems.DisplacementScrollSystem
	layoutSystem        *systems.LayoutSystem
	renderSystem        *systems.FilterRenderSystem

	autoRetrigger bool

	containerEntity    ecs.EntityID
	backgroundEntity   ecs.EntityID
	headerEntity       ecs.EntityID
	displacementEntity ecs.EntityID
	shockwaveEntities  []ecs.EntityID

	// 首次收到视口尺寸时把冲击波圆心放到随机位置
	centersPlaced bool
}

// NewAquaScene 创建场景并编译着色器
func NewAquaScene(rm *game.ResourceManager, cfg *config.EffectConfig, opts SceneOptions) (*AquaScene, error) {
	scene, err := newAquaWorld(rm, cfg, opts)
	if err != nil {
		return nil, err
	}

	displaceSrc, err := rm.LoadShaderSource(config.DisplaceShaderPath)
	if err != nil {
		return nil, err
	}
	shockwaveSrc, err := rm.LoadShaderSource(config.ShockwaveShaderPath)
	if err != nil {
		return nil, err
	}
	scene.renderSystem, err = systems.NewFilterRenderSystem(scene.entityManager, displaceSrc, shockwaveSrc, cfg.BackgroundRGBA())
	if err != nil {
		return nil, err
	}

	log.Printf("[AquaScene] 场景已创建: %d 个冲击波, 有效时长 %.0f 帧, autoRetrigger=%v",
		len(scene.shockwaveEntities), cfg.ActiveFrames(), scene.autoRetrigger)
	return scene, nil
}

// newAquaWorld 创建实体和逻辑系统，不包含渲染
func newAquaWorld(rm *game.ResourceManager, cfg *config.EffectConfig, opts SceneOptions) (*AquaScene, error) {
	if opts.Clock == nil {
		opts.Clock = utils.SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = utils.NewRandomSource(0)
	}

	em := ecs.NewEntityManager()
	s := &AquaScene{
		entityManager:       em,
		config:              cfg,
		inputSystem:         systems.NewInputSystem(opts.Pointer),
		clickTriggerSystem:  systems.NewClickTriggerSystem(em),
		moveTriggerSystem:   systems.NewMoveTriggerSystem(em, opts.Clock, opts.Random),
		autoRetriggerSystem: systems.NewAutoRetriggerSystem(em, opts.Random),
		clockSystem:         systems.NewShockwaveClockSystem(em, cfg.Clock.Rate),
		scrollSystem:        systems.NewDisplacementScrollSystem(em),
		layoutSystem:        systems.NewLayoutSystem(em),
		autoRetrigger:       cfg.AutoRetrigger || opts.AutoRetrigger,
	}
	s.clockSystem.SetDormantObserver(func(id ecs.EntityID, sw *components.ShockwaveComponent) {
		log.Printf("[AquaScene] 冲击波 %d 进入休眠 (Time=%.3f)", id, sw.Time)
	})

	s.initBackground(rm)
	if err := s.initHeader(rm); err != nil {
		return nil, err
	}
	s.initDisplacement(rm)
	s.initShockwaves()
	s.initFilterChain()

	return s, nil
}

// Update 每个 tick 调用一次
// 顺序：输入事件 → 自动重触发 → 时钟推进 → 置换滚动
func (s *AquaScene) Update(deltaTime float64) {
	for _, ev := range s.inputSystem.Poll() {
		switch ev.Kind {
		case systems.PointerClick:
			if n := s.clickTriggerSystem.HandleClick(ev.X, ev.Y); n > 0 {
				log.Printf("[AquaScene] 点击触发 %d 个冲击波 @ (%.0f, %.0f)", n, ev.X, ev.Y)
			}
		case systems.PointerMove:
			if n := s.moveTriggerSystem.HandleMove(ev.X, ev.Y); n > 0 {
				log.Printf("[AquaScene] 移动触发 %d 个冲击波 @ (%.0f, %.0f)", n, ev.X, ev.Y)
			}
		}
	}

	if s.autoRetrigger {
		s.autoRetriggerSystem.Update()
	}

	s.clockSystem.Update(config.FrameDelta(deltaTime))
	s.scrollSystem.Update()
}

// Resize 实现 game.Resizable
func (s *AquaScene) Resize(width, height int) {
	s.layoutSystem.Resize(width, height)
	s.autoRetriggerSystem.SetViewport(width, height)

	if !s.centersPlaced {
		s.placeInitialCenters()
		s.centersPlaced = true
	}
}

// Draw 绘制场景
func (s *AquaScene) Draw(screen *ebiten.Image) {
	if s.renderSystem == nil {
		screen.Fill(s.config.BackgroundRGBA())
		return
	}
	s.renderSystem.Draw(screen, s.containerEntity)
}

// Shockwave 返回第 i 个冲击波组件（按配置顺序）
func (s *AquaScene) Shockwave(i int) (*components.ShockwaveComponent, bool) {
	if i < 0 || i >= len(s.shockwaveEntities) {
		return nil, false
	}
	return ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, s.shockwaveEntities[i])
}

// placeInitialCenters 把冲击波圆心放到视口内随机位置，不触发
func (s *AquaScene) placeInitialCenters() {
	for _, id := range s.shockwaveEntities {
		sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id)
		if !ok {
			continue
		}
		sw.CenterX, sw.CenterY = s.autoRetriggerSystem.RandomPoint()
	}
}
