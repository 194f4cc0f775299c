package scenes

import (
	"fmt"
	"image"
	"log"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/config"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/gonewx/aquashop/pkg/game"
	"github.com/gonewx/aquashop/pkg/utils"
)

// textureSeed 固定种子，保证每次启动画面一致
const textureSeed = 1099

// initBackground 创建居中的背景精灵
func (s *AquaScene) initBackground(rm *game.ResourceManager) {
	key := fmt.Sprintf("background:%dx%d", config.BackgroundTextureWidth, config.BackgroundTextureHeight)
	img := rm.LoadGeneratedImage(key, func() image.Image {
		return utils.GenerateBackground(config.BackgroundTextureWidth, config.BackgroundTextureHeight, textureSeed)
	})

	s.backgroundEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.backgroundEntity, &components.PositionComponent{})
	ecs.AddComponent(s.entityManager, s.backgroundEntity, &components.CenterAnchorComponent{})
	ecs.AddComponent(s.entityManager, s.backgroundEntity, &components.SpriteComponent{
		Image:   img,
		AnchorX: 0.5,
		AnchorY: 0.5,
	})
}

// initHeader 创建居中的标题文本
func (s *AquaScene) initHeader(rm *game.ResourceManager) error {
	face, err := rm.LoadFont(s.config.Header.FontSize)
	if err != nil {
		return fmt.Errorf("header font: %w", err)
	}

	dx, dy := s.config.ShadowOffset()
	s.headerEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.headerEntity, &components.PositionComponent{})
	ecs.AddComponent(s.entityManager, s.headerEntity, &components.CenterAnchorComponent{})
	ecs.AddComponent(s.entityManager, s.headerEntity, &components.TextComponent{
		Text:  s.config.Header.Text,
		Face:  face,
		Color: s.config.HeaderRGBA(),
		Shadow: &components.TextShadow{
			Color: s.config.ShadowRGBA(),
			DX:    dx,
			DY:    dy,
			Blur:  s.config.Header.Shadow.Blur,
		},
	})
	return nil
}

// initDisplacement 创建持续滚动的置换滤镜
func (s *AquaScene) initDisplacement(rm *game.ResourceManager) {
	d := s.config.Displacement
	key := fmt.Sprintf("displacement:%d", d.PatternSize)
	pattern := rm.LoadGeneratedImage(key, func() image.Image {
		return utils.GenerateDisplacementPattern(d.PatternSize, textureSeed)
	})

	s.displacementEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.displacementEntity, &components.DisplacementScrollComponent{
		Pattern:      pattern,
		Step:         d.Step,
		PatternWidth: float64(pattern.Bounds().Dx()),
		ScaleX:       d.ScaleX,
		ScaleY:       d.ScaleY,
	})
}

// initShockwaves 按配置创建冲击波，初始处于休眠状态，首次触发前不播放
func (s *AquaScene) initShockwaves() {
	threshold := s.config.Clock.InactivityThreshold

	for _, swc := range s.config.Shockwaves {
		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, &components.ShockwaveComponent{
			Speed:               swc.Speed,
			Amplitude:           swc.Amplitude,
			Wavelength:          swc.Wavelength,
			Brightness:          swc.Brightness,
			Radius:              swc.Radius,
			Time:                threshold,
			InactivityThreshold: threshold,
		})

		switch swc.Trigger {
		case config.TriggerClick:
			ecs.AddComponent(s.entityManager, id, &components.ClickTriggerComponent{})
		case config.TriggerMove:
			ecs.AddComponent(s.entityManager, id, &components.MoveTriggerComponent{
				Chance:   swc.MoveChance(),
				MinDelay: swc.MinDelay(),
			})
		}
		if s.autoRetrigger {
			ecs.AddComponent(s.entityManager, id, &components.AutoRetriggerComponent{})
		}

		s.shockwaveEntities = append(s.shockwaveEntities, id)
		log.Printf("[AquaScene] 冲击波 %q (entity %d): trigger=%s", swc.Name, id, swc.Trigger)
	}
}

// initFilterChain 创建场景容器：先置换滚动，再依次是每个冲击波
func (s *AquaScene) initFilterChain() {
	filters := make([]ecs.EntityID, 0, 1+len(s.shockwaveEntities))
	filters = append(filters, s.displacementEntity)
	filters = append(filters, s.shockwaveEntities...)

	s.containerEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.containerEntity, &components.FilterChainComponent{Filters: filters})
}
