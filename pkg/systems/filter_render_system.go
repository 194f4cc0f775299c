package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/aquashop/pkg/components"
	"github.com/gonewx/aquashop/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FilterRenderSystem 绘制场景容器并按顺序应用滤镜链
//
// 渲染只读取组件字段：冲击波的圆心、时钟和形状参数每帧被采样为着色器 uniform，
// 本系统从不修改它们。
//
// 绘制流程：
//  1. 背景色 + 精灵 + 文本 → scene
//  2. 依次应用 FilterChainComponent 中的滤镜，在两张离屏图之间来回绘制
//  3. 结果绘制到 screen
type FilterRenderSystem struct {
	entityManager *ecs.EntityManager

	displaceShader  *ebiten.Shader
	shockwaveShader *ebiten.Shader
	background      color.Color

	width, height int
	scene         *ebiten.Image
	buffers       [2]*ebiten.Image
	displaceMap   *ebiten.Image
}

// NewFilterRenderSystem 编译着色器并创建渲染系统
// 参数：
//   - em: 实体管理器
//   - displaceSrc: 置换着色器 Kage 源码
//   - shockwaveSrc: 冲击波着色器 Kage 源码
//   - background: 清屏颜色
func NewFilterRenderSystem(em *ecs.EntityManager, displaceSrc, shockwaveSrc []byte, background color.Color) (*FilterRenderSystem, error) {
	displace, err := ebiten.NewShader(displaceSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile displacement shader: %w", err)
	}
	shockwave, err := ebiten.NewShader(shockwaveSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shockwave shader: %w", err)
	}

	return &FilterRenderSystem{
		entityManager:   em,
		displaceShader:  displace,
		shockwaveShader: shockwave,
		background:      background,
	}, nil
}

// Draw 绘制 chainEntity 所代表的场景容器
func (s *FilterRenderSystem) Draw(screen *ebiten.Image, chainEntity ecs.EntityID) {
	bounds := screen.Bounds()
	s.ensureBuffers(bounds.Dx(), bounds.Dy())

	s.scene.Fill(s.background)
	s.drawSprites(s.scene)
	s.drawTexts(s.scene)

	current := s.scene
	if chain, ok := ecs.GetComponent[*components.FilterChainComponent](s.entityManager, chainEntity); ok {
		for _, id := range chain.Filters {
			current = s.applyFilter(current, id)
		}
	}

	screen.DrawImage(current, nil)
}

// applyFilter 应用单个滤镜，返回结果图像；休眠的冲击波直接跳过
func (s *FilterRenderSystem) applyFilter(src *ebiten.Image, id ecs.EntityID) *ebiten.Image {
	if scroll, ok := ecs.GetComponent[*components.DisplacementScrollComponent](s.entityManager, id); ok {
		if scroll.Pattern == nil {
			return src
		}
		s.tileDisplacementMap(scroll)
		dst := s.nextBuffer(src)
		dst.Clear()
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = src
		op.Images[1] = s.displaceMap
		op.Uniforms = map[string]any{
			"Scale": []float32{float32(scroll.ScaleX), float32(scroll.ScaleY)},
		}
		dst.DrawRectShader(s.width, s.height, s.displaceShader, op)
		return dst
	}

	if sw, ok := ecs.GetComponent[*components.ShockwaveComponent](s.entityManager, id); ok {
		if sw.IsDormant() {
			return src
		}
		dst := s.nextBuffer(src)
		dst.Clear()
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = src
		op.Uniforms = shockwaveUniforms(sw)
		dst.DrawRectShader(s.width, s.height, s.shockwaveShader, op)
		return dst
	}

	return src
}

// shockwaveUniforms 把组件字段转换为着色器 uniform
func shockwaveUniforms(sw *components.ShockwaveComponent) map[string]any {
	return map[string]any{
		"Center":     []float32{float32(sw.CenterX), float32(sw.CenterY)},
		"Time":       float32(sw.Time),
		"Speed":      float32(sw.Speed),
		"Amplitude":  float32(sw.Amplitude),
		"Wavelength": float32(sw.Wavelength),
		"Brightness": float32(sw.Brightness),
		"Radius":     float32(sw.Radius),
	}
}

// tileDisplacementMap 按当前滚动偏移把置换贴图平铺到视口大小
// 着色器要求所有源图与目标矩形同尺寸，因此不能直接把贴图传入
func (s *FilterRenderSystem) tileDisplacementMap(scroll *components.DisplacementScrollComponent) {
	s.displaceMap.Clear()
	b := scroll.Pattern.Bounds()
	for _, origin := range tileOrigins(scroll.OffsetX, float64(b.Dx()), float64(b.Dy()), float64(s.width), float64(s.height)) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(origin[0], origin[1])
		s.displaceMap.DrawImage(scroll.Pattern, op)
	}
}

// tileOrigins 计算覆盖 width x height 区域所需的贴图左上角坐标
// 贴图整体向右偏移 offsetX，左侧用前一块补齐
func tileOrigins(offsetX, tileWidth, tileHeight, width, height float64) [][2]float64 {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil
	}

	startX := offsetX
	for startX > 0 {
		startX -= tileWidth
	}

	var origins [][2]float64
	for y := 0.0; y < height; y += tileHeight {
		for x := startX; x < width; x += tileWidth {
			origins = append(origins, [2]float64{x, y})
		}
	}
	return origins
}

func (s *FilterRenderSystem) drawSprites(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}

		b := sprite.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())*sprite.AnchorX, -float64(b.Dy())*sprite.AnchorY)
		op.GeoM.Translate(pos.X, pos.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(sprite.Image, op)
	}
}

func (s *FilterRenderSystem) drawTexts(dst *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.TextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if label.Face == nil {
			continue
		}

		if sh := label.Shadow; sh != nil {
			// 以若干次半透明偏移绘制近似模糊
			passes := sh.Blur + 1
			for i := 0; i < passes; i++ {
				spread := float64(i) - float64(sh.Blur)/2
				drawCenteredText(dst, label.Text, label.Face, pos.X+sh.DX+spread, pos.Y+sh.DY+spread, sh.Color, 1/float32(passes))
			}
		}
		drawCenteredText(dst, label.Text, label.Face, pos.X, pos.Y, label.Color, 1)
	}
}

func drawCenteredText(dst *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, str, face, op)
}

// nextBuffer 返回一张与 src 不同的离屏图
func (s *FilterRenderSystem) nextBuffer(src *ebiten.Image) *ebiten.Image {
	if src == s.buffers[0] {
		return s.buffers[1]
	}
	return s.buffers[0]
}

// ensureBuffers 视口尺寸变化时重建离屏图
func (s *FilterRenderSystem) ensureBuffers(width, height int) {
	if s.scene != nil && s.width == width && s.height == height {
		return
	}
	for _, img := range []*ebiten.Image{s.scene, s.buffers[0], s.buffers[1], s.displaceMap} {
		if img != nil {
			img.Deallocate()
		}
	}

	s.width, s.height = width, height
	s.scene = ebiten.NewImage(width, height)
	s.buffers[0] = ebiten.NewImage(width, height)
	s.buffers[1] = ebiten.NewImage(width, height)
	s.displaceMap = ebiten.NewImage(width, height)
}
