package game

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gonewx/aquashop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageGenerator 生成 CPU 侧图像，用于程序生成的纹理
type ImageGenerator func() image.Image

// ResourceManager 集中管理图像、字体和着色器源码
//
// 所有资源只加载一次并缓存复用。非并发安全：只在游戏循环所在 goroutine 上使用。
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	shaderCache   map[string][]byte
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建空缓存的 ResourceManager
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		shaderCache:   make(map[string][]byte),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadGeneratedImage 返回 key 对应的图像，首次调用时通过 generate 生成
// 参数：
//   - key: 缓存键，如 "background:1920x1080"
//   - generate: 生成函数，只在缓存未命中时调用
func (rm *ResourceManager) LoadGeneratedImage(key string, generate ImageGenerator) *ebiten.Image {
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(generate())
	rm.imageCache[key] = img
	return img
}

// LoadShaderSource 从嵌入资源读取 Kage 源码
//
// 示例：
//
//	src, err := rm.LoadShaderSource("data/shaders/shockwave.kage")
func (rm *ResourceManager) LoadShaderSource(path string) ([]byte, error) {
	if src, ok := rm.shaderCache[path]; ok {
		return src, nil
	}
	src, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	rm.shaderCache[path] = src
	return src, nil
}

// LoadFont 返回指定字号的 Go Regular 字体
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
