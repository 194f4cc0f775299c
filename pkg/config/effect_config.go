package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/gonewx/aquashop/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 触发方式
const (
	TriggerClick = "click" // 点击确定性触发
	TriggerMove  = "move"  // 指针移动概率触发（带冷却）
	TriggerNone  = "none"  // 不响应输入（只能通过 autoRetrigger 播放）
)

// 参考行为使用的默认常量
const (
	DefaultClockRate           = 0.05
	DefaultInactivityThreshold = 4.7
	DefaultMoveChance          = 0.2
	DefaultMoveMinDelayMs      = 1000
)

// ErrEmptyEffectConfig 配置文档为空（只有空白或注释）
var ErrEmptyEffectConfig = errors.New("effect config document is empty")

// EffectConfig 效果层的完整配置（data/effects.yaml）
type EffectConfig struct {
	Window       WindowConfig       `yaml:"window"`
	Clock        ClockConfig        `yaml:"clock"`
	Header       HeaderConfig       `yaml:"header"`
	Displacement DisplacementConfig `yaml:"displacement"`
	Shockwaves   []ShockwaveConfig  `yaml:"shockwaves"`

	// AutoRetrigger 为 true 时，所有冲击波休眠后立即在随机位置重新播放
	AutoRetrigger bool `yaml:"autoRetrigger"`
}

// WindowConfig 窗口与背景
type WindowConfig struct {
	Width           int    `yaml:"width"`           // 初始窗口宽度
	Height          int    `yaml:"height"`          // 初始窗口高度
	Title           string `yaml:"title"`           // 窗口标题
	BackgroundColor string `yaml:"backgroundColor"` // 清屏颜色，十六进制，如 "#1099bb"
}

// ClockConfig 冲击波时钟参数
//
// 有效播放时长（帧单位）= InactivityThreshold / Rate，参考值为 94。
type ClockConfig struct {
	Rate                float64 `yaml:"rate"`                // 每帧时钟增量系数
	InactivityThreshold float64 `yaml:"inactivityThreshold"` // 休眠阈值
}

// HeaderConfig 标题文本
type HeaderConfig struct {
	Text     string  `yaml:"text"`
	FontSize float64 `yaml:"fontSize"`
	Color    string  `yaml:"color"`

	Shadow ShadowConfig `yaml:"shadow"`
}

// ShadowConfig 标题投影
type ShadowConfig struct {
	Color    string  `yaml:"color"`
	Distance float64 `yaml:"distance"` // 投影距离（像素）
	Angle    float64 `yaml:"angle"`    // 投影方向（弧度），π/2 表示正下方
	Blur     int     `yaml:"blur"`
}

// DisplacementConfig 置换滚动滤镜
type DisplacementConfig struct {
	ScaleX      float64 `yaml:"scaleX"`
	ScaleY      float64 `yaml:"scaleY"`
	Step        float64 `yaml:"step"`        // 每帧滚动像素
	PatternSize int     `yaml:"patternSize"` // 生成的置换贴图边长
}

// ShockwaveConfig 单个冲击波的形状参数和触发方式
type ShockwaveConfig struct {
	Name    string `yaml:"name"`
	Trigger string `yaml:"trigger"` // click / move / none

	Speed      float64 `yaml:"speed"`
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	Brightness float64 `yaml:"brightness"`
	Radius     float64 `yaml:"radius"`

	// 以下字段仅在 trigger 为 move 时使用
	// 指针区分"未设置"和显式的 0：chance: 0 表示永不触发，minDelayMs: 0 表示没有冷却
	Chance     *float64 `yaml:"chance"`
	MinDelayMs *int     `yaml:"minDelayMs"`
}

// MoveChance 返回每个移动事件的触发概率，未设置时为 0
func (s ShockwaveConfig) MoveChance() float64 {
	if s.Chance == nil {
		return 0
	}
	return *s.Chance
}

// MinDelay 返回冷却间隔，未设置时为 0
func (s ShockwaveConfig) MinDelay() time.Duration {
	if s.MinDelayMs == nil {
		return 0
	}
	return time.Duration(*s.MinDelayMs) * time.Millisecond
}

// ActiveFrames 返回一次触发后效果保持活跃的帧数（frameDelta = 1 时）
func (c *EffectConfig) ActiveFrames() float64 {
	return c.Clock.InactivityThreshold / c.Clock.Rate
}

// BackgroundRGBA 解析背景颜色
func (c *EffectConfig) BackgroundRGBA() color.Color {
	return mustParseColor(c.Window.BackgroundColor)
}

// HeaderRGBA 解析标题颜色
func (c *EffectConfig) HeaderRGBA() color.Color {
	return mustParseColor(c.Header.Color)
}

// ShadowRGBA 解析投影颜色
func (c *EffectConfig) ShadowRGBA() color.Color {
	return mustParseColor(c.Header.Shadow.Color)
}

// ShadowOffset 根据距离和角度计算投影偏移
func (c *EffectConfig) ShadowOffset() (dx, dy float64) {
	s := c.Header.Shadow
	return math.Cos(s.Angle) * s.Distance, math.Sin(s.Angle) * s.Distance
}

// DefaultEffectConfig 返回与参考行为一致的默认配置
func DefaultEffectConfig() *EffectConfig {
	cfg := &EffectConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadEffectConfig 从 YAML 文件加载效果配置
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*EffectConfig - 应用默认值并通过校验的配置
//	error - 读取、解析或校验失败
func LoadEffectConfig(path string) (*EffectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config file %s: %w", path, err)
	}
	cfg, err := ParseEffectConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseEffectConfig 解析 YAML 数据，缺省字段使用默认值
func ParseEffectConfig(data []byte) (*EffectConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse effect config YAML: %w", err)
	}
	// 空文档通常是编辑器保存到一半的文件，不能当作"全部使用默认值"
	if isEmptyDocument(&doc) {
		return nil, ErrEmptyEffectConfig
	}

	var cfg EffectConfig
	if err := doc.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effect config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateEffectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid effect config: %w", err)
	}
	return &cfg, nil
}

func isEmptyDocument(doc *yaml.Node) bool {
	if len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return len(doc.Content) == 1 && root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null"
}

// applyDefaults 为缺失字段填充默认值
// 0 被视为"未设置"，显式关闭某项只能通过其他字段（如 trigger: none）
func applyDefaults(cfg *EffectConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = DefaultWindowTitle
	}
	if cfg.Window.BackgroundColor == "" {
		cfg.Window.BackgroundColor = DefaultBackgroundColor
	}

	if cfg.Clock.Rate == 0 {
		cfg.Clock.Rate = DefaultClockRate
	}
	if cfg.Clock.InactivityThreshold == 0 {
		cfg.Clock.InactivityThreshold = DefaultInactivityThreshold
	}

	if cfg.Header.Text == "" {
		cfg.Header.Text = DefaultHeaderText
	}
	if cfg.Header.FontSize == 0 {
		cfg.Header.FontSize = DefaultHeaderFontSize
	}
	if cfg.Header.Color == "" {
		cfg.Header.Color = "#ffffff"
	}
	if cfg.Header.Shadow.Color == "" {
		cfg.Header.Shadow.Color = "#000000"
	}
	if cfg.Header.Shadow.Distance == 0 {
		cfg.Header.Shadow.Distance = 2
	}
	if cfg.Header.Shadow.Angle == 0 {
		cfg.Header.Shadow.Angle = math.Pi / 2
	}
	if cfg.Header.Shadow.Blur == 0 {
		cfg.Header.Shadow.Blur = 3
	}

	if cfg.Displacement.ScaleX == 0 {
		cfg.Displacement.ScaleX = 20
	}
	if cfg.Displacement.ScaleY == 0 {
		cfg.Displacement.ScaleY = 20
	}
	if cfg.Displacement.Step == 0 {
		cfg.Displacement.Step = 1
	}
	if cfg.Displacement.PatternSize == 0 {
		cfg.Displacement.PatternSize = DefaultPatternSize
	}

	if len(cfg.Shockwaves) == 0 {
		cfg.Shockwaves = []ShockwaveConfig{
			{Name: "click", Trigger: TriggerClick},
			{Name: "move", Trigger: TriggerMove},
		}
	}
	for i := range cfg.Shockwaves {
		applyShockwaveDefaults(&cfg.Shockwaves[i])
	}
}

func applyShockwaveDefaults(s *ShockwaveConfig) {
	if s.Trigger == "" {
		s.Trigger = TriggerNone
	}
	if s.Speed == 0 {
		s.Speed = 200
	}
	if s.Amplitude == 0 {
		s.Amplitude = 40
	}
	if s.Wavelength == 0 {
		s.Wavelength = 50
	}
	if s.Brightness == 0 {
		s.Brightness = 1
	}
	if s.Radius == 0 {
		s.Radius = 380
	}
	if s.Trigger == TriggerMove {
		if s.Chance == nil {
			chance := DefaultMoveChance
			s.Chance = &chance
		}
		if s.MinDelayMs == nil {
			delay := DefaultMoveMinDelayMs
			s.MinDelayMs = &delay
		}
	}
}

// validateEffectConfig 校验配置
func validateEffectConfig(cfg *EffectConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Clock.Rate <= 0 {
		return fmt.Errorf("clock.rate must be positive, got %v", cfg.Clock.Rate)
	}
	if cfg.Clock.InactivityThreshold <= 0 {
		return fmt.Errorf("clock.inactivityThreshold must be positive, got %v", cfg.Clock.InactivityThreshold)
	}
	if cfg.Displacement.PatternSize < 0 {
		return fmt.Errorf("displacement.patternSize must be positive, got %d", cfg.Displacement.PatternSize)
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"window.backgroundColor", cfg.Window.BackgroundColor},
		{"header.color", cfg.Header.Color},
		{"header.shadow.color", cfg.Header.Shadow.Color},
	} {
		if _, err := colorful.Hex(field.value); err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
	}

	names := make(map[string]bool, len(cfg.Shockwaves))
	for i, s := range cfg.Shockwaves {
		if s.Name != "" {
			if names[s.Name] {
				return fmt.Errorf("shockwave %d: duplicate name %q", i, s.Name)
			}
			names[s.Name] = true
		}
		switch s.Trigger {
		case TriggerClick, TriggerMove, TriggerNone:
		default:
			return fmt.Errorf("shockwave %d: trigger must be one of: click, move, none, got %q", i, s.Trigger)
		}
		if s.Trigger == TriggerMove {
			if c := s.MoveChance(); c < 0 || c > 1 {
				return fmt.Errorf("shockwave %d: chance must be between 0 and 1, got %v", i, c)
			}
			if s.MinDelay() < 0 {
				return fmt.Errorf("shockwave %d: minDelayMs cannot be negative", i)
			}
		}
	}
	return nil
}

// mustParseColor 解析已校验过的颜色字符串
func mustParseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// EmbeddedEffectConfigPath 内置默认配置在嵌入文件系统中的路径
const EmbeddedEffectConfigPath = "data/effects.yaml"

// LoadEmbeddedEffectConfig 加载随程序嵌入的默认配置
func LoadEmbeddedEffectConfig() (*EffectConfig, error) {
	data, err := embedded.ReadFile(EmbeddedEffectConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded effect config: %w", err)
	}
	return ParseEffectConfig(data)
}

// 嵌入的着色器路径
const (
	DisplaceShaderPath  = "data/shaders/displace.kage"
	ShockwaveShaderPath = "data/shaders/shockwave.kage"
)

// FramesPerSecond 时钟常量所依据的参考帧率
const FramesPerSecond = 60.0

// FrameDelta 把秒为单位的 tick 间隔换算为帧归一化增量（60Hz 下为 1.0）
func FrameDelta(deltaSeconds float64) float64 {
	return deltaSeconds * FramesPerSecond
}
