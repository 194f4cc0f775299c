// Package app 提供效果层应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/gonewx/aquashop/pkg/config"
	"github.com/gonewx/aquashop/pkg/game"
	"github.com/gonewx/aquashop/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 效果配置文件路径，为空则使用内置的 data/effects.yaml
	ConfigPath string
	// Watch 监听 ConfigPath 的变化并热重载场景（ConfigPath 为空时忽略）
	Watch bool
	// AutoRetrigger 强制开启自动重触发
	AutoRetrigger bool
}

// App 是效果层应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	effectConfig *config.EffectConfig
	watcher      *config.ConfigWatcher
	cfg          Config

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effectConfig, err := loadEffectConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("效果配置加载失败: %w", err)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		effectConfig: effectConfig,
		cfg:          cfg,
	}

	resourceManager := game.NewResourceManager()
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewAquaScene(resourceManager, a.effectConfig, scenes.SceneOptions{
			AutoRetrigger: cfg.AutoRetrigger,
		})
	})
	if err := a.sceneManager.Rebuild(); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	if cfg.Watch && cfg.ConfigPath != "" {
		watcher, err := config.NewConfigWatcher(cfg.ConfigPath)
		if err != nil {
			// 热重载只是辅助功能，失败时继续运行
			log.Printf("[App] Warning: config watcher disabled: %v", err)
		} else {
			a.watcher = watcher
			log.Printf("[App] Watching %s for changes", cfg.ConfigPath)
		}
	}

	log.Printf("[App] Started: %dx%d, config=%q", effectConfig.Window.Width, effectConfig.Window.Height, cfg.ConfigPath)
	return a, nil
}

func loadEffectConfig(path string) (*config.EffectConfig, error) {
	if path == "" {
		log.Printf("[Config] 加载内置配置: %s", config.EmbeddedEffectConfigPath)
		return config.LoadEmbeddedEffectConfig()
	}
	log.Printf("[Config] 加载配置文件: %s", path)
	return config.LoadEffectConfig(path)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.reloadIfChanged()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.effectConfig.Window.Width, a.effectConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// reloadIfChanged 在游戏 goroutine 上处理配置变化
// 新配置无效时保留当前场景
func (a *App) reloadIfChanged() {
	if a.watcher == nil {
		return
	}

	select {
	case err := <-a.watcher.Errors:
		log.Printf("[App] Warning: config watcher error: %v", err)
	default:
	}

	if !a.watcher.Poll() {
		return
	}

	next, err := config.LoadEffectConfig(a.cfg.ConfigPath)
	if err != nil {
		log.Printf("[App] Config reload rejected: %v", err)
		return
	}

	prev := a.effectConfig
	a.effectConfig = next
	if err := a.sceneManager.Rebuild(); err != nil {
		a.effectConfig = prev
		log.Printf("[App] Scene rebuild failed: %v", err)
		return
	}
	log.Printf("[App] Config reloaded: %d shockwaves", len(next.Shockwaves))
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 画布跟随窗口大小，尺寸变化时通知场景重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 释放配置监听器
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// WindowSize 返回配置中的初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.effectConfig.Window.Width, a.effectConfig.Window.Height
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.effectConfig.Window.Title
}
