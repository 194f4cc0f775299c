package config

// 窗口与场景布局默认值
const (
	// DefaultWindowWidth 初始窗口宽度（像素）
	// 画布跟随窗口大小，这里只决定启动时的尺寸
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 初始窗口高度（像素）
	DefaultWindowHeight = 720

	DefaultWindowTitle     = "AQUA-SHOP"
	DefaultBackgroundColor = "#1099bb"

	// DefaultHeaderText 标题文字
	DefaultHeaderText = "AQUA-SHOP"

	// DefaultHeaderFontSize 标题字号
	DefaultHeaderFontSize = 56.0

	// DefaultPatternSize 生成的置换贴图边长（像素）
	DefaultPatternSize = 512

	// BackgroundTextureWidth, BackgroundTextureHeight 程序生成的背景图尺寸
	BackgroundTextureWidth  = 1920
	BackgroundTextureHeight = 1080
)

// ViewportCenter 返回视口中心点
func ViewportCenter(width, height int) (float64, float64) {
	return float64(width) / 2, float64(height) / 2
}
