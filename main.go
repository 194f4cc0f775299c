package main

import (
	"flag"
	"log"

	"github.com/gonewx/aquashop/pkg/app"
	"github.com/gonewx/aquashop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose       = flag.Bool("verbose", false, "显示详细调试信息")
	configPath    = flag.String("config", "", "效果配置文件路径（默认使用内置 data/effects.yaml）")
	watch         = flag.Bool("watch", false, "监听 --config 指定的文件并热重载")
	autoRetrigger = flag.Bool("auto-retrigger", false, "冲击波休眠后自动在随机位置重新播放")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		Watch:         *watch,
		AutoRetrigger: *autoRetrigger,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gameApp.WindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
