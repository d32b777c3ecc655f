package main

import (
	"flag"
	"log"

	"github.com/gonewx/coastline/pkg/app"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", "", "Scene config file (default: embedded data/scene.yaml)")
	assetsFlag  = flag.String("assets", "assets", "Directory with optional textures")
	watchFlag   = flag.Bool("watch", false, "Reload the scene when --config changes")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		ScenePath: *configFlag,
		AssetsDir: *assetsFlag,
		Watch:     *watchFlag,
		Seed:      *seedFlag,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Coastline")

	// log.Fatalf 不执行 defer，出错时先显式关闭
	err = ebiten.RunGame(gameApp)
	_ = gameApp.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
