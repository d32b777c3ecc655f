// validate_scene 校验场景配置和资源映射
//
// 用法:
//
//	go run ./cmd/validate_scene --config data/scene.yaml --resources data/resources.yaml --assets assets
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/game"
)

var (
	configFlag    = flag.String("config", "data/scene.yaml", "Scene config file")
	resourcesFlag = flag.String("resources", "data/resources.yaml", "Resource config file")
	assetsFlag    = flag.String("assets", "assets", "Texture directory")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSceneConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ 场景配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 场景配置正确: %s\n", *configFlag)
	for _, lh := range cfg.Lighthouses {
		fmt.Printf("   灯塔 %-12s 周期 %5.0f 帧  位置 (%.2f, %.2f)\n", lh.ID, lh.SignalPeriod, lh.X, lh.Y)
	}
	if cfg.Boat != nil {
		fmt.Printf("   船只 %s: %d 个航点, 速度 %.2f 像素/帧\n", cfg.Boat.Name, len(cfg.Boat.Waypoints), cfg.Boat.Speed)
	} else {
		fmt.Printf("⚠️  未配置船只，灯塔只会发出环境脉冲\n")
	}

	data, err := os.ReadFile(*resourcesFlag)
	if err != nil {
		fmt.Printf("❌ 读取资源配置失败: %v\n", err)
		os.Exit(1)
	}
	res, err := game.ParseResourceConfig(data)
	if err != nil {
		fmt.Printf("❌ 资源配置无效: %v\n", err)
		os.Exit(1)
	}

	missing := 0
	for _, tex := range res.Textures {
		path := filepath.Join(*assetsFlag, res.TexturePath(tex))
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("⚠️  贴图 %s 缺失 (%s)，将使用占位图形\n", tex.Key, path)
			missing++
		}
	}
	fmt.Printf("✅ 资源映射 %d 项，缺失 %d 项\n", len(res.Textures), missing)
}
