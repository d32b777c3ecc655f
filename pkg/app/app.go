// Package app 提供应用的核心包装器
//
// 该包把配置加载、资源管理、场景创建和输入分发组装成一个 ebiten.Game，
// main.go 只负责解析命令行参数和启动游戏循环。
package app

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/embedded"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/scenes"
	"github.com/gonewx/coastline/pkg/systems"
	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	embeddedSceneConfig     = "data/scene.yaml"
	embeddedResourcesConfig = "data/resources.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 场景配置文件路径，为空时使用嵌入的 data/scene.yaml
	ScenePath string
	// AssetsDir 贴图目录，不存在时全部使用占位图形
	AssetsDir string
	// Watch 监听 ScenePath 变化并热重载（需要同时指定 ScenePath）
	Watch bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	input        *systems.InputSystem
	watcher      *config.Watcher

	scenePath string
	resources *game.ResourceManager
	random    game.RandomSource

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	var assets fs.FS
	if cfg.AssetsDir != "" {
		assets = os.DirFS(cfg.AssetsDir)
	}
	resources := game.NewResourceManager(assets)
	// 资源映射是可选的，缺失时全部使用占位图形
	if embedded.Exists(embeddedResourcesConfig) {
		resData, err := embedded.ReadFile(embeddedResourcesConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to read resource config: %w", err)
		}
		if err := resources.LoadResourceConfig(resData); err != nil {
			return nil, fmt.Errorf("failed to load resource config: %w", err)
		}
	} else {
		log.Printf("[App] %s not embedded, using placeholders only", embeddedResourcesConfig)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		scenePath:    cfg.ScenePath,
		resources:    resources,
		random:       game.NewRandomSource(seed),
		width:        config.GameWindowWidth,
		height:       config.GameWindowHeight,
	}
	a.input = systems.NewInputSystem(a.sceneManager)
	a.sceneManager.SetSceneFactory(a.buildScene)

	scene, err := a.buildScene()
	if err != nil {
		return nil, err
	}
	a.sceneManager.SwitchTo(scene)

	if cfg.Watch {
		if cfg.ScenePath == "" {
			log.Printf("[App] --watch ignored: no --config file given")
		} else {
			w, err := config.NewWatcher(cfg.ScenePath)
			if err != nil {
				return nil, fmt.Errorf("failed to watch %s: %w", cfg.ScenePath, err)
			}
			a.watcher = w
		}
	}
	return a, nil
}

// loadSceneConfig 读取场景配置：优先使用文件，否则使用嵌入配置
func (a *App) loadSceneConfig() (*config.SceneConfig, error) {
	if a.scenePath != "" {
		return config.LoadSceneConfig(a.scenePath)
	}
	data, err := embedded.ReadFile(embeddedSceneConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config: %w", err)
	}
	return config.ParseSceneConfig(data)
}

// buildScene 按当前配置和窗口尺寸创建场景（也用作热重载工厂）
func (a *App) buildScene() (game.Scene, error) {
	cfg, err := a.loadSceneConfig()
	if err != nil {
		return nil, err
	}
	return scenes.NewCoastScene(scenes.Options{
		Config:    cfg,
		Resources: a.resources,
		Random:    a.random,
		Width:     float64(a.width),
		Height:    float64(a.height),
	})
}

// Update 更新逻辑，每个 tick 调用一次（60 TPS）
func (a *App) Update() error {
	a.updateWindow()

	if a.watcher != nil {
		if path, ok := a.watcher.Poll(); ok {
			log.Printf("[App] Config changed: %s", path)
			a.sceneManager.Rebuild()
		}
		if err, ok := a.watcher.PollError(); ok {
			log.Printf("[ConfigWatcher] %v", err)
		}
	}

	for _, ev := range a.input.Poll() {
		a.sceneManager.Dispatch(ev)
	}

	// 时间单位为帧
	a.sceneManager.Update(1)
	return nil
}

// updateWindow F11 切换全屏
func (a *App) updateWindow() {
	if utils.IsMobile() {
		return
	}

	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口，场景按屏幕比例重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, config.MinWindowWidth)
	h := max(outsideHeight, config.MinWindowHeight)
	a.width, a.height = w, h
	a.input.ObserveLayout(w, h)
	return w, h
}

// Close 释放配置监听
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
