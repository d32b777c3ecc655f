package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/gonewx/coastline/pkg/entities"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options 海岸场景构造参数
type Options struct {
	Config    *config.SceneConfig
	Resources *game.ResourceManager // 可为 nil，全部使用占位图形
	Random    game.RandomSource     // 可为 nil，关闭所有随机事件
	Width     float64
	Height    float64
}

// CoastScene 海岸灯塔场景
//
// 组装世界状态、实体和各系统：
//   - FrameDriver 每帧推进实体、信号、昼夜和视角切换
//   - RenderSystem 分层绘制
//   - 输入事件通过 HandleEvent 转交给协调器和昼夜系统
type CoastScene struct {
	cfg   *config.SceneConfig
	world *game.WorldState

	seascape    *entities.Seascape
	sky         *entities.Sky
	lighthouses []*entities.Lighthouse
	boat        *entities.Boat

	signals  *systems.SignalSystem
	dayNight *systems.DayNightSystem
	view     *systems.ViewTransitionSystem
	driver   *systems.FrameDriver
	render   *systems.RenderSystem
}

// NewCoastScene 创建海岸场景
func NewCoastScene(opts Options) (*CoastScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("scene config is required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %.0fx%.0f", opts.Width, opts.Height)
	}
	cfg := opts.Config

	s := &CoastScene{
		cfg:   cfg,
		world: game.NewWorldState(opts.Width, opts.Height),
		sky:   entities.NewSky(cfg.Palette),
	}

	s.seascape = entities.NewSeascape(cfg, opts.Random)
	s.world.SetMap(s.seascape)

	for _, lhCfg := range cfg.Lighthouses {
		lh := entities.NewLighthouse(s.world.NewEntityID(), lhCfg, cfg, opts.Random, opts.Resources)
		s.lighthouses = append(s.lighthouses, lh)
		s.world.AddLighthouse(lh)
	}

	if cfg.Boat != nil {
		s.boat = entities.NewBoat(s.world.NewEntityID(), *cfg.Boat, cfg, opts.Resources)
		s.world.SetBoat(s.boat)
		for _, lh := range s.lighthouses {
			lh.SetReceiver(s.boat)
		}
	} else {
		log.Printf("[CoastScene] No boat configured, lighthouses will only pulse")
	}

	s.signals = systems.NewSignalSystem(s.world)
	s.dayNight = systems.NewDayNightSystem(s.world, cfg.DayNight, cfg.Palette)
	s.view = systems.NewViewTransitionSystem(s.world, cfg.Focus)
	s.driver = systems.NewFrameDriver(s.world, s.signals, s.dayNight, s.view)
	s.render = systems.NewRenderSystem(s.world, s.sky, s.view)

	s.driver.Resize(opts.Width, opts.Height)

	log.Printf("[CoastScene] Created: %d entities (%d lighthouses, boat=%v), size=%.0fx%.0f",
		s.world.Registry.Len(), len(s.lighthouses), s.boat != nil, opts.Width, opts.Height)
	return s, nil
}

// Close 场景被替换时关闭打开的详情面板
func (s *CoastScene) Close() {
	s.view.Close()
}

// World 返回世界状态
func (s *CoastScene) World() *game.WorldState { return s.world }

// View 返回视角切换协调器
func (s *CoastScene) View() *systems.ViewTransitionSystem { return s.view }

// Update 推进一帧
func (s *CoastScene) Update(delta float64) {
	s.driver.Tick(delta)
}

// Draw 绘制场景
func (s *CoastScene) Draw(screen *ebiten.Image) {
	s.render.Draw(screen)
	if s.world.Debug {
		s.drawDebug(screen)
	}
}

// HandleEvent 处理输入事件
func (s *CoastScene) HandleEvent(event game.InputEvent) {
	switch event.Type {
	case game.EventEntitySelected:
		s.view.Select(event.EntityID)
	case game.EventBackAction:
		s.view.Back()
	case game.EventDebugToggle:
		s.world.Debug = !s.world.Debug
		log.Printf("[CoastScene] Debug overlay: %v", s.world.Debug)
	case game.EventDayNightToggle:
		s.dayNight.Toggle()
	case game.EventWindowResized:
		if event.Width > 0 && event.Height > 0 {
			s.driver.Resize(event.Width, event.Height)
		}
	}
}

// PickEntity 命中测试，后注册的实体绘制在上层（船只最后注册），取最后命中者
func (s *CoastScene) PickEntity(x, y float64) (game.Entity, bool) {
	var hit game.Entity
	s.world.Registry.Each(func(_ ecs.EntityID, e game.Entity) bool {
		if e.Contains(x, y) {
			hit = e
		}
		return true
	})
	return hit, hit != nil
}
