package systems

import (
	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubPanel 记录调用次数的详情面板
type stubPanel struct {
	updates int
	closed  int
	onBack  func()
}

func (p *stubPanel) Update()                                  { p.updates++ }
func (p *stubPanel) Draw(screen *ebiten.Image, alpha float32) {}
func (p *stubPanel) Close()                                   { p.closed++ }

// stubEntity 可聚焦的测试实体
type stubEntity struct {
	id        ecs.EntityID
	transform components.Transform
	base      components.Point // Resize 时使用的屏幕比例位置

	updates    int
	resizes    int
	enters     int
	exits      int
	panel      *stubPanel
	lastUpdate float64
}

func newStubEntity(w *game.WorldState, t components.Transform) *stubEntity {
	return &stubEntity{id: w.NewEntityID(), transform: t}
}

func (s *stubEntity) Update(w *game.WorldState, delta float64) {
	s.updates++
	s.lastUpdate = w.ElapsedTime
}

func (s *stubEntity) Resize(width, height float64) {
	s.resizes++
	s.transform.X = s.base.X * width
	s.transform.Y = s.base.Y * height
}

func (s *stubEntity) Draw(screen *ebiten.Image, alpha float32) {}

func (s *stubEntity) ID() ecs.EntityID { return s.id }

func (s *stubEntity) Name() string { return "stub" }

func (s *stubEntity) Transform() components.Transform { return s.transform }

func (s *stubEntity) SetTransform(t components.Transform) { s.transform = t }

func (s *stubEntity) Contains(x, y float64) bool {
	return x >= s.transform.X-10 && x <= s.transform.X+10 &&
		y >= s.transform.Y-10 && y <= s.transform.Y+10
}

func (s *stubEntity) CreateDetailView(onBack func()) game.DetailView {
	s.panel = &stubPanel{onBack: onBack}
	return s.panel
}

func (s *stubEntity) OnFocusEnter() { s.enters++ }

func (s *stubEntity) OnFocusExit() { s.exits++ }

// testFocusConfig 聚焦参数：进入 10 帧，退出 10 帧
func testFocusConfig() config.FocusConfig {
	return config.FocusConfig{
		EnterDuration: 10,
		ExitDuration:  10,
		FocalX:        0.3,
		FocalY:        0.5,
		Scale:         2,
		DimAlpha:      0.25,
	}
}

// newTestCoordinator 创建 1000x800 世界、一个灯塔桩和协调器
func newTestCoordinator() (*game.WorldState, *stubEntity, *ViewTransitionSystem) {
	w := game.NewWorldState(1000, 800)
	lh := newStubEntity(w, components.Transform{X: 200, Y: 300, Scale: 1.25, Rotation: 0.1})
	lh.base = components.Point{X: 0.2, Y: 0.375}
	w.AddLighthouse(lh)
	return w, lh, NewViewTransitionSystem(w, testFocusConfig())
}
