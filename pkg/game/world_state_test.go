package game

import (
	"image/color"
	"testing"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubEntity 最小化的实体实现
type stubEntity struct {
	id        ecs.EntityID
	transform components.Transform
}

func (s *stubEntity) Update(w *WorldState, delta float64)       {}
func (s *stubEntity) Resize(width, height float64)              {}
func (s *stubEntity) Draw(screen *ebiten.Image, alpha float32)  {}
func (s *stubEntity) ID() ecs.EntityID                          { return s.id }
func (s *stubEntity) Name() string                              { return "stub" }
func (s *stubEntity) Transform() components.Transform           { return s.transform }
func (s *stubEntity) SetTransform(t components.Transform)       { s.transform = t }
func (s *stubEntity) Contains(x, y float64) bool                { return false }
func (s *stubEntity) CreateDetailView(onBack func()) DetailView { return nil }
func (s *stubEntity) OnFocusEnter()                             {}
func (s *stubEntity) OnFocusExit()                              {}

// TestWorldState_FocusConsistency 测试聚焦标志与聚焦实体始终一致
func TestWorldState_FocusConsistency(t *testing.T) {
	w := NewWorldState(800, 600)
	lh := &stubEntity{id: w.NewEntityID()}
	boat := &stubEntity{id: w.NewEntityID()}
	w.AddLighthouse(lh)
	w.SetBoat(boat)

	check := func(stage string) {
		t.Helper()
		id, ok := w.FocusedEntityID()
		if w.IsZoomed() != ok || ok != (id != 0) {
			t.Errorf("%s: IsZoomed=%v focused=(%d,%v) 不一致", stage, w.IsZoomed(), id, ok)
		}
	}

	check("初始")
	if w.IsZoomed() {
		t.Fatal("初始不应处于聚焦")
	}

	if !w.SetFocus(lh.ID()) {
		t.Fatal("聚焦已注册实体应成功")
	}
	check("聚焦后")

	if w.SetFocus(boat.ID()) {
		t.Error("已聚焦时不应切换到另一个实体")
	}
	if id, _ := w.FocusedEntityID(); id != lh.ID() {
		t.Errorf("聚焦实体不应改变, got %d", id)
	}

	w.ClearFocus()
	check("退出后")
	if w.IsZoomed() {
		t.Error("ClearFocus 后不应处于聚焦")
	}
}

// TestWorldState_SetFocusUnknown 测试聚焦未注册实体失败
func TestWorldState_SetFocusUnknown(t *testing.T) {
	w := NewWorldState(800, 600)
	if w.SetFocus(42) {
		t.Error("未注册实体不应聚焦成功")
	}
	if w.SetFocus(0) {
		t.Error("ID 0 不应聚焦成功")
	}
	if w.IsZoomed() {
		t.Error("失败后不应处于聚焦")
	}
}

// TestWorldState_SpawnSignal 测试信号按顺序追加，nil 被忽略
func TestWorldState_SpawnSignal(t *testing.T) {
	w := NewWorldState(800, 600)
	a := components.NewPulseSignal(components.Point{X: 1}, 10, 0.1, color.RGBA{A: 255})
	b := components.NewPulseSignal(components.Point{X: 2}, 10, 0.1, color.RGBA{A: 255})

	w.SpawnSignal(a)
	w.SpawnSignal(nil)
	w.SpawnSignal(b)

	if len(w.ActiveSignals) != 2 {
		t.Fatalf("期望 2 个信号, got %d", len(w.ActiveSignals))
	}
	if w.ActiveSignals[0] != a || w.ActiveSignals[1] != b {
		t.Error("信号顺序应与追加顺序一致")
	}
}

// TestWorldState_CaptureSnapshot 测试快照记录帧开始时的船只位置、天气和聚焦状态
func TestWorldState_CaptureSnapshot(t *testing.T) {
	w := NewWorldState(800, 600)
	w.CaptureSnapshot()
	if w.Snapshot.HasBoat {
		t.Error("没有船只时 HasBoat 应为 false")
	}

	boat := &stubEntity{id: w.NewEntityID(), transform: components.Transform{X: 120, Y: 340, Scale: 1}}
	w.SetBoat(boat)
	w.Weather = Weather{WindIntensity: 0.7, WindDirection: 1}
	w.CaptureSnapshot()

	// 快照之后的修改不影响本帧读取
	boat.transform.X = 999
	w.Weather.WindIntensity = 0
	w.SetFocus(boat.ID())

	if !w.Snapshot.HasBoat || w.Snapshot.BoatPosition != (components.Point{X: 120, Y: 340}) {
		t.Errorf("快照船只位置错误: %+v", w.Snapshot)
	}
	if w.Snapshot.Weather.WindIntensity != 0.7 {
		t.Errorf("快照风力应为 0.7, got %f", w.Snapshot.Weather.WindIntensity)
	}
	if w.Snapshot.IsZoomed {
		t.Error("快照聚焦状态应为帧开始时的值")
	}
}

// TestWorldState_Entity 测试按ID查找实体
func TestWorldState_Entity(t *testing.T) {
	w := NewWorldState(800, 600)
	lh := &stubEntity{id: w.NewEntityID()}
	w.AddLighthouse(lh)

	got, ok := w.Entity(lh.ID())
	if !ok || got != Entity(lh) {
		t.Errorf("期望找到灯塔, got %v %v", got, ok)
	}
	if _, ok := w.Entity(lh.ID() + 1); ok {
		t.Error("不存在的ID不应找到")
	}
	if len(w.Entities.Lighthouses) != 1 {
		t.Errorf("期望 1 座灯塔, got %d", len(w.Entities.Lighthouses))
	}
}
