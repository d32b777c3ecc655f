package entities

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
)

func newTestBoat(waypoints []config.Waypoint, speed, rotSpeed float64) *Boat {
	scene := newTestScene()
	cfg := *scene.Boat
	cfg.Waypoints = waypoints
	cfg.Speed = speed
	cfg.RotationSpeed = rotSpeed
	cfg.ArriveThreshold = 3
	b := NewBoat(2, cfg, scene, nil)
	b.Resize(100, 100)
	return b
}

// TestBoat_StartsAtFirstWaypoint 测试初始位置与目标
func TestBoat_StartsAtFirstWaypoint(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0.1, Y: 0.2}, {X: 0.9, Y: 0.2}}, 1, 0.1)

	if got := b.Transform().Position(); got != (components.Point{X: 10, Y: 20}) {
		t.Errorf("期望位于首个航点 (10, 20), got %+v", got)
	}
	if b.TargetIndex() != 1 {
		t.Errorf("期望目标为 1, got %d", b.TargetIndex())
	}
}

// TestBoat_StepClampedToDistance 测试单帧步长不超过剩余距离
func TestBoat_StepClampedToDistance(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1000, 1)
	w := newTestWorld()

	b.Update(w, 1)
	if got := b.Transform().Position(); got != (components.Point{X: 100, Y: 0}) {
		t.Fatalf("期望恰好停在航点 (100, 0), got %+v", got)
	}

	// 到达帧只切换目标，不移动
	b.Update(w, 1)
	if b.TargetIndex() != 0 {
		t.Errorf("期望目标回绕到 0, got %d", b.TargetIndex())
	}
	if got := b.Transform().Position(); got != (components.Point{X: 100, Y: 0}) {
		t.Errorf("切换目标的那一帧不应移动, got %+v", got)
	}

	b.Update(w, 1)
	if got := b.Transform().Position(); got != (components.Point{X: 0, Y: 0}) {
		t.Errorf("期望返回 (0, 0), got %+v", got)
	}
}

// TestBoat_ConstantSpeed 测试远离航点时每帧移动 speed*delta
func TestBoat_ConstantSpeed(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 2, 1)
	w := newTestWorld()

	for i := 0; i < 10; i++ {
		b.Update(w, 1)
	}
	if got := b.Transform().X; math.Abs(got-20) > 1e-9 {
		t.Errorf("期望 x=20, got %f", got)
	}

	b.Update(w, 2.5)
	if got := b.Transform().X; math.Abs(got-25) > 1e-9 {
		t.Errorf("期望 x=25, got %f", got)
	}
}

// TestBoat_RotationProportional 测试朝向按比例转向目标方位
func TestBoat_RotationProportional(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 0.1)
	tf := b.Transform()
	tf.Rotation = math.Pi / 2
	b.SetTransform(tf)

	b.Update(newTestWorld(), 1)

	want := math.Pi/2 - math.Pi/2*0.1
	if got := b.Transform().Rotation; math.Abs(got-want) > 1e-9 {
		t.Errorf("期望朝向 %f, got %f", want, got)
	}
}

// TestBoat_RotationShortestArc 测试跨越 ±π 时沿最短方向转向
func TestBoat_RotationShortestArc(t *testing.T) {
	desired := -math.Pi + 0.1
	b := newTestBoat([]config.Waypoint{
		{X: 0.5, Y: 0.5},
		{X: 0.5 + 0.4*math.Cos(desired), Y: 0.5 + 0.4*math.Sin(desired)},
	}, 1, 1)
	tf := b.Transform()
	tf.Rotation = math.Pi - 0.1
	b.SetTransform(tf)

	b.Update(newTestWorld(), 1)

	if got := b.Transform().Rotation; math.Abs(got-desired) > 1e-6 {
		t.Errorf("期望朝向 %f, got %f", desired, got)
	}
}

// TestBoat_BobIsRenderOnly 测试起伏不改变逻辑位置
func TestBoat_BobIsRenderOnly(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)
	w := newTestWorld()
	w.ElapsedTime = 17
	w.Snapshot.Weather.WindIntensity = 1

	b.Update(w, 1)

	if b.BobOffset() == 0 {
		t.Fatal("期望起伏偏移非零")
	}
	if got := b.Transform().Y; got != 50 {
		t.Errorf("逻辑Y不应受起伏影响, got %f", got)
	}
	if b.renderTransform().Y == b.Transform().Y {
		t.Error("绘制变换应包含起伏偏移")
	}
}

// TestBoat_BobScalesWithWind 测试风力放大起伏
func TestBoat_BobScalesWithWind(t *testing.T) {
	calm := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)
	windy := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)

	w := newTestWorld()
	w.ElapsedTime = 17
	calm.Update(w, 1)
	w.Snapshot.Weather.WindIntensity = 1
	windy.Update(w, 1)

	if math.Abs(windy.BobOffset()) <= math.Abs(calm.BobOffset()) {
		t.Errorf("大风时起伏应更大: calm=%f windy=%f", calm.BobOffset(), windy.BobOffset())
	}
}

// TestBoat_FocusedHoldsPosition 测试聚焦期间不沿航线移动
func TestBoat_FocusedHoldsPosition(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)
	b.OnFocusEnter()
	before := b.Transform()

	b.Update(newTestWorld(), 1)
	if b.Transform() != before {
		t.Errorf("聚焦期间变换不应被航行修改, %+v -> %+v", before, b.Transform())
	}

	b.OnFocusExit()
	b.Update(newTestWorld(), 1)
	if b.Transform().X == before.X {
		t.Error("退出聚焦后应继续航行")
	}
}

// TestBoat_ReceiveSignalEmitsPulse 测试收到信号后下一次更新发出回应脉冲
func TestBoat_ReceiveSignalEmitsPulse(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)
	w := newTestWorld()

	b.ReceiveSignal(color.RGBA{R: 255, A: 255})
	if len(w.ActiveSignals) != 0 {
		t.Fatal("接收时不应直接修改信号列表")
	}

	b.Update(w, 1)
	if len(w.ActiveSignals) != 1 || w.ActiveSignals[0].Kind != components.SignalPulse {
		t.Fatalf("期望 1 个回应脉冲, got %d", len(w.ActiveSignals))
	}
	if b.SignalsReceived() != 1 {
		t.Errorf("期望接收计数 1, got %d", b.SignalsReceived())
	}

	b.Update(w, 1)
	if len(w.ActiveSignals) != 1 {
		t.Errorf("脉冲只应发出一次, got %d", len(w.ActiveSignals))
	}
}

// TestBoat_ReceiveWhileZoomed 聚焦期间收到的信号照常回应脉冲
func TestBoat_ReceiveWhileZoomed(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)
	w := newTestWorld()
	w.SetBoat(b)
	if !w.SetFocus(b.ID()) {
		t.Fatal("聚焦失败")
	}

	b.ReceiveSignal(color.RGBA{G: 255, A: 255})
	b.Update(w, 1)
	if len(w.ActiveSignals) != 1 || w.ActiveSignals[0].Kind != components.SignalPulse {
		t.Fatalf("聚焦时也应发出回应脉冲, got %d", len(w.ActiveSignals))
	}
}

// TestBoat_ResizeScalesPosition 测试缩放窗口时位置按比例变化且幂等
func TestBoat_ResizeScalesPosition(t *testing.T) {
	b := newTestBoat([]config.Waypoint{{X: 0.5, Y: 0.5}, {X: 1, Y: 0.5}}, 1, 1)

	b.Resize(200, 50)
	b.Resize(200, 50)

	if got := b.Transform().Position(); got != (components.Point{X: 100, Y: 25}) {
		t.Errorf("期望 (100, 25), got %+v", got)
	}
	if got := b.Waypoint(1); got != (components.Point{X: 200, Y: 25}) {
		t.Errorf("航点应重新计算, got %+v", got)
	}
}
