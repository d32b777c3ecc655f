package entities

import (
	"math"
	"testing"
)

// TestSeascape_WeatherChange 测试天气按概率切换目标并平滑靠拢
func TestSeascape_WeatherChange(t *testing.T) {
	scene := newTestScene()
	scene.Weather.ChangeChance = 0.5
	scene.Weather.MinWind = 0
	scene.Weather.MaxWind = 1
	scene.Weather.EaseRate = 1
	// 第一帧：0.1 < 0.5 触发切换，风力 0.8，风向 0.25 圈
	rng := &seqRandom{values: []float64{0.1, 0.8, 0.25}, fallback: 0.99}
	s := NewSeascape(scene, rng)
	s.Resize(1000, 1000)

	w := newTestWorld()
	s.Update(w, 1)

	if math.Abs(w.Weather.WindIntensity-0.8) > 1e-9 {
		t.Errorf("期望风力 0.8, got %f", w.Weather.WindIntensity)
	}
	if math.Abs(w.Weather.WindDirection-math.Pi/2) > 1e-9 {
		t.Errorf("期望风向 π/2, got %f", w.Weather.WindDirection)
	}

	// 之后不再切换
	s.Update(w, 1)
	if math.Abs(w.Weather.WindIntensity-0.8) > 1e-9 {
		t.Errorf("风力不应改变, got %f", w.Weather.WindIntensity)
	}
}

// TestSeascape_EaseTowardTarget 测试平滑靠拢不会越过目标
func TestSeascape_EaseTowardTarget(t *testing.T) {
	scene := newTestScene()
	scene.Weather.ChangeChance = 1
	scene.Weather.MinWind = 0
	scene.Weather.MaxWind = 1
	scene.Weather.EaseRate = 0.1
	rng := &seqRandom{values: []float64{0, 1, 0}, fallback: 0.99}
	s := NewSeascape(scene, rng)
	start := s.current.WindIntensity

	w := newTestWorld()
	s.Update(w, 1)

	want := start + (1-start)*0.1
	if math.Abs(w.Weather.WindIntensity-want) > 1e-9 {
		t.Errorf("期望风力 %f, got %f", want, w.Weather.WindIntensity)
	}
	if got := s.WeatherTarget().WindIntensity; got != 1 {
		t.Errorf("目标风力应为 1, got %f", got)
	}
}

// TestSeascape_ZeroChance 测试概率为 0 时不消耗随机数且天气保持不变
func TestSeascape_ZeroChance(t *testing.T) {
	scene := newTestScene()
	scene.Weather.ChangeChance = 0
	rng := &seqRandom{}
	s := NewSeascape(scene, rng)
	initial := s.current

	w := newTestWorld()
	for i := 0; i < 100; i++ {
		s.Update(w, 1)
	}
	if rng.calls != 0 {
		t.Errorf("不应抽取随机数, got %d calls", rng.calls)
	}
	if w.Weather != initial {
		t.Errorf("天气应保持 %+v, got %+v", initial, w.Weather)
	}
}

// TestSeascape_Horizon 测试海平线随窗口高度缩放
func TestSeascape_Horizon(t *testing.T) {
	scene := newTestScene()
	s := NewSeascape(scene, nil)
	s.Resize(800, 600)
	if got, want := s.HorizonY(), scene.Water.HorizonY*600; got != want {
		t.Errorf("期望 %f, got %f", want, got)
	}
}
