package components

import (
	"math"
	"testing"

	"github.com/gonewx/coastline/pkg/utils"
)

// TestTransformTween_Completion 测试补间结束时精确返回目标值
func TestTransformTween_Completion(t *testing.T) {
	from := Transform{X: 10, Y: 20, Scale: 1, Rotation: 0.3}
	to := Transform{X: 400, Y: 300, Scale: 2.5, Rotation: 0}
	tw := NewTransformTween(from, to, 30, utils.EaseInOutCubic)

	var current Transform
	done := false
	for i := 0; i < 30; i++ {
		current, done = tw.Advance(1)
	}
	if !done {
		t.Fatal("期望 30 帧后补间完成")
	}
	if current != to {
		t.Errorf("期望精确返回目标变换 %+v, got %+v", to, current)
	}
}

// TestTransformTween_Midpoint 测试中点插值
func TestTransformTween_Midpoint(t *testing.T) {
	from := Transform{X: 0, Y: 0, Scale: 1}
	to := Transform{X: 100, Y: 50, Scale: 3}
	tw := NewTransformTween(from, to, 10, nil)

	current, done := tw.Advance(5)
	if done {
		t.Fatal("中点不应完成")
	}
	if current.X != 50 || current.Y != 25 || current.Scale != 2 {
		t.Errorf("期望 (50, 25, 2), got %+v", current)
	}
}

// TestTransformTween_ZeroDuration 测试零时长补间立即完成
func TestTransformTween_ZeroDuration(t *testing.T) {
	to := Transform{X: 1, Y: 2, Scale: 3, Rotation: 4}
	tw := NewTransformTween(Transform{}, to, 0, nil)
	if !tw.Done() || tw.Current() != to {
		t.Errorf("期望立即完成并返回目标值, got %+v", tw.Current())
	}
}

// TestLerpTransform_ShortestRotation 测试旋转沿最短方向插值
func TestLerpTransform_ShortestRotation(t *testing.T) {
	a := Transform{Rotation: math.Pi - 0.1}
	b := Transform{Rotation: -math.Pi + 0.1}
	mid := LerpTransform(a, b, 0.5)

	// 最短路径经过 π，而不是经过 0
	if math.Abs(math.Abs(utils.NormalizeAngle(mid.Rotation))-math.Pi) > 1e-9 {
		t.Errorf("期望中点旋转为 ±π, got %v", mid.Rotation)
	}
}
