package utils

import (
	"math"
	"testing"
)

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.5},
		{"四分之一", 0.25, 0.0625}, // 4 * 0.25^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 单调不减，且相邻采样差不超过 1.5 * 步长
	t.Run("单调且斜率有界", func(t *testing.T) {
		const step = 0.001
		prev := EaseInOutCubic(0)
		for p := step; p <= 1.0; p += step {
			cur := EaseInOutCubic(p)
			if cur < prev {
				t.Fatalf("EaseInOutCubic 在 %v 处递减: %v < %v", p, cur, prev)
			}
			if cur-prev > 1.5*step+1e-9 {
				t.Fatalf("EaseInOutCubic 在 %v 处斜率过大: %v", p, (cur-prev)/step)
			}
			prev = cur
		}
	})
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 0.001 {
		t.Errorf("EaseOutCubic(0.5) = %v, 期望 0.875", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %v, 期望 1", got)
	}
}

// TestLerpAndClamp 测试插值与区间限制
func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", got)
	}
	if got := Clamp01(-0.3); got != 0 {
		t.Errorf("Clamp01(-0.3) = %v, 期望 0", got)
	}
	if got := Clamp01(1.7); got != 1 {
		t.Errorf("Clamp01(1.7) = %v, 期望 1", got)
	}
}
