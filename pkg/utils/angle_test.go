package utils

import (
	"math"
	"testing"
)

// TestNormalizeAngle 测试角度归一化到 (-π, π]
func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"零", 0, 0},
		{"π 保持不变", math.Pi, math.Pi},
		{"-π 映射为 π", -math.Pi, math.Pi},
		{"1.5π 映射为 -0.5π", 1.5 * math.Pi, -0.5 * math.Pi},
		{"-1.5π 映射为 0.5π", -1.5 * math.Pi, 0.5 * math.Pi},
		{"多圈", 4*math.Pi + 0.25, 0.25},
		{"负多圈", -6*math.Pi - 0.25, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.input)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
			if got <= -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v 超出 (-π, π]", tt.input, got)
			}
		})
	}
}

// TestWrap01 测试相位折回
func TestWrap01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.75, 0.75},
		{-0.25, 0.75},
	}
	for _, tt := range tests {
		if got := Wrap01(tt.input); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Wrap01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestDistance 测试两点距离
func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, 期望 5", got)
	}
}
