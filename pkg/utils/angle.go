package utils

import "math"

// NormalizeAngle 将角度（弧度）归一化到 (-π, π] 区间
//
// 船只转向控制器依赖这个区间：角度差必须取最短方向，
// 否则跨越 ±π 时会绕远路转一整圈。
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Wrap01 将任意值折回 [0, 1) 区间（负数同样正确处理）
func Wrap01(v float64) float64 {
	v = v - math.Floor(v)
	if v >= 1 {
		return 0
	}
	return v
}
