package components

import "github.com/gonewx/coastline/pkg/utils"

// Point 屏幕坐标点（像素）
type Point struct {
	X, Y float64
}

// Transform 实体的可视变换
// 聚焦切换时整体捕获和恢复，四个字段必须逐位还原。
type Transform struct {
	X        float64 // 屏幕X坐标
	Y        float64 // 屏幕Y坐标
	Scale    float64 // 缩放倍数
	Rotation float64 // 旋转角度（弧度）
}

// Position 返回变换的平移部分
func (t Transform) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// LerpTransform 在两个变换之间插值
// 旋转沿最短方向插值，t=1 时旋转值与 b 相差 2π 的整数倍，
// 需要精确还原的调用方应在结束时直接赋值 b。
func LerpTransform(a, b Transform, t float64) Transform {
	return Transform{
		X:        utils.Lerp(a.X, b.X, t),
		Y:        utils.Lerp(a.Y, b.Y, t),
		Scale:    utils.Lerp(a.Scale, b.Scale, t),
		Rotation: a.Rotation + utils.NormalizeAngle(b.Rotation-a.Rotation)*t,
	}
}

// TransformTween 一次进行中的变换补间
//
// 补间是一个显式的值，由帧驱动器每帧推进；中断（例如聚焦动画途中按返回）
// 只需用一个新的补间替换旧值，不存在两个计时器互相竞争的问题。
type TransformTween struct {
	From     Transform
	To       Transform
	Elapsed  float64               // 已推进的帧数
	Duration float64               // 总帧数，<= 0 表示立即完成
	Easing   func(float64) float64 // 缓动曲线，nil 表示线性
}

// NewTransformTween 创建补间
func NewTransformTween(from, to Transform, duration float64, easing func(float64) float64) *TransformTween {
	return &TransformTween{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
	}
}

// Advance 推进补间 delta 帧，返回当前变换和是否完成
func (tw *TransformTween) Advance(delta float64) (Transform, bool) {
	if delta > 0 {
		tw.Elapsed += delta
	}
	return tw.Current(), tw.Done()
}

// Progress 返回原始进度 [0, 1]
func (tw *TransformTween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(tw.Elapsed / tw.Duration)
}

// Eased 返回经过缓动的进度
func (tw *TransformTween) Eased() float64 {
	p := tw.Progress()
	if tw.Easing == nil {
		return p
	}
	return tw.Easing(p)
}

// Done 补间是否已完成
func (tw *TransformTween) Done() bool {
	return tw.Progress() >= 1
}

// Current 返回当前插值结果，完成时精确返回 To
func (tw *TransformTween) Current() Transform {
	if tw.Done() {
		return tw.To
	}
	return LerpTransform(tw.From, tw.To, tw.Eased())
}
