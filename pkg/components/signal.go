package components

import (
	"image/color"
	"math"

	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SignalKind 信号类型
type SignalKind int

const (
	// SignalDirectional 定向信号：从灯塔灯室飞向船只的正弦波线
	SignalDirectional SignalKind = iota
	// SignalPulse 脉冲信号：从某点向外扩散并淡出的圆环
	SignalPulse
)

// completionEpsilon 完成判定的浮点容差
// 0.1 连加十次得到 0.9999999999999999，没有容差会多走一帧。
const completionEpsilon = 1e-9

// String 返回信号类型名称（日志用）
func (k SignalKind) String() string {
	switch k {
	case SignalDirectional:
		return "directional"
	case SignalPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// SignalReceiver 定向信号到达目标时的接收方
type SignalReceiver interface {
	ReceiveSignal(c color.RGBA)
}

// Signal 一个短暂的信号可视对象
//
// 状态机：traveling (0 ≤ Progress < 1) → complete (Progress ≥ 1)，终态。
// 活动信号列表独占所有权，完成当帧释放顶点缓冲并移出列表。
type Signal struct {
	Kind     SignalKind
	Origin   Point
	Target   Point // 仅定向信号有效
	Progress float64
	Speed    float64 // 每帧进度增量
	Color    color.RGBA

	// 脉冲参数
	MaxRadius float64

	// 定向信号的正弦扰动
	WaveAmplitude float64 // 像素
	WaveFrequency float64 // 整条路径上的波数

	// Receiver 定向信号完成时通知的对象，可为 nil
	Receiver SignalReceiver

	// 渲染缓冲（描边顶点），由渲染系统复用，完成时释放
	Vertices []ebiten.Vertex
	Indices  []uint16

	released bool
}

// NewDirectionalSignal 创建指向目标的定向信号
// target 为 nil 时不创建（灯塔找不到船只时直接跳过本次发射）。
func NewDirectionalSignal(origin Point, target *Point, speed float64, c color.RGBA) (*Signal, bool) {
	if target == nil {
		return nil, false
	}
	return &Signal{
		Kind:          SignalDirectional,
		Origin:        origin,
		Target:        *target,
		Speed:         speed,
		Color:         c,
		WaveAmplitude: 6,
		WaveFrequency: 4,
	}, true
}

// NewPulseSignal 创建脉冲圆环信号
func NewPulseSignal(origin Point, maxRadius, speed float64, c color.RGBA) *Signal {
	return &Signal{
		Kind:      SignalPulse,
		Origin:    origin,
		Speed:     speed,
		Color:     c,
		MaxRadius: maxRadius,
	}
}

// Advance 推进信号进度，返回是否已完成
// 进度单调不减，到达终态后不再变化。
func (s *Signal) Advance(delta float64) bool {
	if s.IsComplete() {
		return true
	}
	if delta > 0 && s.Speed > 0 {
		s.Progress += s.Speed * delta
	}
	if s.Progress >= 1-completionEpsilon {
		s.Progress = 1
	}
	return s.IsComplete()
}

// IsComplete 是否到达终态
func (s *Signal) IsComplete() bool {
	return s.Progress >= 1
}

// Release 释放信号持有的渲染资源，重复调用无副作用
func (s *Signal) Release() {
	if s.released {
		return
	}
	s.Vertices = nil
	s.Indices = nil
	s.Receiver = nil
	s.released = true
}

// Released 资源是否已释放
func (s *Signal) Released() bool {
	return s.released
}

// Head 返回定向信号当前的前端位置（不含正弦扰动）
func (s *Signal) Head() Point {
	return Point{
		X: utils.Lerp(s.Origin.X, s.Target.X, s.Progress),
		Y: utils.Lerp(s.Origin.Y, s.Target.Y, s.Progress),
	}
}

// PathPoint 返回定向信号路径上参数 u ∈ [0, 1] 处的点（含正弦扰动）
// 扰动沿路径法线方向，两端为零。
func (s *Signal) PathPoint(u float64) Point {
	dx := s.Target.X - s.Origin.X
	dy := s.Target.Y - s.Origin.Y
	base := Point{X: s.Origin.X + dx*u, Y: s.Origin.Y + dy*u}

	length := math.Hypot(dx, dy)
	if length == 0 {
		return base
	}
	nx, ny := -dy/length, dx/length
	offset := s.WaveAmplitude * math.Sin(2*math.Pi*s.WaveFrequency*u) * math.Sin(math.Pi*u)
	return Point{X: base.X + nx*offset, Y: base.Y + ny*offset}
}

// PulseRadius 脉冲当前半径
func (s *Signal) PulseRadius() float64 {
	return s.MaxRadius * s.Progress
}

// PulseAlpha 脉冲当前透明度
func (s *Signal) PulseAlpha() float64 {
	return 1 - s.Progress
}
