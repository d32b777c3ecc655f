package systems

import (
	"github.com/gonewx/coastline/pkg/game"
)

// FrameDriver 每帧按固定顺序推进整个场景
//
// 顺序：
//  0. 记录帧开始快照（船只位置、天气、聚焦标志）
//  1. ElapsedTime += delta
//  2. 海面与天气
//  3. 所有灯塔
//  4. 科考船
//  5. 信号推进（完成的信号当帧移除）
//  6. 昼夜相位与天空
//  7. 视角切换补间
//
// delta 以帧为单位（60 TPS 下每次 Update 为 1），负值按 0 处理。
type FrameDriver struct {
	world    *game.WorldState
	signals  *SignalSystem
	dayNight *DayNightSystem
	view     *ViewTransitionSystem
	ticks    int
}

// NewFrameDriver 创建帧驱动器
func NewFrameDriver(world *game.WorldState, signals *SignalSystem, dayNight *DayNightSystem, view *ViewTransitionSystem) *FrameDriver {
	return &FrameDriver{
		world:    world,
		signals:  signals,
		dayNight: dayNight,
		view:     view,
	}
}

// Ticks 已执行的帧数
func (d *FrameDriver) Ticks() int { return d.ticks }

// Tick 推进一帧
func (d *FrameDriver) Tick(delta float64) {
	if delta < 0 {
		delta = 0
	}
	w := d.world
	w.CaptureSnapshot()
	w.ElapsedTime += delta

	if w.Entities.Map != nil {
		w.Entities.Map.Update(w, delta)
	}
	for _, lh := range w.Entities.Lighthouses {
		lh.Update(w, delta)
	}
	if w.Entities.Boat != nil {
		w.Entities.Boat.Update(w, delta)
	}

	d.signals.Update(delta)
	d.dayNight.Update()
	d.view.Update(delta)
	d.ticks++
}

// Resize 窗口尺寸变化
// 聚焦实体的 Resize 交给协调器，在返回动画结束后再执行
func (d *FrameDriver) Resize(width, height float64) {
	w := d.world
	w.Width, w.Height = width, height

	if w.Entities.Map != nil {
		w.Entities.Map.Resize(width, height)
	}
	focused, _ := w.FocusedEntityID()
	for _, lh := range w.Entities.Lighthouses {
		if lh.ID() != focused {
			lh.Resize(width, height)
		}
	}
	if b := w.Entities.Boat; b != nil && b.ID() != focused {
		b.Resize(width, height)
	}

	d.dayNight.Update()
	d.view.Resize(width, height)
}
