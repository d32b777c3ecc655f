package systems

import (
	"log"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/utils"
)

// ViewState 视角切换状态
type ViewState int

const (
	ViewNormal        ViewState = iota // 全景
	ViewEnteringFocus                  // 聚焦动画中
	ViewFocused                        // 聚焦完成，显示详情面板
	ViewExitingFocus                   // 返回动画中
)

func (s ViewState) String() string {
	switch s {
	case ViewNormal:
		return "normal"
	case ViewEnteringFocus:
		return "entering"
	case ViewFocused:
		return "focused"
	case ViewExitingFocus:
		return "exiting"
	default:
		return "unknown"
	}
}

// ViewTransitionSystem 全景与单实体详情视图之间的切换协调器
//
// 状态机：Normal → EnteringFocus → Focused → ExitingFocus → Normal
//
//   - 聚焦标志在 Select 时同步设置，在返回动画结束时清除；
//     IsZoomed 表示逻辑模式，InTransition 表示动画是否进行中，两者独立
//   - 进入动画途中返回：立即用反向补间替换当前补间，不排队
//   - 捕获的 FocusTransition 在整个聚焦期间只写一次，退出时逐位还原
//   - 聚焦期间的窗口缩放：聚焦实体自身的 Resize 推迟到退出完成后执行
type ViewTransitionSystem struct {
	world *game.WorldState
	cfg   config.FocusConfig

	state ViewState
	focus *components.FocusTransition
	tween *components.TransformTween
	panel game.DetailView

	siblingAlpha float64
	siblingFrom  float64
	siblingTo    float64
	panelAlpha   float64
	panelFrom    float64
	panelTo      float64

	resizePending bool
	resizeWidth   float64
	resizeHeight  float64
}

// NewViewTransitionSystem 创建视角切换协调器
func NewViewTransitionSystem(world *game.WorldState, cfg config.FocusConfig) *ViewTransitionSystem {
	return &ViewTransitionSystem{
		world:        world,
		cfg:          cfg,
		siblingAlpha: 1,
	}
}

// State 当前状态
func (v *ViewTransitionSystem) State() ViewState { return v.state }

// InTransition 是否有补间正在进行
func (v *ViewTransitionSystem) InTransition() bool { return v.tween != nil }

// SiblingAlpha 非聚焦画面的不透明度
func (v *ViewTransitionSystem) SiblingAlpha() float64 { return v.siblingAlpha }

// PanelAlpha 详情面板的不透明度
func (v *ViewTransitionSystem) PanelAlpha() float64 { return v.panelAlpha }

// Panel 当前详情面板，没有时返回 nil
func (v *ViewTransitionSystem) Panel() game.DetailView { return v.panel }

// FocusTransition 返回聚焦时捕获的记录副本
func (v *ViewTransitionSystem) FocusTransition() (components.FocusTransition, bool) {
	if v.focus == nil {
		return components.FocusTransition{}, false
	}
	return *v.focus, true
}

// Select 聚焦到指定实体
// 已聚焦（包括动画进行中）或实体不存在时忽略并返回 false。
func (v *ViewTransitionSystem) Select(id ecs.EntityID) bool {
	if v.state != ViewNormal || v.world.IsZoomed() {
		return false
	}
	e, ok := v.world.Entity(id)
	if !ok {
		return false
	}

	captured := e.Transform()
	if !v.world.SetFocus(id) {
		return false
	}
	v.focus = &components.FocusTransition{EntityID: id, Saved: captured}

	e.OnFocusEnter()
	v.panel = e.CreateDetailView(func() { v.Back() })

	v.tween = components.NewTransformTween(captured, v.focalTransform(captured), v.cfg.EnterDuration, utils.EaseInOutCubic)
	v.siblingFrom, v.siblingTo = v.siblingAlpha, v.cfg.DimAlpha
	v.panelFrom, v.panelTo = v.panelAlpha, 1
	v.state = ViewEnteringFocus

	log.Printf("[ViewTransition] Focus -> %s (id=%d)", e.Name(), id)
	return true
}

// Back 返回全景
// 只在 EnteringFocus 和 Focused 状态下有效，其余状态忽略并返回 false。
func (v *ViewTransitionSystem) Back() bool {
	if v.state != ViewEnteringFocus && v.state != ViewFocused {
		return false
	}
	e, ok := v.world.Entity(v.focus.EntityID)
	if !ok {
		v.finishExit()
		return true
	}

	if v.state == ViewEnteringFocus {
		log.Printf("[ViewTransition] Back during enter, reversing from %.0f%%", v.tween.Progress()*100)
	}

	v.tween = components.NewTransformTween(e.Transform(), v.focus.Saved, v.cfg.ExitDuration, utils.EaseInOutCubic)
	v.siblingFrom, v.siblingTo = v.siblingAlpha, 1
	v.panelFrom, v.panelTo = v.panelAlpha, 0
	v.state = ViewExitingFocus
	return true
}

// Close 立即结束聚焦并关闭详情面板（场景被替换时调用），未聚焦时为空操作
func (v *ViewTransitionSystem) Close() {
	if v.focus != nil {
		v.finishExit()
	}
}

// Update 推进补间；面板交互也在这里处理
func (v *ViewTransitionSystem) Update(delta float64) {
	if v.panel != nil && v.state != ViewExitingFocus {
		v.panel.Update()
	}
	if v.tween == nil {
		return
	}

	current, done := v.tween.Advance(delta)
	v.siblingAlpha = utils.Lerp(v.siblingFrom, v.siblingTo, v.tween.Eased())
	// 面板淡入淡出比镜头移动先到位
	v.panelAlpha = utils.Lerp(v.panelFrom, v.panelTo, utils.EaseOutCubic(v.tween.Progress()))

	if e, ok := v.focusedEntity(); ok {
		e.SetTransform(current)
	}
	if !done {
		return
	}

	switch v.state {
	case ViewEnteringFocus:
		v.tween = nil
		v.state = ViewFocused
	case ViewExitingFocus:
		v.finishExit()
	}
}

// Resize 窗口尺寸变化（在 world.Width/Height 更新之后调用）
func (v *ViewTransitionSystem) Resize(width, height float64) {
	if v.state == ViewNormal {
		return
	}
	v.resizePending = true
	v.resizeWidth, v.resizeHeight = width, height

	switch v.state {
	case ViewEnteringFocus:
		v.tween.To = v.focalTransform(v.focus.Saved)
	case ViewFocused:
		if e, ok := v.focusedEntity(); ok {
			e.SetTransform(v.focalTransform(v.focus.Saved))
		}
	}
}

func (v *ViewTransitionSystem) focusedEntity() (game.Entity, bool) {
	if v.focus == nil {
		return nil, false
	}
	return v.world.Entity(v.focus.EntityID)
}

// focalTransform 聚焦目标变换
func (v *ViewTransitionSystem) focalTransform(captured components.Transform) components.Transform {
	return components.Transform{
		X:     v.world.Width * v.cfg.FocalX,
		Y:     v.world.Height * v.cfg.FocalY,
		Scale: captured.Scale * v.cfg.Scale,
	}
}

// finishExit 退出完成：还原变换、关闭面板、清除聚焦
func (v *ViewTransitionSystem) finishExit() {
	e, ok := v.focusedEntity()
	if ok {
		e.SetTransform(v.focus.Saved)
		e.OnFocusExit()
	}
	if v.panel != nil {
		v.panel.Close()
		v.panel = nil
	}

	v.world.ClearFocus()
	v.tween = nil
	v.focus = nil
	v.siblingAlpha = 1
	v.panelAlpha = 0
	v.state = ViewNormal

	if ok && v.resizePending {
		e.Resize(v.resizeWidth, v.resizeHeight)
	}
	v.resizePending = false
	log.Printf("[ViewTransition] Back to overview")
}
