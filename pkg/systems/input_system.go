package systems

import (
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 轮询 Ebitengine 输入并转换为离散事件
//
// 按键映射：
//   - Escape / Backspace / 鼠标右键：返回
//   - F3 / D：调试信息开关
//   - N：切换昼夜
//   - 左键点击或触摸：命中测试后选中实体
//
// 窗口尺寸变化由 Layout 上报，在下一次 Poll 时作为事件发出。
type InputSystem struct {
	picker game.EntityPicker
	events []game.InputEvent

	width, height int
	sizeChanged   bool
}

// NewInputSystem 创建输入系统
// picker 用于把点击位置转换为实体，可为 nil（不产生选中事件）
func NewInputSystem(picker game.EntityPicker) *InputSystem {
	return &InputSystem{
		picker: picker,
		events: make([]game.InputEvent, 0, 4),
	}
}

// ObserveLayout 记录当前窗口尺寸，变化时在下一次 Poll 发出 WindowResized
func (s *InputSystem) ObserveLayout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.sizeChanged = true
}

// Poll 返回本帧产生的事件，返回的切片在下一次 Poll 前有效
func (s *InputSystem) Poll() []game.InputEvent {
	s.events = s.events[:0]

	if s.sizeChanged {
		s.sizeChanged = false
		s.events = append(s.events, game.InputEvent{
			Type:   game.EventWindowResized,
			Width:  float64(s.width),
			Height: float64(s.height),
		})
	}

	back := utils.SecondaryJustPressed()
	if back || utils.AnyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace) {
		s.events = append(s.events, game.InputEvent{Type: game.EventBackAction})
	}
	if utils.AnyKeyJustPressed(ebiten.KeyF3, ebiten.KeyD) {
		s.events = append(s.events, game.InputEvent{Type: game.EventDebugToggle})
	}
	if utils.AnyKeyJustPressed(ebiten.KeyN) {
		s.events = append(s.events, game.InputEvent{Type: game.EventDayNightToggle})
	}

	// 双指返回手势的第二个触点不参与选中
	if pressed, x, y := utils.PointerJustPressed(); pressed && !back {
		if ev, ok := s.pick(float64(x), float64(y)); ok {
			s.events = append(s.events, ev)
		}
	}
	return s.events
}

// pick 命中测试，未命中任何实体时不产生事件
func (s *InputSystem) pick(x, y float64) (game.InputEvent, bool) {
	if s.picker == nil {
		return game.InputEvent{}, false
	}
	e, ok := s.picker.PickEntity(x, y)
	if !ok {
		return game.InputEvent{}, false
	}
	return game.InputEvent{Type: game.EventEntitySelected, EntityID: e.ID()}, true
}
