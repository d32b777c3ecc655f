package game

import (
	"fmt"

	"github.com/gonewx/coastline/pkg/ecs"
)

// InputEventType 输入事件类型
type InputEventType int

const (
	// EventEntitySelected 点击/触摸选中了某个实体
	EventEntitySelected InputEventType = iota
	// EventBackAction 返回（Esc、退格、右键或面板返回按钮）
	EventBackAction
	// EventDebugToggle 切换调试叠加层
	EventDebugToggle
	// EventDayNightToggle 立即切换昼夜
	EventDayNightToggle
	// EventWindowResized 窗口尺寸变化
	EventWindowResized
)

// String 返回事件类型名称（日志用）
func (t InputEventType) String() string {
	switch t {
	case EventEntitySelected:
		return "entity-selected"
	case EventBackAction:
		return "back-action"
	case EventDebugToggle:
		return "debug-toggle"
	case EventDayNightToggle:
		return "day-night-toggle"
	case EventWindowResized:
		return "window-resized"
	default:
		return fmt.Sprintf("InputEventType(%d)", int(t))
	}
}

// InputEvent 一个离散输入事件
type InputEvent struct {
	Type     InputEventType
	EntityID ecs.EntityID // EventEntitySelected
	Width    float64      // EventWindowResized
	Height   float64      // EventWindowResized
}
