package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a displayable scene (e.g., the coastline).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// delta is the elapsed time in frames (1.0 at 60 TPS).
	Update(delta float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// EventHandler 是一个可选接口，接收离散输入事件
//
// 输入系统轮询 Ebitengine 后生成事件，场景只响应事件，从不直接读取输入状态。
type EventHandler interface {
	// HandleEvent 处理一个输入事件
	HandleEvent(event InputEvent)
}

// SceneCloser 是一个可选接口，场景被替换时释放它持有的资源（如详情面板）
type SceneCloser interface {
	Close()
}

// EntityPicker 是一个可选接口，把屏幕坐标解析为被点击的实体
type EntityPicker interface {
	// PickEntity 返回 (x, y) 处最上层的可聚焦实体
	PickEntity(x, y float64) (Entity, bool)
}
