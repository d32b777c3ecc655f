package game

import (
	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// Animator 每帧更新并绘制自身的可视对象（海面、灯塔、船只）
type Animator interface {
	// Update 推进 delta 帧。只能修改自身字段，可以通过 w.SpawnSignal 追加信号，
	// 跨实体状态只能从 w.Snapshot 读取（帧开始时的值）。
	Update(w *WorldState, delta float64)

	// Resize 按屏幕比例重新计算位置，幂等，可在动画中途调用
	Resize(width, height float64)

	// Draw 以 alpha 不透明度绘制
	Draw(screen *ebiten.Image, alpha float32)
}

// Entity 可被选中聚焦的场景实体（灯塔、科考船）
type Entity interface {
	Animator

	ID() ecs.EntityID
	Name() string

	// Transform 当前可视变换；SetTransform 供视角切换协调器在聚焦期间驱动
	Transform() components.Transform
	SetTransform(t components.Transform)

	// Contains 命中测试（屏幕坐标）
	Contains(x, y float64) bool

	// CreateDetailView 构建详情面板，onBack 由面板的返回按钮调用
	CreateDetailView(onBack func()) DetailView

	// OnFocusEnter / OnFocusExit 聚焦开始与结束回调
	OnFocusEnter()
	OnFocusExit()
}

// DetailView 详情面板句柄
type DetailView interface {
	// Update 处理面板自身的交互（按钮等）
	Update()
	// Draw 以 alpha 不透明度绘制面板
	Draw(screen *ebiten.Image, alpha float32)
	// Close 释放面板资源
	Close()
}
