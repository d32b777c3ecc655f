package game

import (
	"image/color"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/ecs"
)

// Weather 天气参数
type Weather struct {
	WindIntensity float64 // 风力 [MinWind, MaxWind]
	WindDirection float64 // 风向（弧度）
}

// SkyState 由昼夜系统每帧从相位推导出的天空外观
type SkyState struct {
	OverlayOpacity float64          // 夜间覆盖层不透明度
	Tint           color.RGBA       // 覆盖层色调
	SkyColor       color.RGBA       // 天空底色
	Sun            components.Point // 太阳位置
	Moon           components.Point // 月亮位置（与太阳关于圆心对称）
	CelestialSize  float64          // 日月半径
}

// Entities 世界持有的实体引用（非拥有）
type Entities struct {
	Map         Animator
	Boat        Entity
	Lighthouses []Entity
}

// TickSnapshot 帧开始时的跨实体状态
// 同一帧内任何实体都不能读到其他实体本帧更新后的值。
type TickSnapshot struct {
	BoatPosition components.Point
	HasBoat      bool
	Weather      Weather
	IsZoomed     bool
}

// WorldState 场景唯一的共享可变状态
//
// 由帧驱动器每帧推进，由输入处理修改聚焦状态。
// 不变式：IsZoomed() 为真当且仅当存在聚焦实体。聚焦标志由 focusedEntityID
// 推导，只能通过 SetFocus/ClearFocus 修改，两者不可能单独为空。
type WorldState struct {
	ElapsedTime float64 // 单调递增的帧时间累加器
	IsDay       bool
	DayPhase    float64 // [0, 1)
	Weather     Weather
	Sky         SkyState

	Entities      Entities
	Registry      *ecs.EntityManager[Entity]
	ActiveSignals []*components.Signal
	Snapshot      TickSnapshot

	Width  float64
	Height float64
	Debug  bool

	focusedEntityID ecs.EntityID
}

// NewWorldState 创建世界状态
func NewWorldState(width, height float64) *WorldState {
	return &WorldState{
		IsDay:         true,
		Registry:      ecs.NewEntityManager[Entity](),
		ActiveSignals: make([]*components.Signal, 0, 32),
		Width:         width,
		Height:        height,
	}
}

// IsZoomed 是否处于聚焦（详情视图）模式
func (w *WorldState) IsZoomed() bool {
	return w.focusedEntityID != 0
}

// FocusedEntityID 返回当前聚焦的实体ID
func (w *WorldState) FocusedEntityID() (ecs.EntityID, bool) {
	return w.focusedEntityID, w.focusedEntityID != 0
}

// SetFocus 聚焦到指定实体
// 已聚焦或实体未注册时返回 false（同一时间只能聚焦一个实体）。
func (w *WorldState) SetFocus(id ecs.EntityID) bool {
	if w.IsZoomed() {
		return false
	}
	if _, ok := w.Registry.Get(id); !ok {
		return false
	}
	w.focusedEntityID = id
	return true
}

// ClearFocus 退出聚焦
func (w *WorldState) ClearFocus() {
	w.focusedEntityID = 0
}

// NewEntityID 分配实体ID
func (w *WorldState) NewEntityID() ecs.EntityID {
	return w.Registry.CreateEntity()
}

// SetMap 设置海面/天气动画对象
func (w *WorldState) SetMap(m Animator) {
	w.Entities.Map = m
}

// SetBoat 注册科考船
func (w *WorldState) SetBoat(boat Entity) {
	w.Entities.Boat = boat
	w.Registry.Set(boat.ID(), boat)
}

// AddLighthouse 注册灯塔
func (w *WorldState) AddLighthouse(lh Entity) {
	w.Entities.Lighthouses = append(w.Entities.Lighthouses, lh)
	w.Registry.Set(lh.ID(), lh)
}

// Entity 按ID查找实体
func (w *WorldState) Entity(id ecs.EntityID) (Entity, bool) {
	return w.Registry.Get(id)
}

// SpawnSignal 追加一个活动信号（实体只能追加，不能移除）
func (w *WorldState) SpawnSignal(sig *components.Signal) {
	if sig == nil {
		return
	}
	w.ActiveSignals = append(w.ActiveSignals, sig)
}

// CaptureSnapshot 记录帧开始时的跨实体状态
func (w *WorldState) CaptureSnapshot() {
	w.Snapshot = TickSnapshot{
		Weather:  w.Weather,
		IsZoomed: w.IsZoomed(),
	}
	if w.Entities.Boat != nil {
		w.Snapshot.BoatPosition = w.Entities.Boat.Transform().Position()
		w.Snapshot.HasBoat = true
	}
}
