package components

import "github.com/gonewx/coastline/pkg/ecs"

// FocusTransition 聚焦前的实体变换快照
//
// 在进入聚焦时创建一次，直到退出动画结束时才被消费和丢弃；
// 期间即使退出打断了进入动画，也不允许覆盖。
type FocusTransition struct {
	EntityID ecs.EntityID
	Saved    Transform
}
