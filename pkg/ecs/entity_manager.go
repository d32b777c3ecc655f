package ecs

// EntityID 是实体的唯一标识符
// 0 保留为无效ID（世界状态用它表示"没有聚焦实体"）
type EntityID uint64

// EntityManager 管理场景中所有可交互实体
//
// 按创建顺序保存实体，保证遍历顺序稳定（渲染层级和命中测试依赖这一点）。
// 实体由各自的构造者拥有，EntityManager 只持有非拥有引用用于按ID分发。
type EntityManager[T any] struct {
	nextID   uint64
	entities map[EntityID]T
	order    []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:   1, // ID从1开始,0保留为无效ID
		entities: make(map[EntityID]T),
		order:    make([]EntityID, 0),
	}
}

// CreateEntity 分配新的唯一ID（尚未绑定实体）
func (em *EntityManager[T]) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

// Set 绑定实体到ID，重复绑定会替换旧值但保留原有顺序
func (em *EntityManager[T]) Set(id EntityID, entity T) {
	if id == 0 {
		return
	}
	if _, exists := em.entities[id]; !exists {
		em.order = append(em.order, id)
	}
	em.entities[id] = entity
}

// Get 按ID查找实体
func (em *EntityManager[T]) Get(id EntityID) (T, bool) {
	entity, ok := em.entities[id]
	return entity, ok
}

// Each 按创建顺序遍历实体，fn 返回 false 时停止
func (em *EntityManager[T]) Each(fn func(id EntityID, entity T) bool) {
	for _, id := range em.order {
		if !fn(id, em.entities[id]) {
			return
		}
	}
}

// Len 返回实体数量
func (em *EntityManager[T]) Len() int {
	return len(em.order)
}
