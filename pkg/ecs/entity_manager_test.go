package ecs

import "testing"

type testEntity struct {
	name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	// 只分配ID不计入数量
	if em.Len() != 0 {
		t.Errorf("Expected 0 bound entities, got %d", em.Len())
	}
}

func TestSetAndGet(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	id := em.CreateEntity()
	em.Set(id, &testEntity{name: "north"})

	got, ok := em.Get(id)
	if !ok {
		t.Fatal("Entity should be found")
	}
	if got.name != "north" {
		t.Errorf("Expected name 'north', got '%s'", got.name)
	}

	if _, ok := em.Get(99); ok {
		t.Error("Unknown ID should not be found")
	}
}

func TestSetZeroIDIgnored(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	em.Set(0, &testEntity{name: "invalid"})
	if em.Len() != 0 {
		t.Errorf("Zero ID must not be registered, Len = %d", em.Len())
	}
}

func TestEachKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	names := []string{"a", "b", "c", "d"}
	ids := make([]EntityID, 0, len(names))
	for _, n := range names {
		id := em.CreateEntity()
		ids = append(ids, id)
		em.Set(id, &testEntity{name: n})
	}

	// 重复绑定不改变顺序
	em.Set(ids[1], &testEntity{name: "b2"})

	var visited []string
	em.Each(func(id EntityID, e *testEntity) bool {
		visited = append(visited, e.name)
		return true
	})

	expected := []string{"a", "b2", "c", "d"}
	if len(visited) != len(expected) {
		t.Fatalf("Expected %d entities, got %d", len(expected), len(visited))
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], visited[i])
		}
	}
}

func TestEachStopsEarly(t *testing.T) {
	em := NewEntityManager[*testEntity]()
	for i := 0; i < 5; i++ {
		em.Set(em.CreateEntity(), &testEntity{})
	}

	count := 0
	em.Each(func(id EntityID, e *testEntity) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Expected iteration to stop after 2, got %d", count)
	}
}
