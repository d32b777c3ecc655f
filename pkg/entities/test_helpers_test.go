package entities

import (
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/game"
)

// seqRandom 按固定序列返回随机数，序列用完后返回 fallback
type seqRandom struct {
	values   []float64
	fallback float64
	calls    int
}

func (r *seqRandom) Float64() float64 {
	r.calls++
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// newTestScene 返回默认场景配置的副本
func newTestScene() *config.SceneConfig {
	return config.DefaultSceneConfig()
}

// newTestWorld 创建 1000x1000 的世界状态
func newTestWorld() *game.WorldState {
	return game.NewWorldState(1000, 1000)
}
