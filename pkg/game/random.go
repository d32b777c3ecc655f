package game

import "math/rand"

// RandomSource 随机数来源
// 所有随机事件（环境脉冲、天气变化、灯塔相位）都从这里取值，
// 测试中替换为固定序列即可得到确定的结果。
type RandomSource interface {
	// Float64 返回 [0, 1) 区间的随机数
	Float64() float64
}

// NewRandomSource 创建以 seed 为种子的随机数来源
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
