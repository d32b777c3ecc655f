package systems

import (
	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/game"
)

// SignalSystem 推进所有活动信号
// 完成的信号在同一帧内通知接收方、释放资源并移出列表，其余信号保持原有顺序。
type SignalSystem struct {
	world     *game.WorldState
	completed int
}

// NewSignalSystem 创建信号系统
func NewSignalSystem(world *game.WorldState) *SignalSystem {
	return &SignalSystem{world: world}
}

// Completed 累计完成的信号数量
func (s *SignalSystem) Completed() int {
	return s.completed
}

// Update 推进信号进度
func (s *SignalSystem) Update(delta float64) {
	active := s.world.ActiveSignals
	kept := active[:0]
	for _, sig := range active {
		if !sig.Advance(delta) {
			kept = append(kept, sig)
			continue
		}
		if sig.Kind == components.SignalDirectional && sig.Receiver != nil {
			sig.Receiver.ReceiveSignal(sig.Color)
		}
		sig.Release()
		s.completed++
	}
	// 清掉尾部残留指针，让已完成的信号可以被回收
	for i := len(kept); i < len(active); i++ {
		active[i] = nil
	}
	s.world.ActiveSignals = kept
}
