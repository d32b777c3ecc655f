package systems

import (
	"math"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/entities"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 定向信号折线的最大分段数
const signalSegments = 32

// RenderSystem 按层绘制场景
//
// 绘制顺序（从下到上）：
//
//	天空与日月 → 海面/海岸 → 灯塔 → 船只 → 信号 → 夜间覆盖层 → 聚焦实体 → 详情面板
//
// 聚焦期间除聚焦实体和面板外的所有图层按 SiblingAlpha 淡出。
type RenderSystem struct {
	world *game.WorldState
	sky   *entities.Sky
	view  *ViewTransitionSystem

	pathPoints []components.Point
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(world *game.WorldState, sky *entities.Sky, view *ViewTransitionSystem) *RenderSystem {
	return &RenderSystem{
		world:      world,
		sky:        sky,
		view:       view,
		pathPoints: make([]components.Point, 0, signalSegments+1),
	}
}

// Draw 绘制整个场景
func (r *RenderSystem) Draw(screen *ebiten.Image) {
	w := r.world
	sibling := float32(r.view.SiblingAlpha())
	focusedID, zoomed := w.FocusedEntityID()

	r.sky.DrawBackground(screen, w.Sky, w.Width, w.Height, sibling)
	if w.Entities.Map != nil {
		w.Entities.Map.Draw(screen, sibling)
	}

	var focused game.Entity
	for _, lh := range w.Entities.Lighthouses {
		if zoomed && lh.ID() == focusedID {
			focused = lh
			continue
		}
		lh.Draw(screen, sibling)
	}
	if b := w.Entities.Boat; b != nil {
		if zoomed && b.ID() == focusedID {
			focused = b
		} else {
			b.Draw(screen, sibling)
		}
	}

	r.drawSignals(screen, sibling)
	r.sky.DrawOverlay(screen, w.Sky, w.Width, w.Height)

	if focused != nil {
		focused.Draw(screen, 1)
	}
	if panel := r.view.Panel(); panel != nil {
		panel.Draw(screen, float32(r.view.PanelAlpha()))
	}
}

func (r *RenderSystem) drawSignals(screen *ebiten.Image, alpha float32) {
	for _, sig := range r.world.ActiveSignals {
		switch sig.Kind {
		case components.SignalDirectional:
			r.drawDirectional(screen, sig, alpha)
		case components.SignalPulse:
			radius := float32(sig.PulseRadius())
			if radius <= 0 {
				continue
			}
			a := alpha * float32(sig.PulseAlpha())
			vector.StrokeCircle(screen, float32(sig.Origin.X), float32(sig.Origin.Y), radius, 2, entities.ScaleAlpha(sig.Color, a), true)
		}
	}
}

// drawDirectional 从起点沿正弦扰动路径画到当前进度，复用信号自带的顶点缓冲
func (r *RenderSystem) drawDirectional(screen *ebiten.Image, sig *components.Signal, alpha float32) {
	if sig.Progress <= 0 {
		return
	}
	n := int(math.Ceil(sig.Progress * signalSegments))
	if n < 1 {
		n = 1
	}
	r.pathPoints = r.pathPoints[:0]
	for i := 0; i <= n; i++ {
		u := sig.Progress * float64(i) / float64(n)
		r.pathPoints = append(r.pathPoints, sig.PathPoint(u))
	}
	sig.Vertices, sig.Indices = entities.StrokePath(screen, r.pathPoints, 2, sig.Color, alpha*0.8, sig.Vertices, sig.Indices)

	head := r.pathPoints[len(r.pathPoints)-1]
	vector.DrawFilledCircle(screen, float32(head.X), float32(head.Y), 3.5, entities.ScaleAlpha(sig.Color, alpha), true)
}
