package scenes

import (
	"fmt"
	"strings"

	"github.com/gonewx/coastline/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// debugLines 调试叠加层的文本内容
func (s *CoastScene) debugLines() []string {
	w := s.world
	period := "day"
	if !w.IsDay {
		period = "night"
	}
	focus := "-"
	if id, ok := w.FocusedEntityID(); ok {
		if e, found := w.Entity(id); found {
			focus = fmt.Sprintf("%s (#%d)", e.Name(), id)
		}
	}

	target := s.seascape.WeatherTarget()

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("tick %d  elapsed %.0f", s.driver.Ticks(), w.ElapsedTime),
		fmt.Sprintf("phase %.3f (%s)  overlay %.2f", w.DayPhase, period, w.Sky.OverlayOpacity),
		fmt.Sprintf("wind %.2f @ %.2f rad -> %.2f @ %.2f rad", w.Weather.WindIntensity, w.Weather.WindDirection,
			target.WindIntensity, target.WindDirection),
		fmt.Sprintf("signals %d active / %d done", len(w.ActiveSignals), s.signals.Completed()),
		fmt.Sprintf("view %s  zoomed %v  tween %v", s.view.State(), w.IsZoomed(), s.view.InTransition()),
		fmt.Sprintf("focus %s", focus),
	}
	for _, lh := range s.lighthouses {
		lines = append(lines, fmt.Sprintf("  %s: sent %d, timer %.0f", lh.Name(), lh.SignalsSent(), lh.SignalTimer()))
	}
	if s.boat != nil {
		lines = append(lines, fmt.Sprintf("  %s: waypoint %d, received %d", s.boat.Name(), s.boat.TargetIndex(), s.boat.SignalsReceived()))
	}
	return lines
}

// drawDebug 绘制调试信息、船只航点和当前航向目标（F3 / D 切换）
func (s *CoastScene) drawDebug(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, strings.Join(s.debugLines(), "\n"), 8, 8)

	if s.boat == nil {
		return
	}
	c := entities.ScaleAlpha(colornames.Yellow, 0.6)
	for i := 0; i < s.boat.WaypointCount(); i++ {
		wp := s.boat.Waypoint(i)
		vector.StrokeCircle(screen, float32(wp.X), float32(wp.Y), 3, 1, c, false)
	}
	if s.boat.WaypointCount() == 0 {
		return
	}
	pos := s.boat.Transform().Position()
	target := s.boat.Waypoint(s.boat.TargetIndex())
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(target.X), float32(target.Y), 1, c, false)
	vector.StrokeCircle(screen, float32(target.X), float32(target.Y), 6, 1, c, false)
}
