package systems

import (
	"log"
	"math"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/entities"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/utils"
)

// toggleNudge 切换后相位落在目标区间内侧，避免浮点误差停在边界另一侧
const toggleNudge = 1e-6

// DayNightSystem 昼夜循环
//
// 相位完全由 ElapsedTime 和偏移量推导：
//
//	DayPhase = ((ElapsedTime + offset) mod CycleDuration) / CycleDuration
//
// 切换昼夜只调整偏移量，ElapsedTime 保持单调。
type DayNightSystem struct {
	world   *game.WorldState
	cfg     config.DayNightConfig
	palette config.PaletteConfig
	offset  float64 // 帧
}

// NewDayNightSystem 创建昼夜系统并立即计算初始天空
func NewDayNightSystem(world *game.WorldState, cfg config.DayNightConfig, palette config.PaletteConfig) *DayNightSystem {
	s := &DayNightSystem{
		world:   world,
		cfg:     cfg,
		palette: palette,
		offset:  cfg.StartPhase * cfg.CycleDuration,
	}
	phase := s.Phase()
	world.DayPhase = phase
	world.IsDay = phase < cfg.DayFraction
	world.Sky = s.skyState(phase)
	return s
}

// Phase 当前相位 [0, 1)
func (s *DayNightSystem) Phase() float64 {
	return utils.Wrap01((s.world.ElapsedTime + s.offset) / s.cfg.CycleDuration)
}

// Update 根据当前时间刷新相位、昼夜标志和天空外观
func (s *DayNightSystem) Update() {
	phase := s.Phase()
	isDay := phase < s.cfg.DayFraction
	if isDay != s.world.IsDay {
		if isDay {
			log.Printf("[DayNight] Dawn: day begins (phase=%.3f)", phase)
		} else {
			log.Printf("[DayNight] Dusk: night begins (phase=%.3f)", phase)
		}
		s.world.IsDay = isDay
	}
	s.world.DayPhase = phase
	s.world.Sky = s.skyState(phase)
}

// Toggle 立即跳到相反时段的起点（白天→入夜，夜晚→破晓）
func (s *DayNightSystem) Toggle() {
	target := toggleNudge
	if s.world.IsDay {
		target = s.cfg.DayFraction + toggleNudge
	}
	s.offset += (target - s.Phase()) * s.cfg.CycleDuration
	s.offset = math.Mod(s.offset, s.cfg.CycleDuration)
	if s.offset < 0 {
		s.offset += s.cfg.CycleDuration
	}
	s.Update()
}

// NightRamp 夜色强度 [0, 1]
//
//	[0, DF-w)    白天，0
//	[DF-w, DF)   黄昏，0 → 1
//	[DF, 1-w)    夜晚，1
//	[1-w, 1)     黎明，1 → 0
func (s *DayNightSystem) NightRamp(phase float64) float64 {
	w := s.cfg.TransitionDuration / s.cfg.CycleDuration
	df := s.cfg.DayFraction
	switch {
	case w <= 0:
		if phase < df {
			return 0
		}
		return 1
	case phase < df-w:
		return 0
	case phase < df:
		return utils.EaseInOutCubic((phase - (df - w)) / w)
	case phase < 1-w:
		return 1
	default:
		return 1 - utils.EaseInOutCubic((phase-(1-w))/w)
	}
}

func (s *DayNightSystem) skyState(phase float64) game.SkyState {
	ramp := s.NightRamp(phase)
	width, height := s.world.Width, s.world.Height

	// 正午（相位 DF/2）时太阳位于轨道最高点
	theta := 2*math.Pi*(phase-s.cfg.DayFraction/2) - math.Pi/2
	cx := width * s.cfg.CelestialCenterX
	cy := height * s.cfg.CelestialCenterY
	r := height * s.cfg.CelestialRadius
	sin, cos := math.Sincos(theta)

	return game.SkyState{
		OverlayOpacity: ramp * s.cfg.NightOpacity,
		Tint:           entities.LerpColor(s.palette.DayTint.Color(), s.palette.NightTint.Color(), ramp),
		SkyColor:       entities.LerpColor(s.palette.SkyDay.Color(), s.palette.SkyNight.Color(), ramp),
		Sun:            components.Point{X: cx + r*cos, Y: cy + r*sin},
		Moon:           components.Point{X: cx - r*cos, Y: cy - r*sin},
		CelestialSize:  math.Max(8, height*0.035),
	}
}
