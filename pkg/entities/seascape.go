package entities

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const waveSegment = 16.0

// Seascape 海面与海岸（场景的地图层）
//
// 持有天气状态：每帧以 ChangeChance 的概率选取新的风力/风向目标，
// 再以 EaseRate 平滑靠拢，结果写回 WorldState.Weather 供下一帧快照使用。
type Seascape struct {
	water   config.WaterConfig
	weather config.WeatherConfig
	sea     color.RGBA
	crest   color.RGBA
	land    color.RGBA
	rng     game.RandomSource

	current    game.Weather
	target     game.Weather
	wavePhase  float64
	width      float64
	height     float64
	wavePoints []components.Point
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
}

// NewSeascape 创建海面
func NewSeascape(scene *config.SceneConfig, rng game.RandomSource) *Seascape {
	calm := game.Weather{
		WindIntensity: scene.Weather.MinWind + (scene.Weather.MaxWind-scene.Weather.MinWind)*0.25,
	}
	return &Seascape{
		water:   scene.Water,
		weather: scene.Weather,
		sea:     scene.Palette.Sea.Color(),
		crest:   scene.Palette.WaveCrest.Color(),
		land:    scene.Palette.Land.Color(),
		rng:     rng,
		current: calm,
		target:  calm,
	}
}

// WeatherTarget 当前天气正在靠拢的目标
func (s *Seascape) WeatherTarget() game.Weather { return s.target }

// HorizonY 海平线的屏幕Y坐标
func (s *Seascape) HorizonY() float64 { return s.water.HorizonY * s.height }

func (s *Seascape) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Update 推进天气和浪相位
func (s *Seascape) Update(w *game.WorldState, delta float64) {
	if s.rng != nil && s.weather.ChangeChance > 0 && s.rng.Float64() < s.weather.ChangeChance {
		s.target = game.Weather{
			WindIntensity: s.weather.MinWind + s.rng.Float64()*(s.weather.MaxWind-s.weather.MinWind),
			WindDirection: utils.NormalizeAngle(s.rng.Float64() * 2 * math.Pi),
		}
		if w.Debug {
			log.Printf("[Seascape] Weather target: wind=%.2f dir=%.2f", s.target.WindIntensity, s.target.WindDirection)
		}
	}

	if delta > 0 {
		k := math.Min(1, s.weather.EaseRate*delta)
		s.current.WindIntensity += (s.target.WindIntensity - s.current.WindIntensity) * k
		s.current.WindDirection = utils.NormalizeAngle(s.current.WindDirection +
			utils.NormalizeAngle(s.target.WindDirection-s.current.WindDirection)*k)
		s.wavePhase = math.Mod(s.wavePhase+s.water.WaveSpeed*delta*(1+s.current.WindIntensity), 2*math.Pi)
	}

	w.Weather = s.current
}

// Draw 绘制海水、浪线和海岸
func (s *Seascape) Draw(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 || s.width <= 0 {
		return
	}
	horizon := s.HorizonY()
	vector.DrawFilledRect(screen, 0, float32(horizon), float32(s.width), float32(s.height-horizon), ScaleAlpha(s.sea, alpha), false)

	s.drawWaves(screen, horizon, alpha)
	s.drawCoast(screen, horizon, alpha)
}

func (s *Seascape) drawWaves(screen *ebiten.Image, horizon float64, alpha float32) {
	rows := s.water.WaveRows
	if rows <= 0 {
		return
	}
	spacing := (s.height - horizon) / float64(rows+1)
	amp := s.water.WaveAmplitude * (1 + s.current.WindIntensity)
	// 风向决定浪线的水平漂移方向
	drift := math.Cos(s.current.WindDirection)

	for i := 0; i < rows; i++ {
		base := horizon + spacing*float64(i+1)
		// 越靠近观察者浪越高、越明显
		depth := float64(i+1) / float64(rows)
		s.wavePoints = s.wavePoints[:0]
		for x := 0.0; x <= s.width+waveSegment; x += waveSegment {
			y := base + math.Sin(x*0.02+s.wavePhase*drift+float64(i)*1.3)*amp*depth
			s.wavePoints = append(s.wavePoints, components.Point{X: x, Y: y})
		}
		s.strokeVs, s.strokeIs = StrokePath(screen, s.wavePoints, float32(1+depth), s.crest, alpha*float32(0.3+0.5*depth), s.strokeVs, s.strokeIs)
	}
}

func (s *Seascape) drawCoast(screen *ebiten.Image, horizon float64, alpha float32) {
	coast := s.water.CoastX * s.width
	pts := []components.Point{
		{X: 0, Y: horizon - 12},
		{X: coast * 0.6, Y: horizon - 18},
		{X: coast, Y: horizon},
	}
	// 海岸线向下蜿蜒
	for y := horizon; y <= s.height; y += 40 {
		pts = append(pts, components.Point{X: coast + math.Sin(y*0.015)*coast*0.12, Y: y})
	}
	pts = append(pts, components.Point{X: 0, Y: s.height})
	FillPolygon(screen, pts, s.land, alpha)
}
