package entities

import (
	"image/color"

	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sky 天空背景与昼夜覆盖层
// 只负责绘制，外观参数由昼夜系统写入 WorldState.Sky
type Sky struct {
	sun  color.RGBA
	moon color.RGBA
}

func NewSky(palette config.PaletteConfig) *Sky {
	return &Sky{sun: palette.Sun.Color(), moon: palette.Moon.Color()}
}

// DrawBackground 绘制天空底色与日月（海面随后覆盖海平线以下部分）
func (s *Sky) DrawBackground(screen *ebiten.Image, sky game.SkyState, width, height float64, alpha float32) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), ScaleAlpha(sky.SkyColor, alpha), false)

	r := float32(sky.CelestialSize)
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(sky.Sun.X), float32(sky.Sun.Y), r*1.6, ScaleAlpha(s.sun, alpha*0.25), true)
	vector.DrawFilledCircle(screen, float32(sky.Sun.X), float32(sky.Sun.Y), r, ScaleAlpha(s.sun, alpha), true)
	vector.DrawFilledCircle(screen, float32(sky.Moon.X), float32(sky.Moon.Y), r*0.8, ScaleAlpha(s.moon, alpha), true)
}

// DrawOverlay 叠加夜间色调
func (s *Sky) DrawOverlay(screen *ebiten.Image, sky game.SkyState, width, height float64) {
	if sky.OverlayOpacity <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), ScaleAlpha(sky.Tint, float32(sky.OverlayOpacity)), false)
}
