package entities

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/ecs"
	"github.com/gonewx/coastline/pkg/game"
	"github.com/gonewx/coastline/pkg/modules"
	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	lighthouseTextureKey = "lighthouse"
	beamLength           = 160.0
	beamHalfAngle        = 0.12
	hitPadding           = 6.0
)

// Lighthouse 灯塔实体
//
// 周期性地向科考船发射定向信号，并按概率向四周发出环境脉冲。
// 聚焦模式下两种信号都暂停，但计时器照常推进（不会在退出后补发）。
type Lighthouse struct {
	id      ecs.EntityID
	cfg     config.LighthouseConfig
	signals config.SignalConfig
	panelBg color.RGBA

	rm       *game.ResourceManager
	rng      game.RandomSource
	receiver components.SignalReceiver

	transform components.Transform
	focused   bool

	signalTimer float64 // 距上次定向信号经过的帧数
	blinkOffset float64
	lampLevel   float64 // 灯光亮度 [0,1]
	beamAngle   float64
	signalsSent int
	pulsesSent  int

	width, height float64
}

// NewLighthouse 创建灯塔
//
// 参数:
//   - id: 实体ID
//   - cfg: 灯塔配置
//   - scene: 场景配置（信号参数与面板配色）
//   - rng: 随机数来源，用于初始相位和环境脉冲；nil 表示无随机行为
//   - rm: 资源管理器，可为 nil（使用占位图形）
func NewLighthouse(id ecs.EntityID, cfg config.LighthouseConfig, scene *config.SceneConfig, rng game.RandomSource, rm *game.ResourceManager) *Lighthouse {
	l := &Lighthouse{
		id:        id,
		cfg:       cfg,
		signals:   scene.Signals,
		panelBg:   scene.Palette.Panel.Color(),
		rm:        rm,
		rng:       rng,
		transform: components.Transform{Scale: cfg.Scale},
	}
	// 随机初始相位，避免多座灯塔同步发射
	if rng != nil {
		l.signalTimer = rng.Float64() * cfg.SignalPeriod
		l.blinkOffset = rng.Float64() * 2 * math.Pi
		l.beamAngle = utils.NormalizeAngle(rng.Float64() * 2 * math.Pi)
	}
	return l
}

// SetReceiver 设置定向信号到达时通知的对象（通常是科考船）
func (l *Lighthouse) SetReceiver(r components.SignalReceiver) {
	l.receiver = r
}

func (l *Lighthouse) ID() ecs.EntityID { return l.id }
func (l *Lighthouse) Name() string     { return l.cfg.Name }

func (l *Lighthouse) Transform() components.Transform { return l.transform }

func (l *Lighthouse) SetTransform(t components.Transform) { l.transform = t }

// SignalsSent 已发射的定向信号数量
func (l *Lighthouse) SignalsSent() int { return l.signalsSent }

// SignalTimer 当前计时器值（帧）
func (l *Lighthouse) SignalTimer() float64 { return l.signalTimer }

// Resize 按屏幕比例重新计算塔基位置
func (l *Lighthouse) Resize(width, height float64) {
	l.width, l.height = width, height
	l.transform.X, l.transform.Y = config.FractionToScreen(l.cfg.X, l.cfg.Y, width, height)
}

// LampPosition 灯室中心（信号起点）
func (l *Lighthouse) LampPosition() components.Point {
	return localToScreen(l.transform, 0, -(config.LighthouseBaseHeight - config.LighthouseLampInset), false)
}

// Update 推进灯光动画和信号计时器
func (l *Lighthouse) Update(w *game.WorldState, delta float64) {
	l.lampLevel = 0.5 + 0.5*math.Sin(w.ElapsedTime*l.cfg.BlinkSpeed+l.blinkOffset)
	l.beamAngle = utils.NormalizeAngle(l.beamAngle + l.cfg.BeamSpeed*delta)

	if delta <= 0 {
		return
	}

	l.signalTimer += delta
	if l.signalTimer >= l.cfg.SignalPeriod {
		// 单帧最多发射一次，超出部分折算回周期内
		l.signalTimer = math.Mod(l.signalTimer, l.cfg.SignalPeriod)
		if !w.IsZoomed() {
			l.emitDirectional(w)
		}
	}

	if !w.IsZoomed() && l.cfg.AmbientPulseChance > 0 && l.rng != nil {
		if l.rng.Float64() < l.cfg.AmbientPulseChance {
			l.emitPulse(w)
		}
	}
}

func (l *Lighthouse) emitDirectional(w *game.WorldState) {
	if !w.Snapshot.HasBoat {
		return
	}
	target := w.Snapshot.BoatPosition
	sig, ok := components.NewDirectionalSignal(l.LampPosition(), &target, l.signals.DirectionalSpeed, l.cfg.Color.Color())
	if !ok {
		return
	}
	sig.WaveAmplitude = l.signals.WaveAmplitude
	sig.WaveFrequency = l.signals.WaveFrequency
	sig.Receiver = l.receiver
	w.SpawnSignal(sig)
	l.signalsSent++
	if w.Debug {
		log.Printf("[Lighthouse] %s: signal #%d -> (%.0f, %.0f)", l.cfg.ID, l.signalsSent, target.X, target.Y)
	}
}

func (l *Lighthouse) emitPulse(w *game.WorldState) {
	sig := components.NewPulseSignal(l.LampPosition(), l.signals.PulseMaxRadius*l.transform.Scale, l.signals.PulseSpeed, l.cfg.Color.Color())
	w.SpawnSignal(sig)
	l.pulsesSent++
}

// Contains 命中测试：塔身包围盒加少量边距
func (l *Lighthouse) Contains(x, y float64) bool {
	halfW := config.LighthouseBaseWidth/2*l.transform.Scale + hitPadding
	top := l.transform.Y - config.LighthouseBaseHeight*l.transform.Scale - hitPadding
	return x >= l.transform.X-halfW && x <= l.transform.X+halfW &&
		y >= top && y <= l.transform.Y+hitPadding
}

// CreateDetailView 构建灯塔详情面板
func (l *Lighthouse) CreateDetailView(onBack func()) game.DetailView {
	lines := append([]string(nil), l.cfg.Description...)
	lines = append(lines,
		"",
		fmt.Sprintf("Signal period: %.1f s", l.cfg.SignalPeriod/60),
		fmt.Sprintf("Signals sent: %d", l.signalsSent),
		fmt.Sprintf("Ambient pulses: %d", l.pulsesSent),
	)
	return modules.NewDetailPanelModule(modules.DetailPanelConfig{
		Title:        l.cfg.Name,
		Lines:        lines,
		Accent:       l.cfg.Color.Color(),
		Background:   l.panelBg,
		WindowWidth:  l.width,
		WindowHeight: l.height,
	}, onBack)
}

func (l *Lighthouse) OnFocusEnter() {
	l.focused = true
	log.Printf("[Lighthouse] %s focused", l.cfg.ID)
}

func (l *Lighthouse) OnFocusExit() {
	l.focused = false
}

// Draw 绘制灯塔：光束、塔身、灯室
func (l *Lighthouse) Draw(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	l.drawBeam(screen, alpha)

	if tex, ok := l.rm.Texture(lighthouseTextureKey); ok {
		DrawTexture(screen, tex, l.transform, config.LighthouseBaseWidth, 0.5, 1, alpha)
	} else {
		l.drawPlaceholder(screen, alpha)
	}

	lamp := l.LampPosition()
	lampColor := LerpColor(color.RGBA{R: 0x80, G: 0x70, B: 0x30, A: 0xff}, l.cfg.Color.Color(), l.lampLevel)
	vector.DrawFilledCircle(screen, float32(lamp.X), float32(lamp.Y), float32(5*l.transform.Scale), ScaleAlpha(lampColor, alpha), true)
	if l.focused {
		vector.StrokeCircle(screen, float32(lamp.X), float32(lamp.Y), float32(9*l.transform.Scale), 1.5, ScaleAlpha(l.cfg.Color.Color(), alpha), true)
	}
}

func (l *Lighthouse) drawBeam(screen *ebiten.Image, alpha float32) {
	lamp := l.LampPosition()
	length := beamLength * l.transform.Scale
	left := components.Point{
		X: lamp.X + math.Cos(l.beamAngle-beamHalfAngle)*length,
		Y: lamp.Y + math.Sin(l.beamAngle-beamHalfAngle)*length,
	}
	right := components.Point{
		X: lamp.X + math.Cos(l.beamAngle+beamHalfAngle)*length,
		Y: lamp.Y + math.Sin(l.beamAngle+beamHalfAngle)*length,
	}
	FillPolygon(screen, []components.Point{lamp, left, right}, l.cfg.Color.Color(), alpha*float32(0.15+0.2*l.lampLevel))
}

func (l *Lighthouse) drawPlaceholder(screen *ebiten.Image, alpha float32) {
	const (
		w   = config.LighthouseBaseWidth
		h   = config.LighthouseBaseHeight
		top = h - config.LighthouseLampInset*2
	)
	t := l.transform
	body := []components.Point{
		localToScreen(t, -w/2, 0, false),
		localToScreen(t, w/2, 0, false),
		localToScreen(t, w*0.3, -top, false),
		localToScreen(t, -w*0.3, -top, false),
	}
	FillPolygon(screen, body, colornames.Whitesmoke, alpha)

	// 两道红色横纹
	for _, band := range [][2]float64{{0.2, 0.35}, {0.55, 0.7}} {
		y0, y1 := band[0]*top, band[1]*top
		hw0 := w/2 - (w*0.2)*band[0]
		hw1 := w/2 - (w*0.2)*band[1]
		stripe := []components.Point{
			localToScreen(t, -hw0, -y0, false),
			localToScreen(t, hw0, -y0, false),
			localToScreen(t, hw1, -y1, false),
			localToScreen(t, -hw1, -y1, false),
		}
		FillPolygon(screen, stripe, colornames.Firebrick, alpha)
	}

	// 灯室
	room := []components.Point{
		localToScreen(t, -w*0.35, -top, false),
		localToScreen(t, w*0.35, -top, false),
		localToScreen(t, w*0.35, -h+2, false),
		localToScreen(t, -w*0.35, -h+2, false),
	}
	FillPolygon(screen, room, colornames.Darkslategray, alpha)
	roof := []components.Point{
		localToScreen(t, -w*0.45, -h+2, false),
		localToScreen(t, w*0.45, -h+2, false),
		localToScreen(t, 0, -h-6, false),
	}
	FillPolygon(screen, roof, colornames.Firebrick, alpha)
}
