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

const boatTextureKey = "boat"

// Boat 科考船实体
//
// 沿循环航线航行，朝向以比例控制平滑转向目标方位。
// 起伏（bob）只影响绘制，不改变 Transform，因此信号始终瞄准航线上的真实位置。
// 收到灯塔信号后在下一次 Update 时向外发出回应脉冲。
type Boat struct {
	id         ecs.EntityID
	cfg        config.BoatConfig
	signals    config.SignalConfig
	pulseColor color.RGBA
	hullColor  color.RGBA
	panelBg    color.RGBA
	rm         *game.ResourceManager

	transform components.Transform
	waypoints []components.Point // 屏幕坐标
	target    int                // 当前目标航点下标
	focused   bool

	bobOffset float64 // 仅用于绘制的垂直偏移
	bobTilt   float64 // 仅用于绘制的横摇角

	pendingPulses int
	received      int
	legs          int

	width, height float64
	placed        bool
}

// NewBoat 创建科考船
// 位置在第一次 Resize 时放到首个航点，之后按屏幕比例缩放
func NewBoat(id ecs.EntityID, cfg config.BoatConfig, scene *config.SceneConfig, rm *game.ResourceManager) *Boat {
	b := &Boat{
		id:         id,
		cfg:        cfg,
		signals:    scene.Signals,
		pulseColor: scene.Palette.Pulse.Color(),
		hullColor:  scene.Palette.Hull.Color(),
		panelBg:    scene.Palette.Panel.Color(),
		rm:         rm,
		transform:  components.Transform{Scale: cfg.Scale},
		waypoints:  make([]components.Point, len(cfg.Waypoints)),
	}
	if len(cfg.Waypoints) > 1 {
		b.target = 1
	}
	return b
}

func (b *Boat) ID() ecs.EntityID { return b.id }
func (b *Boat) Name() string     { return b.cfg.Name }

func (b *Boat) Transform() components.Transform { return b.transform }

func (b *Boat) SetTransform(t components.Transform) { b.transform = t }

// TargetIndex 当前目标航点下标
func (b *Boat) TargetIndex() int { return b.target }

// Waypoint 返回第 i 个航点的屏幕坐标
func (b *Boat) Waypoint(i int) components.Point { return b.waypoints[i] }

// WaypointCount 航点数量
func (b *Boat) WaypointCount() int { return len(b.waypoints) }

// BobOffset 当前绘制用起伏偏移
func (b *Boat) BobOffset() float64 { return b.bobOffset }

// SignalsReceived 已收到的定向信号数量
func (b *Boat) SignalsReceived() int { return b.received }

// Resize 重新计算航点；当前位置按宽高比例缩放
func (b *Boat) Resize(width, height float64) {
	for i, wp := range b.cfg.Waypoints {
		x, y := config.FractionToScreen(wp.X, wp.Y, width, height)
		b.waypoints[i] = components.Point{X: x, Y: y}
	}
	switch {
	case !b.placed:
		if len(b.waypoints) > 0 {
			b.transform.X, b.transform.Y = b.waypoints[0].X, b.waypoints[0].Y
			if len(b.waypoints) > 1 {
				next := b.waypoints[1]
				b.transform.Rotation = math.Atan2(next.Y-b.transform.Y, next.X-b.transform.X)
			}
		}
		b.placed = true
	case b.width > 0 && b.height > 0:
		b.transform.X *= width / b.width
		b.transform.Y *= height / b.height
	}
	b.width, b.height = width, height
}

// ReceiveSignal 定向信号到达时由信号系统调用
func (b *Boat) ReceiveSignal(c color.RGBA) {
	b.pendingPulses++
	b.received++
}

// Update 发出待回应的脉冲、计算起伏并沿航线移动
func (b *Boat) Update(w *game.WorldState, delta float64) {
	for ; b.pendingPulses > 0; b.pendingPulses-- {
		pos := b.transform.Position()
		w.SpawnSignal(components.NewPulseSignal(pos, b.signals.PulseMaxRadius*b.transform.Scale, b.signals.PulseSpeed, b.pulseColor))
	}

	// 起伏幅度随风力增大，读取帧开始时的天气
	wind := 1 + w.Snapshot.Weather.WindIntensity
	phase := w.ElapsedTime * b.cfg.BobFrequency
	b.bobOffset = (math.Sin(phase) + 0.4*math.Cos(phase*0.63)) * b.cfg.BobAmplitude * wind
	b.bobTilt = math.Sin(phase*0.8) * 0.05 * wind

	if b.focused || delta <= 0 {
		return
	}
	b.followPath(delta)
}

// followPath 向目标航点前进一步
// 到达阈值内的那一帧只切换目标，不移动，避免单帧跨越多个航点
func (b *Boat) followPath(delta float64) {
	if len(b.waypoints) < 2 {
		return
	}
	tgt := b.waypoints[b.target]
	dx := tgt.X - b.transform.X
	dy := tgt.Y - b.transform.Y
	dist := utils.Distance(b.transform.X, b.transform.Y, tgt.X, tgt.Y)

	if dist < b.cfg.ArriveThreshold {
		b.target = (b.target + 1) % len(b.waypoints)
		b.legs++
		return
	}

	step := math.Min(b.cfg.Speed*delta, dist)
	b.transform.X += dx / dist * step
	b.transform.Y += dy / dist * step

	desired := math.Atan2(dy, dx)
	diff := utils.NormalizeAngle(desired - b.transform.Rotation)
	gain := math.Min(1, b.cfg.RotationSpeed*delta)
	b.transform.Rotation = utils.NormalizeAngle(b.transform.Rotation + diff*gain)
}

// Contains 命中测试：以船身中心为准的包围盒，包含起伏范围
func (b *Boat) Contains(x, y float64) bool {
	halfL := config.BoatBaseLength/2*b.transform.Scale + hitPadding
	halfH := config.BoatBaseHeight*b.transform.Scale + b.cfg.BobAmplitude*2
	return math.Abs(x-b.transform.X) <= halfL && math.Abs(y-b.transform.Y) <= halfH
}

// CreateDetailView 构建科考船详情面板
func (b *Boat) CreateDetailView(onBack func()) game.DetailView {
	lines := append([]string(nil), b.cfg.Description...)
	lines = append(lines,
		"",
		fmt.Sprintf("Heading: %.0f deg", utils.NormalizeAngle(b.transform.Rotation)*180/math.Pi),
		fmt.Sprintf("Next waypoint: %d / %d", b.target+1, len(b.waypoints)),
		fmt.Sprintf("Legs completed: %d", b.legs),
		fmt.Sprintf("Signals received: %d", b.received),
	)
	return modules.NewDetailPanelModule(modules.DetailPanelConfig{
		Title:        b.cfg.Name,
		Lines:        lines,
		Accent:       b.pulseColor,
		Background:   b.panelBg,
		WindowWidth:  b.width,
		WindowHeight: b.height,
	}, onBack)
}

func (b *Boat) OnFocusEnter() {
	b.focused = true
	log.Printf("[Boat] %s focused", b.cfg.Name)
}

func (b *Boat) OnFocusExit() {
	b.focused = false
}

// renderTransform 叠加起伏后的绘制变换
func (b *Boat) renderTransform() components.Transform {
	t := b.transform
	t.Y += b.bobOffset
	t.Rotation += b.bobTilt
	return t
}

// Draw 绘制船只
func (b *Boat) Draw(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	t := b.renderTransform()
	// 船头朝左时镜像，保持上层建筑在上方
	flip := math.Cos(b.transform.Rotation) < 0

	if tex, ok := b.rm.Texture(boatTextureKey); ok {
		if flip {
			t.Rotation += math.Pi
		}
		DrawTexture(screen, tex, t, config.BoatBaseLength, 0.5, 0.5, alpha)
		return
	}

	const (
		l = config.BoatBaseLength
		h = config.BoatBaseHeight
	)
	hull := []components.Point{
		localToScreen(t, -l/2, -h*0.1, flip),
		localToScreen(t, l/2+4, -h*0.1, flip),
		localToScreen(t, l/2-6, h*0.3, flip),
		localToScreen(t, -l/2+4, h*0.3, flip),
	}
	FillPolygon(screen, hull, b.hullColor, alpha)

	cabin := []components.Point{
		localToScreen(t, -l*0.25, -h*0.1, flip),
		localToScreen(t, l*0.1, -h*0.1, flip),
		localToScreen(t, l*0.1, -h*0.4, flip),
		localToScreen(t, -l*0.25, -h*0.4, flip),
	}
	FillPolygon(screen, cabin, colornames.Whitesmoke, alpha)

	mastBase := localToScreen(t, -l*0.05, -h*0.4, flip)
	mastTop := localToScreen(t, -l*0.05, -h*0.7, flip)
	vector.StrokeLine(screen, float32(mastBase.X), float32(mastBase.Y), float32(mastTop.X), float32(mastTop.Y), 1.5, ScaleAlpha(colornames.Dimgray, alpha), true)

	if b.focused {
		c := b.transform.Position()
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(l*0.7*b.transform.Scale), 1.5, ScaleAlpha(b.pulseColor, alpha), true)
	}
}
