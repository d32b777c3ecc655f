package modules

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/gonewx/coastline/pkg/config"
	"github.com/gonewx/coastline/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DetailPanelConfig 详情面板内容
type DetailPanelConfig struct {
	Title        string     // 标题（实体名称）
	Lines        []string   // 正文行
	Accent       color.RGBA // 标题颜色（灯塔信号色）
	Background   color.RGBA // 面板背景
	WindowWidth  float64    // 创建时的窗口尺寸
	WindowHeight float64
}

// DetailPanelModule 实体详情面板
//
// 职责：
//   - 用 ebitenui 构建右侧停靠的面板（标题、说明、返回按钮）
//   - 面板先绘制到离屏图像，再按淡入淡出 alpha 合成到屏幕
//   - 返回按钮通过 onBack 回调交还给视角切换协调器
//
// 面板只在聚焦期间存在，Close 后不可复用。
type DetailPanelModule struct {
	ui        *ebitenui.UI
	offscreen *ebiten.Image
	onBack    func()
	closed    bool
}

// NewDetailPanelModule 创建详情面板
//
// 参数:
//   - cfg: 面板内容
//   - onBack: 返回按钮回调，可为 nil
func NewDetailPanelModule(cfg DetailPanelConfig, onBack func()) *DetailPanelModule {
	m := &DetailPanelModule{onBack: onBack}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panelImg := imageui.NewNineSliceColor(cfg.Background)
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x44, B: 0x55, A: 0xFF})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x5A, B: 0x70, A: 0xFF})
	textColor := color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

	panelWidth := config.DetailPanelWidth(cfg.WindowWidth)
	panelHeight := int(cfg.WindowHeight * 0.7)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, panelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(cfg.Title, &face, cfg.Accent),
	))
	textWidth := float64(panelWidth - 48)
	for _, line := range cfg.Lines {
		for _, wrapped := range utils.WrapText(line, face, textWidth) {
			panel.AddChild(widget.NewText(
				widget.TextOpts.Text(wrapped, &face, textColor),
			))
		}
	}

	backBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text("Back", &face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if m.onBack != nil && !m.closed {
				m.onBack()
			}
		}),
	)
	panel.AddChild(backBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	log.Printf("[DetailPanel] Created: %s", cfg.Title)
	return m
}

// Update 处理面板交互
func (m *DetailPanelModule) Update() {
	if m.closed {
		return
	}
	m.ui.Update()
}

// Draw 以 alpha 不透明度绘制面板
func (m *DetailPanelModule) Draw(screen *ebiten.Image, alpha float32) {
	if m.closed || alpha <= 0 {
		return
	}

	bounds := screen.Bounds()
	if m.offscreen == nil || m.offscreen.Bounds().Size() != bounds.Size() {
		if m.offscreen != nil {
			m.offscreen.Deallocate()
		}
		m.offscreen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	m.offscreen.Clear()
	m.ui.Draw(m.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(m.offscreen, op)
}

// Close 释放离屏图像，之后的 Update/Draw 均为空操作
func (m *DetailPanelModule) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.offscreen != nil {
		m.offscreen.Deallocate()
		m.offscreen = nil
	}
	log.Printf("[DetailPanel] Closed")
}
