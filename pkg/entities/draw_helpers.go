package entities

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/coastline/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 占位图形绘制工具
// 贴图缺失时实体用矢量图形绘制自身，所有颜色都是预乘 alpha 的 color.RGBA。

var whiteSubImage *ebiten.Image

// whiteImage 返回 DrawTriangles 使用的 1x1 白色子图
// 取 3x3 图像的中心像素，避免采样到边缘
func whiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ScaleAlpha 将预乘颜色整体乘以 alpha
func ScaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// LerpColor 在两种颜色之间线性插值
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// colorVertices 把顶点颜色设为 c*alpha
func colorVertices(vs []ebiten.Vertex, c color.RGBA, alpha float32) {
	r := float32(c.R) / 0xff * alpha
	g := float32(c.G) / 0xff * alpha
	b := float32(c.B) / 0xff * alpha
	a := float32(c.A) / 0xff * alpha
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}

// FillPolygon 填充多边形
func FillPolygon(dst *ebiten.Image, pts []components.Point, c color.RGBA, alpha float32) {
	if len(pts) < 3 || alpha <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, c, alpha)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteImage(), op)
}

// StrokePath 沿折线描边，vs/is 为可复用缓冲，返回扩容后的缓冲
func StrokePath(dst *ebiten.Image, pts []components.Point, width float32, c color.RGBA, alpha float32, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	vs = vs[:0]
	is = is[:0]
	if len(pts) < 2 || alpha <= 0 {
		return vs, is
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	sop := &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vs, is = path.AppendVerticesAndIndicesForStroke(vs, is, sop)
	colorVertices(vs, c, alpha)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteImage(), op)
	return vs, is
}

// localToScreen 将实体局部坐标按变换转换到屏幕坐标
// flip 为真时沿局部X轴镜像（船头朝左时保持甲板朝上）
func localToScreen(t components.Transform, lx, ly float64, flip bool) components.Point {
	if flip {
		ly = -ly
	}
	lx *= t.Scale
	ly *= t.Scale
	sin, cos := math.Sincos(t.Rotation)
	return components.Point{
		X: t.X + lx*cos - ly*sin,
		Y: t.Y + lx*sin + ly*cos,
	}
}

// DrawTexture 以 (anchorX, anchorY) 为锚点按变换绘制贴图
// baseSize 为贴图在 scale=1 时应占的宽度（像素）
func DrawTexture(dst, img *ebiten.Image, t components.Transform, baseSize, anchorX, anchorY float64, alpha float32) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}
	k := t.Scale * baseSize / w

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w*anchorX, -h*anchorY)
	op.GeoM.Scale(k, k)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
