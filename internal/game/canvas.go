package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-backdrop/internal/ambient"
)

const (
	glowTextureSize = 64
	glowStrength    = 0.6
)

// glowImage renders a white disc whose alpha falls off with the square of
// the distance from its centre. Tinted and blended additively it stands in
// for a canvas shadow blur.
func glowImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			t := clamp01(1 - d/c)
			a := uint8(t * t * 255)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return img
}

// imageCanvas draws the backdrop onto an ebiten image.
type imageCanvas struct {
	dst   *ebiten.Image
	glow  *ebiten.Image
	white *ebiten.Image // 1x1 source for stroked paths
	verts []ebiten.Vertex
	idx   []uint16
}

func newImageCanvas() *imageCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &imageCanvas{
		glow:  ebiten.NewImageFromImage(glowImage(glowTextureSize)),
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (c *imageCanvas) Fill(clr color.RGBA, alpha float64) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), withAlpha(clr, alpha), false)
}

func (c *imageCanvas) FillCircle(x, y, r float64, clr color.RGBA, alpha, glow float64) {
	c.halo(x, y, r+glow, clr, alpha, glow)
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), withAlpha(clr, alpha), true)
}

func (c *imageCanvas) FillRect(x, y, w, h float64, clr color.RGBA, alpha, glow float64) {
	c.halo(x+w/2, y+h/2, math.Max(w, h)/2+glow, clr, alpha, glow)
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), withAlpha(clr, alpha), true)
}

// halo draws the glow texture centred on (x, y) with the given radius.
func (c *imageCanvas) halo(x, y, radius float64, clr color.RGBA, alpha, glow float64) {
	if glow <= 0 || alpha <= 0 {
		return
	}
	scale := 2 * radius / glowTextureSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowTextureSize/2, -glowTextureSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha * glowStrength)))
	op.Blend = ebiten.BlendLighter
	c.dst.DrawImage(c.glow, op)
}

func (c *imageCanvas) StrokePath(pts []ambient.Point, width float64, clr color.RGBA, alpha float64) {
	if len(pts) < 2 || alpha <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	c.verts, c.idx = path.AppendVerticesAndIndicesForStroke(c.verts[:0], c.idx[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r, g, b := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff
	a := float32(clamp01(alpha))
	for i := range c.verts {
		c.verts[i].SrcX = 1
		c.verts[i].SrcY = 1
		c.verts[i].ColorR = r
		c.verts[i].ColorG = g
		c.verts[i].ColorB = b
		c.verts[i].ColorA = a
	}
	c.dst.DrawTriangles(c.verts, c.idx, c.white, &ebiten.DrawTrianglesOptions{})
}
