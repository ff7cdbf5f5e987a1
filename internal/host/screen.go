// internal/host/screen.go
package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen рисует на кадре ebiten. Кадр привязывается заново в каждом Draw.
type Screen struct {
	target *ebiten.Image
	face   text.Face
}

func NewScreen(face text.Face) *Screen {
	return &Screen{face: face}
}

// Bind задаёт изображение, на котором будет рисоваться текущий кадр.
func (s *Screen) Bind(target *ebiten.Image) {
	s.target = target
}

func (s *Screen) Clear(c color.Color) {
	s.target.Fill(c)
}

func (s *Screen) FillCircle(cx, cy, radius float32, c color.Color) {
	vector.DrawFilledCircle(s.target, cx, cy, radius, c, true)
}

func (s *Screen) FillRect(x, y, width, height float32, c color.Color) {
	vector.DrawFilledRect(s.target, x, y, width, height, c, true)
}

func (s *Screen) StrokeRect(x, y, width, height, strokeWidth float32, c color.Color) {
	vector.StrokeRect(s.target, x, y, width, height, strokeWidth, c, true)
}

func (s *Screen) DrawText(str string, x, y float64, c color.Color) {
	if s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.face, op)
}
