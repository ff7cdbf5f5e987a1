// internal/ui/frame_rate_panel.go
package ui

import (
	"fmt"
	"image/color"

	"circle-slide/pkg/render"
)

const panelTitle = "Frame Rates"

// FrameRatePanel - оверлей со счётчиками физики и отрисовки
type FrameRatePanel struct {
	X, Y          float32
	Width, Height float32
	Padding       float32
	LineHeight    float64
	Background    color.Color
	Border        color.Color
	TextColor     color.Color
}

func NewFrameRatePanel(x, y, width, height, padding float32, lineHeight float64, bg, border, textColor color.Color) *FrameRatePanel {
	return &FrameRatePanel{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Padding:    padding,
		LineHeight: lineHeight,
		Background: bg,
		Border:     border,
		TextColor:  textColor,
	}
}

// Lines возвращает строки панели в порядке вывода.
func (p *FrameRatePanel) Lines(physicsFPS, renderFPS int) []string {
	return []string{
		panelTitle,
		fmt.Sprintf("Physics FPS: %d", physicsFPS),
		fmt.Sprintf("Render FPS: %d", renderFPS),
	}
}

// Draw рисует фон, рамку и строки панели.
func (p *FrameRatePanel) Draw(s render.Surface, physicsFPS, renderFPS int) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, p.Background)
	s.StrokeRect(p.X, p.Y, p.Width, p.Height, 1, p.Border)

	x := float64(p.X + p.Padding)
	y := float64(p.Y + p.Padding)
	for i, line := range p.Lines(physicsFPS, renderFPS) {
		s.DrawText(line, x, y+float64(i)*p.LineHeight, p.TextColor)
	}
}
