// pkg/render/surface.go
package render

import "image/color"

// Surface - минимальный набор операций рисования, который нужен сцене.
// Координаты в пикселях окна, (0, 0) - левый верхний угол.
type Surface interface {
	Clear(c color.Color)
	FillCircle(cx, cy, radius float32, c color.Color)
	FillRect(x, y, width, height float32, c color.Color)
	StrokeRect(x, y, width, height, strokeWidth float32, c color.Color)
	DrawText(s string, x, y float64, c color.Color)
}

// Discard - поверхность без вывода, для headless-режима.
type Discard struct{}

func (Discard) Clear(color.Color) {}

func (Discard) FillCircle(cx, cy, radius float32, c color.Color) {}

func (Discard) FillRect(x, y, width, height float32, c color.Color) {}

func (Discard) StrokeRect(x, y, width, height, strokeWidth float32, c color.Color) {}

func (Discard) DrawText(s string, x, y float64, c color.Color) {}
