// pkg/render/recorder.go
package render

import "image/color"

// OpKind - тип записанной операции рисования.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillCircle
	OpFillRect
	OpStrokeRect
	OpText
)

// Op - одна записанная операция. Неиспользуемые поля нулевые.
type Op struct {
	Kind          OpKind
	X, Y          float64
	Width, Height float64
	Radius        float64
	Text          string
	Color         color.Color
}

// Recorder запоминает вызовы вместо рисования. Нужен тестам сцены.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: float64(cx), Y: float64(cy), Radius: float64(radius), Color: c})
}

func (r *Recorder) FillRect(x, y, width, height float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height), Color: c})
}

func (r *Recorder) StrokeRect(x, y, width, height, strokeWidth float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: float64(x), Y: float64(y), Width: float64(width), Height: float64(height), Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

// Filter возвращает операции указанного типа в порядке записи.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
