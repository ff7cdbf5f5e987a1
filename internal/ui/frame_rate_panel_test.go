package ui

import (
	"image/color"
	"testing"

	"circle-slide/pkg/render"
)

func TestFrameRatePanelDraw(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	p := NewFrameRatePanel(10, 10, 180, 64, 8, 18, color.RGBA{A: 200}, white, white)

	rec := &render.Recorder{}
	p.Draw(rec, 240, 144)

	if len(rec.Filter(render.OpFillRect)) != 1 || len(rec.Filter(render.OpStrokeRect)) != 1 {
		t.Fatalf("expected one background and one border, got %+v", rec.Ops)
	}
	texts := rec.Filter(render.OpText)
	want := []string{"Frame Rates", "Physics FPS: 240", "Render FPS: 144"}
	if len(texts) != len(want) {
		t.Fatalf("text lines = %d, want %d", len(texts), len(want))
	}
	for i, op := range texts {
		if op.Text != want[i] {
			t.Errorf("line %d = %q, want %q", i, op.Text, want[i])
		}
		if op.X != 18 || op.Y != 18+float64(i)*18 {
			t.Errorf("line %d at (%v, %v)", i, op.X, op.Y)
		}
	}
	// Фон рисуется раньше текста
	if rec.Ops[0].Kind != render.OpFillRect {
		t.Errorf("first op = %v, want background", rec.Ops[0].Kind)
	}
}
