// internal/component/animated_circle.go
package component

import (
	"image/color"
	"time"

	"circle-slide/internal/utils"
	"circle-slide/pkg/render"
)

// AnimationState - фаза анимации круга
type AnimationState int

const (
	Idle AnimationState = iota
	Animating
)

func (s AnimationState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Animating:
		return "Animating"
	}
	return "Unknown"
}

// AnimatedCircle - круг, который по клику проезжает между двумя точками по оси X.
// Каждый запуск меняет направление на противоположное.
type AnimatedCircle struct {
	Radius   float64
	Y        float64 // верхний край круга, строка не меняется
	Duration time.Duration
	Color    color.RGBA

	startX  float64
	endX    float64
	x       float64 // левый край круга
	elapsed time.Duration
	active  bool
}

// NewAnimatedCircle создаёт круг в точке startX. Концы хранятся уже переставленными,
// как после предыдущего запуска, поэтому первый Trigger ведёт круг startX -> endX.
// Это сознательно отличается от порядка "сначала переставить, потом ехать" без
// предварительной перестановки: там первый клик бросал круг в endX и вёз обратно.
func NewAnimatedCircle(radius, startX, endX, y float64, duration time.Duration, c color.RGBA) *AnimatedCircle {
	return &AnimatedCircle{
		Radius:   radius,
		Y:        y,
		Duration: duration,
		Color:    c,
		startX:   endX,
		endX:     startX,
		x:        startX,
	}
}

// Trigger запускает анимацию в обратную сторону. Повторный вызов во время движения
// бросает текущую анимацию: следующий Integrate интерполирует от переставленных концов,
// а не от текущей позиции, поэтому круг скачком переходит на новый старт.
func (c *AnimatedCircle) Trigger() {
	c.startX, c.endX = c.endX, c.startX
	c.elapsed = 0
	c.active = true
}

// Integrate продвигает анимацию на dt. Без активной анимации ничего не делает.
func (c *AnimatedCircle) Integrate(dt time.Duration) {
	if !c.active {
		return
	}
	c.elapsed += dt
	t := utils.Clamp01(float64(c.elapsed) / float64(c.Duration))
	if t >= 1 {
		c.elapsed = c.Duration
		c.active = false
	}
	c.x = utils.Lerp(c.startX, c.endX, t)
}

// Render рисует круг. Состояние не меняется.
func (c *AnimatedCircle) Render(s render.Surface) {
	r := float32(c.Radius)
	// Позиция задаёт левый верхний угол описанного квадрата
	s.FillCircle(float32(c.x)+r, float32(c.Y)+r, r, c.Color)
}

func (c *AnimatedCircle) X() float64 { return c.x }

func (c *AnimatedCircle) Elapsed() time.Duration { return c.elapsed }

// Endpoints возвращает концы текущей (или последней) анимации.
func (c *AnimatedCircle) Endpoints() (start, end float64) {
	return c.startX, c.endX
}

func (c *AnimatedCircle) State() AnimationState {
	if c.active {
		return Animating
	}
	return Idle
}
