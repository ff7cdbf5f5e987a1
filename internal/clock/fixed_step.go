// internal/clock/fixed_step.go
package clock

import (
	"iter"
	"time"
)

// FixedStep отделяет частоту симуляции от частоты кадров.
// Реальное время копится в аккумуляторе и расходуется шагами фиксированной длины.
type FixedStep struct {
	tick         time.Duration
	maxFrameTime time.Duration
	lastTime     time.Time
	accumulator  time.Duration
}

// NewFixedStep создаёт планировщик, отсчитывающий время от start.
// Шаг короче 1 нс поднимается до 1 нс, иначе DrainTicks никогда не закончится.
func NewFixedStep(tick, maxFrameTime time.Duration, start time.Time) *FixedStep {
	if tick <= 0 {
		tick = time.Nanosecond
	}
	return &FixedStep{
		tick:         tick,
		maxFrameTime: maxFrameTime,
		lastTime:     start,
	}
}

// Advance добавляет в аккумулятор время, прошедшее с прошлого вызова.
// Время кадра ограничено отрезком [0, maxFrameTime]: часы, ушедшие назад, дают ноль.
func (f *FixedStep) Advance(now time.Time) time.Duration {
	frameTime := now.Sub(f.lastTime)
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > f.maxFrameTime {
		frameTime = f.maxFrameTime
	}
	f.lastTime = now
	f.accumulator += frameTime
	return frameTime
}

// DrainTicks выдаёт по одному шагу, пока в аккумуляторе хватает времени.
// Если цикл range прерван, неизрасходованное время остаётся до следующего кадра.
func (f *FixedStep) DrainTicks() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for f.accumulator >= f.tick {
			f.accumulator -= f.tick
			if !yield(f.tick) {
				return
			}
		}
	}
}

func (f *FixedStep) Tick() time.Duration        { return f.tick }
func (f *FixedStep) Accumulator() time.Duration { return f.accumulator }
