// internal/clock/rate_counter.go
package clock

import "time"

// RateCounter считает события и раз в секунду публикует их количество.
type RateCounter struct {
	windowStart time.Time
	count       int
	rate        int
}

func NewRateCounter(start time.Time) *RateCounter {
	return &RateCounter{windowStart: start}
}

func (c *RateCounter) Add(n int) {
	c.count += n
}

// Roll публикует счётчик, если с начала окна прошла хотя бы секунда, и начинает новое окно.
func (c *RateCounter) Roll(now time.Time) bool {
	if now.Sub(c.windowStart) < time.Second {
		return false
	}
	c.rate = c.count
	c.count = 0
	c.windowStart = now
	return true
}

// Rate - количество событий за последнюю полную секунду.
func (c *RateCounter) Rate() int {
	return c.rate
}
