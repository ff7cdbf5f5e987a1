// internal/clock/time_provider.go
package clock

import "time"

// TimeProvider - источник текущего времени для игрового цикла.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime отдаёт time.Now() с монотонными показаниями.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime - часы, которые двигаются только вручную. Нужны тестам цикла.
type ManualTime struct {
	now time.Time
}

func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time { return m.now }

func (m *ManualTime) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

func (m *ManualTime) Set(t time.Time) {
	m.now = t
}
