// internal/event/types.go
package event

const (
	CloseRequested   EventType = "CloseRequested"   // окно просят закрыть
	MouseLeftPressed EventType = "MouseLeftPressed" // нажата левая кнопка мыши
	RatesPublished   EventType = "RatesPublished"   // опубликованы счётчики за секунду
)

// MousePosition - данные события MouseLeftPressed
type MousePosition struct {
	X, Y int
}

// Rates - данные события RatesPublished
type Rates struct {
	PhysicsFPS int
	RenderFPS  int
}
