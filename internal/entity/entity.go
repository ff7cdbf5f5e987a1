// internal/entity/entity.go
package entity

import (
	"time"

	"circle-slide/internal/component"
	"circle-slide/pkg/render"
)

// Kind - тег варианта сущности. Набор вариантов закрыт.
type Kind uint8

const (
	KindNone Kind = iota
	KindAnimatedCircle
)

// Entity - объединение известных видов сущностей. Заполнено только поле, соответствующее Kind.
type Entity struct {
	Kind   Kind
	Circle *component.AnimatedCircle
}

func NewAnimatedCircle(c *component.AnimatedCircle) Entity {
	return Entity{Kind: KindAnimatedCircle, Circle: c}
}

// Integrate продвигает состояние сущности на фиксированный шаг.
func (e Entity) Integrate(dt time.Duration) {
	switch e.Kind {
	case KindAnimatedCircle:
		e.Circle.Integrate(dt)
	}
}

// Render рисует сущность на поверхности.
func (e Entity) Render(s render.Surface) {
	switch e.Kind {
	case KindAnimatedCircle:
		e.Circle.Render(s)
	}
}

// Trigger запускает поведение сущности по вводу пользователя.
func (e Entity) Trigger() {
	switch e.Kind {
	case KindAnimatedCircle:
		e.Circle.Trigger()
	}
}
