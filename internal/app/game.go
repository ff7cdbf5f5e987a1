// internal/app/game.go
package app

import (
	"errors"
	"image/color"
	"time"

	"circle-slide/internal/clock"
	"circle-slide/internal/component"
	"circle-slide/internal/config"
	"circle-slide/internal/entity"
	"circle-slide/internal/event"
	"circle-slide/internal/ui"
	"circle-slide/pkg/render"

	"go.uber.org/zap"
)

// ErrClosed возвращается из Update после запроса на закрытие окна.
var ErrClosed = errors.New("window closed")

// Game holds the loop state: clock, the circle and the frame-rate counters.
// Окно и ввод живут снаружи, поэтому Game можно гонять в тестах с ручными часами.
type Game struct {
	log        *zap.Logger
	scheduler  *clock.FixedStep
	circle     entity.Entity
	physics    *clock.RateCounter
	frames     *clock.RateCounter
	dispatcher *event.Dispatcher
	panel      *ui.FrameRatePanel
	background color.Color
	closed     bool
}

// NewGame creates the loop state; start is the first clock sample.
func NewGame(cfg *config.Config, log *zap.Logger, start time.Time) *Game {
	circle := component.NewAnimatedCircle(
		cfg.Circle.Radius,
		cfg.Circle.StartX,
		cfg.Circle.EndX,
		cfg.Circle.Y,
		cfg.Circle.Duration,
		config.CircleColor,
	)
	g := &Game{
		log:        log,
		scheduler:  clock.NewFixedStep(cfg.Loop.TickDuration(), cfg.Loop.MaxFrameTime, start),
		circle:     entity.NewAnimatedCircle(circle),
		physics:    clock.NewRateCounter(start),
		frames:     clock.NewRateCounter(start),
		dispatcher: event.NewDispatcher(),
		panel: ui.NewFrameRatePanel(
			config.PanelX, config.PanelY,
			config.PanelWidth, config.PanelHeight,
			config.PanelPadding, config.LineHeight,
			config.PanelColor, config.PanelBorderColor, config.TextLightColor,
		),
		background: config.BackgroundColor,
	}

	listener := &GameEventListener{game: g}
	g.dispatcher.Subscribe(event.MouseLeftPressed, listener)
	g.dispatcher.Subscribe(event.CloseRequested, listener)
	g.dispatcher.Subscribe(event.RatesPublished, listener)
	return g
}

// Update выполняет всё, что предшествует отрисовке кадра: ввод, время, фиксированные шаги.
func (g *Game) Update(now time.Time, input []event.Event) error {
	for _, e := range input {
		g.dispatcher.Dispatch(e)
	}
	if g.closed {
		return ErrClosed
	}

	g.scheduler.Advance(now)
	ticks := 0
	for dt := range g.scheduler.DrainTicks() {
		g.circle.Integrate(dt)
		ticks++
	}
	g.physics.Add(ticks)

	// Оба счётчика стартуют одновременно, поэтому окна у них общие
	published := g.physics.Roll(now)
	g.frames.Roll(now)
	if published {
		g.dispatcher.Dispatch(event.Event{
			Type: event.RatesPublished,
			Data: event.Rates{PhysicsFPS: g.physics.Rate(), RenderFPS: g.frames.Rate()},
		})
	}
	return nil
}

// Draw отрисовывает кадр и засчитывает его в счётчик отрисовки.
func (g *Game) Draw(s render.Surface) {
	s.Clear(g.background)
	g.circle.Render(s)
	g.panel.Draw(s, g.physics.Rate(), g.frames.Rate())
	g.frames.Add(1)
}

func (g *Game) PhysicsFPS() int { return g.physics.Rate() }
func (g *Game) RenderFPS() int  { return g.frames.Rate() }

func (g *Game) Circle() *component.AnimatedCircle { return g.circle.Circle }

// Dispatcher отдаёт шину событий игры, чтобы хост мог подписаться на публикации счётчиков.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

func (g *Game) Closed() bool { return g.closed }

// GameEventListener связывает события ввода с состоянием игры.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MouseLeftPressed:
		l.game.circle.Trigger()
		start, end := l.game.circle.Circle.Endpoints()
		l.game.log.Debug("circle triggered", zap.Float64("from", start), zap.Float64("to", end))
	case event.CloseRequested:
		l.game.closed = true
		l.game.log.Info("close requested")
	case event.RatesPublished:
		if rates, ok := e.Data.(event.Rates); ok {
			l.game.log.Debug("frame rates",
				zap.Int("physics_fps", rates.PhysicsFPS),
				zap.Int("render_fps", rates.RenderFPS),
			)
		}
	}
}
