// internal/app/headless.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"circle-slide/internal/config"
	"circle-slide/internal/event"
	"circle-slide/pkg/render"

	"go.uber.org/zap"
)

// HeadlessConfig управляет запуском без окна.
type HeadlessConfig struct {
	Hz         int    // кадров в секунду
	Frames     uint64 // остановиться после N кадров (0 - работать до отмены)
	ClickEvery uint64 // имитировать клик каждые N кадров (0 - никогда)
}

// RunHeadless гоняет тот же цикл по тикеру, рисуя в пустоту.
func RunHeadless(ctx context.Context, cfg *config.Config, log *zap.Logger, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	game := NewGame(cfg, log, time.Now())
	game.Dispatcher().Subscribe(event.RatesPublished, ratesLogger(log))
	log.Info("headless run",
		zap.Int("hz", hc.Hz),
		zap.Uint64("frames", hc.Frames),
		zap.Uint64("click_every", hc.ClickEvery),
	)
	return Drive(ctx, game, t.C, hc)
}

// ratesLogger пишет счётчики в лог раз в секунду: без окна оверлей не виден.
func ratesLogger(log *zap.Logger) event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		if rates, ok := e.Data.(event.Rates); ok {
			log.Info("rates",
				zap.Int("physics_fps", rates.PhysicsFPS),
				zap.Int("render_fps", rates.RenderFPS),
			)
		}
	})
}

// Drive выполняет по одной итерации цикла на каждое значение из frames.
// Значение канала - момент кадра.
func Drive(ctx context.Context, game *Game, frames <-chan time.Time, hc HeadlessConfig) error {
	var (
		frame uint64
		input []event.Event
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			frame++
			input = input[:0]
			if hc.ClickEvery > 0 && frame%hc.ClickEvery == 0 {
				input = append(input, event.Event{Type: event.MouseLeftPressed})
			}
			if err := game.Update(now, input); err != nil {
				if errors.Is(err, ErrClosed) {
					return nil
				}
				return err
			}
			game.Draw(render.Discard{})
			if hc.Frames > 0 && frame >= hc.Frames {
				return nil
			}
		}
	}
}
