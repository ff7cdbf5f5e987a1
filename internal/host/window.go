// internal/host/window.go
package host

import (
	"errors"
	"fmt"
	"time"

	"circle-slide/internal/app"
	"circle-slide/internal/clock"
	"circle-slide/internal/config"
	"circle-slide/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Window - адаптер app.Game к ebiten.Game. Один Update ebiten - одна итерация цикла.
type Window struct {
	game   *app.Game
	clock  clock.TimeProvider
	screen *Screen
	width  int
	height int
	input  []event.Event
}

// RunWindow открывает окно и блокируется, пока его не закроют.
func RunWindow(cfg *config.Config, log *zap.Logger) error {
	face, err := LoadFace(config.PanelFontSize)
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}

	tp := clock.SystemTime{}
	w := &Window{
		game:   app.NewGame(cfg, log, tp.Now()),
		clock:  tp,
		screen: NewScreen(face),
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	w.game.Dispatcher().Subscribe(event.RatesPublished, titleUpdater(cfg.Window.Title))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.FrameRateLimit)
	ebiten.SetWindowClosingHandled(true)

	log.Info("window opened",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("frame_rate_limit", cfg.Window.FrameRateLimit),
		zap.Duration("tick", cfg.Loop.TickDuration()),
	)
	start := time.Now()
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	log.Info("window closed", zap.Duration("uptime", time.Since(start)))
	return nil
}

func (w *Window) Update() error {
	w.input = pollInput(w.input[:0])
	err := w.game.Update(w.clock.Now(), w.input)
	if errors.Is(err, app.ErrClosed) {
		return ebiten.Termination
	}
	return err
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.screen.Bind(screen)
	w.game.Draw(w.screen)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// titleUpdater дублирует счётчики в заголовке окна.
func titleUpdater(title string) event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		if rates, ok := e.Data.(event.Rates); ok {
			ebiten.SetWindowTitle(fmt.Sprintf("%s (%d/%d FPS)", title, rates.PhysicsFPS, rates.RenderFPS))
		}
	})
}

// pollInput переводит состояние ввода ebiten в события. Остальной ввод игнорируется.
func pollInput(dst []event.Event) []event.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, event.Event{Type: event.CloseRequested})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, event.Event{
			Type: event.MouseLeftPressed,
			Data: event.MousePosition{X: x, Y: y},
		})
	}
	return dst
}
