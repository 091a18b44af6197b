// Package tcellui is a frontend that drives tcell directly. Input events
// are polled on their own goroutine and handed to the loop goroutine over a
// channel; the loop is the only code that touches the session.
package tcellui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var styles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	core.ColorBrightWhite:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorOrange:       tcell.StyleDefault.Foreground(tcell.Color208),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.Color245),
}

// Frontend runs a session on a tcell screen.
type Frontend struct {
	newScreen func() (tcell.Screen, error)
}

// New returns a frontend that opens the real terminal.
func New() *Frontend {
	return &Frontend{newScreen: tcell.NewScreen}
}

// Name returns the frontend identifier.
func (f *Frontend) Name() string {
	return "tcell"
}

// Description returns a one-line summary.
func (f *Frontend) Description() string {
	return "Plain tcell terminal UI"
}

// Run opens the screen and plays until the player quits, opts.MaxTicks is
// reached or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, s *flappy.Session, opts registry.Options) error {
	screen, err := f.newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	l := newLoop(screen, s, opts)
	defer l.ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !l.handleEvent(ev) {
				return nil
			}
			l.draw()

		case <-l.ticker.C:
			l.tick()
			l.draw()
			if l.limitReached() {
				return nil
			}
		}
	}
}

// loop owns the session, the cell buffer and the tick ticker.
type loop struct {
	screen   tcell.Screen
	session  *flappy.Session
	buf      *core.Screen
	input    core.InputFrame
	ticker   *time.Ticker
	interval time.Duration
	ticking  bool
	maxTicks int64
	logger   *log.Logger
}

func newLoop(screen tcell.Screen, s *flappy.Session, opts registry.Options) *loop {
	rate := opts.Runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &loop{
		screen:   screen,
		session:  s,
		buf:      core.NewScreen(0, 0),
		input:    core.NewInputFrame(),
		interval: time.Second / time.Duration(rate),
		maxTicks: opts.MaxTicks,
		logger:   logger,
	}
	// The ticker only runs while the session is running.
	l.ticker = time.NewTicker(l.interval)
	l.ticker.Stop()

	w, h := screen.Size()
	l.resize(w, h)
	return l
}

// handleEvent applies one input event. It returns false when the player
// asked to quit.
func (l *loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := actionFor(ev.Key(), ev.Rune())
		switch a {
		case core.ActionQuit:
			return false
		case core.ActionFlap:
			l.input.Set(core.ActionFlap)
		case core.ActionStart:
			l.session.Start()
		case core.ActionTogglePause:
			l.session.TogglePause()
		}
		l.syncTicker()

	case *tcell.EventResize:
		l.screen.Sync()
		w, h := ev.Size()
		l.resize(w, h)
	}

	return true
}

// actionFor maps a tcell key to a game action.
func actionFor(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyEnter:
		return core.ActionStart
	case tcell.KeyEscape:
		return core.ActionTogglePause
	case tcell.KeyUp:
		return core.ActionFlap
	case tcell.KeyRune:
		switch r {
		case ' ', 'w', 'k':
			return core.ActionFlap
		case 'r':
			return core.ActionStart
		case 'p':
			return core.ActionTogglePause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// tick runs one simulation step with the buffered input.
func (l *loop) tick() {
	l.session.Step(l.input)
	l.input.Clear()
	l.syncTicker()
}

// syncTicker starts or stops the ticker to follow the session phase.
func (l *loop) syncTicker() {
	running := l.session.Phase() == flappy.PhaseRunning
	switch {
	case running && !l.ticking:
		l.ticker.Reset(l.interval)
		l.ticking = true
	case !running && l.ticking:
		l.ticker.Stop()
		l.ticking = false
	}
}

func (l *loop) limitReached() bool {
	return l.maxTicks > 0 && l.session.Snapshot().Ticks >= l.maxTicks
}

// resize fits the cell buffer to the terminal and keeps the play field's
// aspect ratio.
func (l *loop) resize(cols, rows int) {
	l.buf.Resize(cols, rows)
	if cols <= 0 || rows <= 1 {
		return
	}

	field := l.session.Config().Field
	width := flappy.FieldWidthFor(field.Height, cols, rows)
	if err := l.session.SetField(width, field.Height); err != nil {
		l.logger.Warn("keeping play field", "cols", cols, "rows", rows, "err", err)
	}
}

func (l *loop) draw() {
	flappy.Render(l.buf, l.session.Snapshot())

	l.screen.Clear()
	for y := range l.buf.Height() {
		for x := range l.buf.Width() {
			cell := l.buf.GetCell(x, y)
			style, ok := styles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			l.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	l.screen.Show()
}

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return New()
	})
}
