// Package term renders a focus chess session in a terminal with tcell.
//
// Each square is three cells wide and one row high. Rank 8 is drawn at the
// top, so the layout matches the orthogonal projection.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/effect"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/session"
)

const (
	leftMargin  = 4
	topMargin   = 2
	squareWidth = 3
	tickRate    = 50 * time.Millisecond
)

// Theme colors the terminal board.
type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	SquareFocus tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
	Msg         tcell.Color
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	return Theme{
		SquareLight: tcell.NewRGBColor(240, 217, 181),
		SquareDark:  tcell.NewRGBColor(181, 136, 99),
		SquareFocus: tcell.NewRGBColor(0x76, 0x3f, 0xfc),
		White:       tcell.ColorWhite,
		Black:       tcell.ColorBlack,
		Label:       tcell.ColorGray,
		Msg:         tcell.ColorYellow,
	}
}

// Options configures an App.
type Options struct {
	DeselectDelay time.Duration
	Logger        logx.Logger
	// Now is the effect clock. Nil uses time.Now.
	Now func() time.Time
}

// App drives a session from terminal key events.
type App struct {
	screen   tcell.Screen
	session  *session.Session
	sched    *effect.Scheduler
	deselect *effect.Deselect
	theme    Theme
	log      logx.Logger
	msg      string
}

// New creates an app drawing s on screen. The screen is initialized by Run.
func New(screen tcell.Screen, s *session.Session, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	sched := effect.NewScheduler(opts.Now)
	return &App{
		screen:   screen,
		session:  s,
		sched:    sched,
		deselect: effect.NewDeselect(sched, opts.DeselectDelay),
		theme:    DefaultTheme(),
		log:      opts.Logger,
	}
}

// Run initializes the screen and processes events until the user quits or
// ctx is done.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer a.screen.Fini()

	// The ticker only wakes the event loop; effects run on this goroutine.
	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(tickRate)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				a.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
				return
			case <-t.C:
				a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// HandleEvent applies one event and reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if isReset(ev) {
			a.reset()
			return false
		}
		if cmd, ok := KeyCommand(ev); ok {
			a.Apply(cmd)
		}
	case *tcell.EventInterrupt:
		a.sched.Run()
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// Apply handles one command.
func (a *App) Apply(cmd session.Command) selection.Result {
	res, err := a.session.Handle(cmd)
	if err != nil {
		a.msg = err.Error()
		return res
	}
	switch res.Outcome {
	case selection.PickedUp:
		a.msg = fmt.Sprintf("Holding %s from %s", res.Piece.Name(), res.From)
	case selection.Dropped:
		a.deselect.Dropped(res.To)
		a.msg = fmt.Sprintf("%s %s-%s", res.Piece.Name(), res.From, res.To)
		if res.Displaced != board.NoPiece {
			a.msg += " takes " + res.Displaced.Name()
		}
	default:
		if cmd == session.CmdActivate {
			a.msg = "Nothing on " + a.session.Cursor().String()
		}
	}
	return res
}

func (a *App) reset() {
	a.deselect.Reset()
	if err := a.session.Reset(); err != nil {
		a.log.Errorf("reset session: %v", err)
		a.msg = "Reset failed"
		return
	}
	a.msg = "Board reset"
}

// Draw paints the board, labels and message line.
func (a *App) Draw() {
	s := a.screen
	s.Clear()

	v := a.session.View()
	for _, sv := range v.Squares {
		col := leftMargin + sv.Square.File()*squareWidth
		row := topMargin + (board.NumRanks - 1 - sv.Square.Rank())
		a.drawSquare(col, row, sv)
	}

	labelStyle := tcell.StyleDefault.Foreground(a.theme.Label)
	for r := 0; r < board.NumRanks; r++ {
		drawText(s, leftMargin-2, topMargin+board.NumRanks-1-r, labelStyle, fmt.Sprint(r+1))
	}
	for f := 0; f < board.NumFiles; f++ {
		drawText(s, leftMargin+f*squareWidth+1, topMargin+board.NumRanks, labelStyle, string(rune('A'+f)))
	}

	status := "Cursor " + v.Cursor.String()
	if v.Holding {
		status += "  Holding " + v.HeldPiece.Name() + " from " + v.HeldFrom.String()
	}
	drawText(s, leftMargin, topMargin+board.NumRanks+2, tcell.StyleDefault, status)
	drawText(s, leftMargin, topMargin+board.NumRanks+3, tcell.StyleDefault.Foreground(a.theme.Msg), a.msg)
	drawText(s, leftMargin, topMargin+board.NumRanks+5, labelStyle, "arrows/wasd/hjkl move  enter/space activate  r reset  q quit")
	s.Show()
}

func (a *App) drawSquare(col, row int, sv session.SquareView) {
	bg := a.theme.SquareDark
	switch {
	case sv.Focused:
		bg = a.theme.SquareFocus
	case sv.Light():
		bg = a.theme.SquareLight
	}
	style := tcell.StyleDefault.Background(bg)

	r := ' '
	if sv.HasPiece() {
		r = sv.Piece.Glyph()
		fg := a.theme.White
		if sv.Piece.Color() == board.Black {
			fg = a.theme.Black
		}
		style = style.Foreground(fg)
		if sv.Held || a.deselect.Active(sv.Square) {
			style = style.Reverse(true).Bold(true)
		} else if sv.Focused {
			style = style.Bold(true)
		}
	}
	a.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bg))
	a.screen.SetContent(col+1, row, r, nil, style)
	a.screen.SetContent(col+2, row, ' ', nil, tcell.StyleDefault.Background(bg))
}

// Message returns the last status message.
func (a *App) Message() string {
	return a.msg
}

// Deselect returns the deselect effect tracker.
func (a *App) Deselect() *effect.Deselect {
	return a.deselect
}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
