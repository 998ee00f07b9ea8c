package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/focuschess/internal/effect"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/session"
)

// Default window size; the board is centered in it.
const (
	ScreenWidth  = 960
	ScreenHeight = 540
)

// Options configures a Game.
type Options struct {
	ScreenWidth   int
	ScreenHeight  int
	DeselectDelay time.Duration
	Sound         bool
	Logger        logx.Logger
	// Now is the clock for effects and feedback. Nil uses time.Now.
	Now func() time.Time
}

// Game implements ebiten.Game around a session.
type Game struct {
	session  *session.Session
	renderer *Renderer
	input    *InputHandler
	sched    *effect.Scheduler
	deselect *effect.Deselect
	feedback *Feedback
	log      logx.Logger

	screenW, screenH int
}

// NewGame creates a game drawing s.
func NewGame(s *session.Session, opts Options) *Game {
	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = ScreenWidth
	}
	if opts.ScreenHeight <= 0 {
		opts.ScreenHeight = ScreenHeight
	}
	if opts.Logger == nil {
		opts.Logger = logx.Nop()
	}
	sched := effect.NewScheduler(opts.Now)
	return &Game{
		session:  s,
		renderer: NewRenderer(s.Projection(), opts.ScreenWidth, opts.ScreenHeight),
		input:    NewInputHandler(),
		sched:    sched,
		deselect: effect.NewDeselect(sched, opts.DeselectDelay),
		feedback: &Feedback{
			Toasts:     NewToastManager(opts.Now),
			Animations: NewAnimationManager(opts.Now),
			Audio:      NewAudioManager(opts.Sound),
		},
		log:     opts.Logger,
		screenW: opts.ScreenWidth,
		screenH: opts.ScreenHeight,
	}
}

// Update runs due effects, then applies this frame's input.
func (g *Game) Update() error {
	g.sched.Run()
	g.feedback.Update()

	switch g.input.Action() {
	case ActionQuit:
		return ebiten.Termination
	case ActionReset:
		g.reset()
	case ActionToggleSound:
		audio := g.feedback.Audio
		audio.SetEnabled(!audio.IsEnabled())
	}

	for _, cmd := range g.input.Commands() {
		g.Apply(cmd)
	}
	return nil
}

// Apply handles one command and starts its feedback.
func (g *Game) Apply(cmd session.Command) selection.Result {
	res, err := g.session.Handle(cmd)
	if err != nil {
		g.feedback.Toasts.Show(err.Error(), ToastError, 3*time.Second)
		return res
	}
	if cmd != session.CmdActivate {
		return res
	}
	if res.Outcome == selection.Dropped {
		g.deselect.Dropped(res.To)
	}
	g.feedback.OnResult(res)
	return res
}

func (g *Game) reset() {
	g.deselect.Reset()
	if err := g.session.Reset(); err != nil {
		g.log.Errorf("reset session: %v", err)
		g.feedback.Toasts.Show("Reset failed", ToastError, 3*time.Second)
		return
	}
	g.feedback.Toasts.Show("Board reset", ToastSuccess, time.Second)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	v := g.session.View()
	g.renderer.Draw(screen, v, g.deselect)
	g.feedback.Animations.Draw(screen, g.renderer, v)
	g.renderer.DrawStatus(screen, v, g.screenH)
	g.feedback.Toasts.Draw(screen, g.screenW)
}

// Layout returns the logical screen size. Ebitengine scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Scheduler returns the game's effect scheduler.
func (g *Game) Scheduler() *effect.Scheduler {
	return g.sched
}

// Deselect returns the deselect effect tracker.
func (g *Game) Deselect() *effect.Deselect {
	return g.deselect
}

// Toasts returns the toast manager.
func (g *Game) Toasts() *ToastManager {
	return g.feedback.Toasts
}

// Run opens a window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
