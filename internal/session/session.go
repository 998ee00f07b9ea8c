// Package session runs one interaction session: a board, its cursor and
// the selection state machine, driven by one input command at a time.
//
// A Session is owned by a single render adapter and is not safe for
// concurrent use.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hailam/focuschess/internal/board"
	"github.com/hailam/focuschess/internal/focus"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/selection"
	"github.com/hailam/focuschess/internal/storage"
)

// Options configures a new session.
type Options struct {
	Layout     board.Layout
	Projection projection.Config
	Logger     logx.Logger
	// Journal records completed drops. When nil the session opens its own
	// in-memory journal and closes it in Close.
	Journal *storage.Journal
}

// Session is one interaction session.
type Session struct {
	id         string
	layout     board.Layout
	proj       projection.Config
	log        logx.Logger
	journal    *storage.Journal
	ownJournal bool

	board     *board.Board
	cursor    *focus.Cursor
	selection *selection.Controller
}

// New builds the board from the layout and starts an idle session with the
// cursor on square 0. A malformed layout fails with board.ErrOccupancyConflict.
func New(opts Options) (*Session, error) {
	s := &Session{
		id:      uuid.NewString(),
		layout:  opts.Layout,
		proj:    opts.Projection,
		log:     opts.Logger,
		journal: opts.Journal,
	}
	if s.log == nil {
		s.log = logx.Nop()
	}
	if s.journal == nil {
		j, err := storage.OpenJournal()
		if err != nil {
			return nil, err
		}
		s.journal = j
		s.ownJournal = true
	}

	if err := s.build(); err != nil {
		s.Close()
		return nil, err
	}

	s.log.Infow("session started",
		"session", s.id,
		"layout", s.layout.Name,
		"projection", s.proj.Mode.String(),
		"pieces", s.board.Count(),
	)
	return s, nil
}

func (s *Session) build() error {
	b, err := s.layout.NewBoard()
	if err != nil {
		return err
	}
	s.board = b
	s.cursor = focus.New()
	s.selection = selection.New(b)
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Handle applies one input command. Directional commands never fail. An
// activation error means a broken invariant; it is logged at DPanic level
// and returned.
func (s *Session) Handle(cmd Command) (selection.Result, error) {
	switch cmd {
	case CmdUp:
		s.cursor.Up()
	case CmdDown:
		s.cursor.Down()
	case CmdLeft:
		s.cursor.Left()
	case CmdRight:
		s.cursor.Right()
	case CmdActivate:
		return s.activate()
	default:
		return selection.Result{}, fmt.Errorf("session: unknown command %d", cmd)
	}
	s.log.Debugw("cursor moved", "session", s.id, "command", cmd.String(), "cursor", s.cursor.Index().String())
	return selection.Result{Outcome: selection.NoOp, From: board.NoSquare, To: board.NoSquare, Piece: board.NoPiece, Displaced: board.NoPiece}, nil
}

func (s *Session) activate() (selection.Result, error) {
	cursor := s.cursor.Index()
	res, err := s.selection.Activate(cursor)
	if err != nil {
		s.log.DPanicf("session %s: activate on %s: %v", s.id, cursor, err)
		return res, err
	}

	switch res.Outcome {
	case selection.PickedUp:
		s.log.Debugw("picked up", "session", s.id, "square", res.From.String(), "piece", res.Piece.Name())
	case selection.Dropped:
		s.log.Debugw("dropped", "session", s.id, "from", res.From.String(), "to", res.To.String(),
			"piece", res.Piece.Name(), "displaced", res.Displaced.Name())
		if res.From != res.To {
			_, jerr := s.journal.Append(storage.Entry{
				From:      res.From,
				To:        res.To,
				Piece:     res.Piece,
				Displaced: res.Displaced,
			})
			if jerr != nil {
				s.log.Warnf("session %s: journal: %v", s.id, jerr)
			}
		}
	default:
		s.log.Debugw("activate on empty square", "session", s.id, "square", cursor.String())
	}
	return res, nil
}

// Cursor returns the focused square.
func (s *Session) Cursor() board.Square {
	return s.cursor.Index()
}

// IsHolding reports whether a piece is held.
func (s *Session) IsHolding() bool {
	return s.selection.IsHolding()
}

// Held returns the origin and piece being held.
func (s *Session) Held() (board.Square, board.Piece, bool) {
	return s.selection.Held()
}

// State returns the selection state.
func (s *Session) State() selection.State {
	return s.selection.State()
}

// Board returns the board. Callers must treat it as read-only.
func (s *Session) Board() *board.Board {
	return s.board
}

// Projection returns the projection in use.
func (s *Session) Projection() projection.Config {
	return s.proj
}

// Layout returns the initial layout of the session.
func (s *Session) Layout() board.Layout {
	return s.layout
}

// History returns the completed drops of the session, oldest first.
// Drops onto the origin square are not recorded.
func (s *Session) History() ([]storage.Entry, error) {
	return s.journal.Entries()
}

// Reset rebuilds the board from the layout, returns the cursor to square 0,
// releases any held piece and clears the journal.
func (s *Session) Reset() error {
	if err := s.build(); err != nil {
		return err
	}
	if err := s.journal.Clear(); err != nil {
		return err
	}
	s.log.Infow("session reset", "session", s.id, "layout", s.layout.Name)
	return nil
}

// Close releases the journal if the session opened it.
func (s *Session) Close() error {
	s.log.Sync()
	if s.ownJournal && s.journal != nil {
		return s.journal.Close()
	}
	return nil
}
