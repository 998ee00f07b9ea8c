package effect

import (
	"time"

	"github.com/hailam/focuschess/internal/board"
)

// Deselect keeps a dropped piece styled as selected for a short delay after
// the drop. It only affects drawing: the board and selection state have
// already transitioned when Dropped is called.
type Deselect struct {
	sched  *Scheduler
	delay  time.Duration
	marked map[board.Square]*Task
	fired  int
}

// NewDeselect returns a tracker scheduling on s. A zero delay disables the
// effect, so drops clear their styling immediately.
func NewDeselect(s *Scheduler, delay time.Duration) *Deselect {
	return &Deselect{
		sched:  s,
		delay:  delay,
		marked: make(map[board.Square]*Task),
	}
}

// Delay returns the configured delay.
func (d *Deselect) Delay() time.Duration {
	return d.delay
}

// Dropped marks sq and schedules the mark's removal.
func (d *Deselect) Dropped(sq board.Square) {
	if d.delay <= 0 {
		return
	}
	// A newer drop on the same square restarts the effect.
	if prev, ok := d.marked[sq]; ok {
		prev.Cancel()
	}
	var task *Task
	task = d.sched.After("deselect "+sq.String(), d.delay, func() {
		if d.marked[sq] == task {
			delete(d.marked, sq)
		}
		d.fired++
	})
	d.marked[sq] = task
}

// Active reports whether sq still carries the selected styling.
func (d *Deselect) Active(sq board.Square) bool {
	_, ok := d.marked[sq]
	return ok
}

// Len returns the number of marked squares.
func (d *Deselect) Len() int {
	return len(d.marked)
}

// Fired returns how many deselect effects have completed.
func (d *Deselect) Fired() int {
	return d.fired
}

// Reset drops every mark and cancels the pending effects.
func (d *Deselect) Reset() {
	for sq, t := range d.marked {
		t.Cancel()
		delete(d.marked, sq)
	}
}
