// Package effect schedules cosmetic visual effects for render adapters.
//
// The scheduler never runs anything on its own goroutine: the render loop
// calls Run once per frame and due tasks fire synchronously inside it. Board
// and selection state never wait on a task.
package effect

import (
	"sort"
	"time"
)

// Task is a scheduled effect.
type Task struct {
	Name      string
	due       time.Time
	fn        func()
	seq       uint64
	fired     bool
	cancelled bool
}

// Due returns the time the task becomes runnable.
func (t *Task) Due() time.Time {
	return t.due
}

// Fired reports whether the task has run.
func (t *Task) Fired() bool {
	return t.fired
}

// Cancel prevents a pending task from running. It returns false if the task
// already fired or was cancelled.
func (t *Task) Cancel() bool {
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Scheduler holds pending tasks ordered by due time.
type Scheduler struct {
	now   func() time.Time
	tasks []*Task
	seq   uint64
}

// NewScheduler creates a scheduler reading time from now, or time.Now if nil.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// After schedules fn to run once delay has elapsed. A zero or negative delay
// makes the task due on the next Run.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{
		Name: name,
		due:  s.now().Add(delay),
		fn:   fn,
		seq:  s.seq,
	}
	s.tasks = append(s.tasks, t)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due.Equal(s.tasks[j].due) {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due.Before(s.tasks[j].due)
	})
	return t
}

// Run fires every due task in schedule order and returns how many ran.
func (s *Scheduler) Run() int {
	now := s.now()
	n := 0
	for n < len(s.tasks) && !s.tasks[n].due.After(now) {
		n++
	}
	// Tasks may schedule new tasks while running.
	due := append([]*Task(nil), s.tasks[:n]...)
	s.tasks = s.tasks[n:]

	ran := 0
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
	s.compact()
	return ran
}

// Pending returns the number of tasks that have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// Clear cancels every pending task.
func (s *Scheduler) Clear() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
}

func (s *Scheduler) compact() {
	active := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			active = append(active, t)
		}
	}
	s.tasks = active
}
