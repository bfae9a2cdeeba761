package dashboard

import (
	"time"

	"github.com/kpumuk/lazyplot/internal/chart"
)

// Startup stagger delays.
const (
	FirstDelay = 100 * time.Millisecond
	StepDelay  = 200 * time.Millisecond
)

// Task renders one chart kind after Delay.
type Task struct {
	Kind  chart.Kind
	Delay time.Duration
}

// Scheduler is the ordered startup task list.
type Scheduler struct {
	tasks []Task
	next  int
}

// NewScheduler returns a scheduler with one task per kind, in order.
func NewScheduler(kinds []chart.Kind) *Scheduler {
	tasks := make([]Task, len(kinds))
	for i, k := range kinds {
		delay := StepDelay
		if i == 0 {
			delay = FirstDelay
		}
		tasks[i] = Task{Kind: k, Delay: delay}
	}
	return &Scheduler{tasks: tasks}
}

// Next returns the next task, or false when the list is exhausted.
func (s *Scheduler) Next() (Task, bool) {
	if s.Done() {
		return Task{}, false
	}
	t := s.tasks[s.next]
	s.next++
	return t, true
}

// Done reports whether every task has been handed out.
func (s *Scheduler) Done() bool {
	return s.next >= len(s.tasks)
}

// Len returns the number of tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Total returns the sum of all delays.
func (s *Scheduler) Total() time.Duration {
	var d time.Duration
	for _, t := range s.tasks {
		d += t.Delay
	}
	return d
}
