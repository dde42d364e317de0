package devloop

import "sync"

// RunState is the state of a Runner.
type RunState int

// Runner states
const (
	Idle RunState = iota
	Running
	RunningWithPending
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case RunningWithPending:
		return "running-with-pending"
	}
	return "unknown"
}

// Runner runs a task with at most one run in flight. Triggers that arrive
// during a run collapse into exactly one follow-up run, started as soon as
// the current one returns. Runs are never cancelled.
type Runner struct {
	task func()

	mu    sync.Mutex
	state RunState
	wg    sync.WaitGroup
}

// NewRunner creates a runner for task.
func NewRunner(task func()) *Runner {
	return &Runner{task: task}
}

// Trigger requests a run. It returns true when a new run was started and
// false when the request was folded into the pending follow-up.
func (r *Runner) Trigger() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case Idle:
		r.state = Running
		r.wg.Add(1)
		go r.loop()
		return true
	case Running:
		r.state = RunningWithPending
	}
	return false
}

// State returns the current state.
func (r *Runner) State() RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the runner is idle.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop() {
	defer r.wg.Done()

	for {
		r.task()

		r.mu.Lock()
		if r.state == RunningWithPending {
			r.state = Running
			r.mu.Unlock()
			continue
		}
		r.state = Idle
		r.mu.Unlock()
		return
	}
}
