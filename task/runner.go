package task

import "sync"

// Runner queues tasks for the thread that owns the GUI. Schedule may be
// called from any goroutine; RunPending must only be called by the owner.
type Runner struct {
	lock      sync.Mutex
	tasks     []*Task
	keys      map[any]bool
	queued    []any
	needsQuit bool
}

func NewRunner() *Runner {
	return &Runner{keys: map[any]bool{}}
}

func (r *Runner) Schedule(t *Task) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tasks = append(r.tasks, t)
	r.queued = append(r.queued, nil)
}

// ScheduleOnce queues t unless a task with the same key is still pending.
// It reports whether t was queued.
func (r *Runner) ScheduleOnce(key any, t *Task) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.keys[key] {
		return false
	}
	r.keys[key] = true
	r.tasks = append(r.tasks, t)
	r.queued = append(r.queued, key)
	return true
}

// RunPending runs tasks in order until the queue is empty, including tasks
// scheduled while running. It returns how many ran.
func (r *Runner) RunPending() int {
	ran := 0
	for {
		r.lock.Lock()
		if len(r.tasks) == 0 {
			r.lock.Unlock()
			return ran
		}
		t, key := r.tasks[0], r.queued[0]
		r.tasks = r.tasks[1:]
		r.queued = r.queued[1:]
		if key != nil {
			delete(r.keys, key)
		}
		r.lock.Unlock()

		t.Run()
		ran++
	}
}

func (r *Runner) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.tasks)
}

func (r *Runner) SetNeedsQuit() {
	r.lock.Lock()
	r.needsQuit = true
	r.lock.Unlock()
}

func (r *Runner) NeedsQuit() bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.needsQuit
}
