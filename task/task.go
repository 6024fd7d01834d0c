package task

type Task struct {
	code func(...any)
	args []any
}

func NewTask(code func(...any), args ...any) *Task {
	return &Task{
		code: code,
		args: args,
	}
}

// Run executes the task once. Later calls do nothing.
func (t *Task) Run() {
	if t.code == nil {
		return
	}
	code, args := t.code, t.args
	t.code = nil
	t.args = nil
	code(args...)
}
