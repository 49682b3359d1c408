// Package tasks provides the built-in task registry.
package tasks

import "fmt"

// Task is a named, invokable sequence of shell commands.
type Task struct {
	Name    string
	Summary string
	// Deps are task names that run, in order, before this task's own
	// commands. Each task runs at most once per invocation.
	Deps     []string
	Commands []string
	// Interactive tasks run their commands under a PTY so tools that
	// watch files or repaint the terminal behave normally.
	Interactive bool
	// Confirm asks the user before running the task's own commands.
	Confirm bool
}

// Registry is an ordered collection of tasks keyed by name.
type Registry struct {
	order []string
	tasks map[string]Task
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Register adds t to the registry. It panics on an empty or duplicate
// name; the built-in table is compiled in, so either is a programming error.
func (r *Registry) Register(t Task) {
	if t.Name == "" {
		panic("tasks: register with empty name")
	}
	if _, exists := r.tasks[t.Name]; exists {
		panic(fmt.Sprintf("tasks: %s already registered", t.Name))
	}
	r.order = append(r.order, t.Name)
	r.tasks[t.Name] = t
}

// Get returns the task and whether it exists.
func (r *Registry) Get(name string) (Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Names returns task names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve returns the tasks to execute for name: dependencies first, in
// declared order, each task at most once. Unknown names and dependency
// cycles are errors.
func (r *Registry) Resolve(name string) ([]Task, error) {
	var out []Task
	seen := make(map[string]bool)
	inStack := make(map[string]bool)

	var walk func(n string) error
	walk = func(n string) error {
		if seen[n] {
			return nil
		}
		if inStack[n] {
			return fmt.Errorf("dependency cycle through task %q", n)
		}
		t, ok := r.tasks[n]
		if !ok {
			return fmt.Errorf("unknown task: %s", n)
		}
		inStack[n] = true
		for _, d := range t.Deps {
			if err := walk(d); err != nil {
				return err
			}
		}
		inStack[n] = false
		seen[n] = true
		out = append(out, t)
		return nil
	}

	if err := walk(name); err != nil {
		return nil, err
	}
	return out, nil
}
