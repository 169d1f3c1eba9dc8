package toolbelt

import "sync"

// Bootstrap collects registration hooks and runs them once against a registry.
// It replaces import-side-effect tool discovery with an explicit initialization
// step: packages add their hooks (typically from init or a setup function), the
// application calls Run exactly once at startup, and only then are Descriptors
// and Dispatch used.
type Bootstrap struct {
	mu    sync.Mutex
	hooks []func(*Registry) error
	done  bool
}

// Add appends a registration hook. Hooks added after Run are never executed.
func (b *Bootstrap) Add(hook func(*Registry) error) {
	if hook == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, hook)
}

// Run executes all hooks in the order they were added and stops on the first
// failure, leaving the bootstrap re-runnable. After a fully successful run,
// subsequent calls are no-ops.
func (b *Bootstrap) Run(r *Registry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return nil
	}
	for _, hook := range b.hooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	b.done = true
	return nil
}

// Done reports whether a Run has completed successfully.
func (b *Bootstrap) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}
