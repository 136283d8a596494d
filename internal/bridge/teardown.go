package bridge

import "github.com/bnema/wlidle/internal/logger"

type cleanupStep struct {
	object string
	fn     func() error
}

// teardown releases protocol objects in reverse acquisition order. It runs at
// most once; steps pushed after that are never executed.
type teardown struct {
	steps []cleanupStep
	done  bool
}

func (t *teardown) push(object string, fn func() error) {
	t.steps = append(t.steps, cleanupStep{object: object, fn: fn})
}

func (t *teardown) run() {
	if t.done {
		return
	}
	t.done = true

	for i := len(t.steps) - 1; i >= 0; i-- {
		step := t.steps[i]
		if err := step.fn(); err != nil {
			// routine once the connection is gone
			logger.Debug("Failed to release protocol object", "object", step.object, "err", err)
			continue
		}
		logger.Debug("Released protocol object", "object", step.object)
	}
	t.steps = nil
}
