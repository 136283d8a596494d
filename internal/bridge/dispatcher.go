package bridge

type dispatchState int

const (
	stateRunning dispatchState = iota
	stateTerminated
)

func (s dispatchState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// dispatcher pumps compositor events into their callbacks. The blocking
// Dispatch call is its only suspension point and its only exit condition.
type dispatcher struct {
	comp  Compositor
	state dispatchState
}

func newDispatcher(comp Compositor) *dispatcher {
	return &dispatcher{comp: comp, state: stateRunning}
}

func (d *dispatcher) run() error {
	for d.state == stateRunning {
		if err := d.comp.Dispatch(); err != nil {
			d.state = stateTerminated
			return &DispatchError{Op: "dispatch", Err: err}
		}
	}
	return nil
}
