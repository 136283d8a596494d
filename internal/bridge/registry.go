package bridge

import (
	"github.com/bnema/wlidle/internal/logger"
	"github.com/pkg/errors"
)

// registry binds the first wl_seat and the ext_idle_notifier_v1 seen during
// discovery. Every bound object is handed to the cleanup stack immediately.
type registry struct {
	comp    Compositor
	cleanup *teardown

	seat     Handle
	notifier IdleNotifier
	bindErr  error
}

func newRegistry(comp Compositor, cleanup *teardown) *registry {
	return &registry{comp: comp, cleanup: cleanup}
}

func (r *registry) Global(g Global) {
	switch g.Interface {
	case SeatInterface:
		if r.seat != nil {
			logger.Debug("Ignoring additional seat", "name", g.Name)
			return
		}
		seat, err := r.comp.BindSeat(g)
		if err != nil {
			r.recordBindError(g, err)
			return
		}
		r.seat = seat
		r.cleanup.push(SeatInterface, seat.Destroy)
		logger.Debug("Bound seat", "name", g.Name, "version", g.Version)

	case IdleNotifierInterface:
		if r.notifier != nil {
			logger.Debug("Ignoring additional idle notifier", "name", g.Name)
			return
		}
		notifier, err := r.comp.BindIdleNotifier(g)
		if err != nil {
			r.recordBindError(g, err)
			return
		}
		r.notifier = notifier
		r.cleanup.push(IdleNotifierInterface, notifier.Destroy)
		logger.Debug("Bound idle notifier", "name", g.Name, "version", g.Version)
	}
}

// GlobalRemove is accepted without action; losing a capability at runtime
// shows up later as a connection failure.
func (r *registry) GlobalRemove(name uint32) {
	logger.Debug("Global removed", "name", name)
}

func (r *registry) recordBindError(g Global, err error) {
	logger.Debug("Failed to bind global", "interface", g.Interface, "name", g.Name, "err", err)
	if r.bindErr == nil {
		r.bindErr = errors.Wrapf(err, "bind %s", g.Interface)
	}
}

// discover runs one discovery round and checks both capabilities were bound
func (r *registry) discover() error {
	if err := r.comp.Discover(r); err != nil {
		return &DispatchError{Op: "discover", Err: err}
	}
	if r.bindErr != nil {
		return &DispatchError{Op: "bind", Err: r.bindErr}
	}
	if r.seat == nil {
		return &MissingCapabilityError{Capability: SeatInterface}
	}
	if r.notifier == nil {
		return &MissingCapabilityError{Capability: IdleNotifierInterface}
	}
	return nil
}
