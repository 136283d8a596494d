package bridge

import (
	"github.com/bnema/wlidle/internal/emitter"
	"github.com/bnema/wlidle/internal/logger"
	"github.com/pkg/errors"
)

// Bridge is one helper run
type Bridge struct {
	Dial      Dialer
	TimeoutMS uint32
	Sink      Sink
}

// Run connects, subscribes and forwards idle events to the sink until the
// connection fails. It always returns a non-nil error once the connection
// is gone. Every protocol object created along the way is released exactly
// once before Run returns.
func (b *Bridge) Run() error {
	comp, err := b.Dial()
	if err != nil {
		return &ConnectionError{Err: err}
	}

	cleanup := &teardown{}
	defer cleanup.run()
	cleanup.push("connection", comp.Close)

	reg := newRegistry(comp, cleanup)
	if err := reg.discover(); err != nil {
		return err
	}

	sub, err := subscribe(reg.notifier, b.TimeoutMS, reg.seat, b.Sink)
	if err != nil {
		return &DispatchError{Op: "subscribe", Err: err}
	}
	cleanup.push("ext_idle_notification_v1", sub.Destroy)

	if err := b.Sink.Emit(emitter.Ready); err != nil {
		return errors.Wrap(err, "failed to announce readiness")
	}
	logger.Info("Idle bridge ready", "timeout_ms", b.TimeoutMS)

	return newDispatcher(comp).run()
}
