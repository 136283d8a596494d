package bridge

import (
	"errors"
	"io"

	"github.com/bnema/wlidle/internal/emitter"
)

// fakeHandle records destruction into the compositor's shared log
type fakeHandle struct {
	name      string
	comp      *fakeCompositor
	destroyed int
}

func (h *fakeHandle) Destroy() error {
	h.destroyed++
	h.comp.log = append(h.comp.log, "destroy "+h.name)
	return h.comp.destroyErr
}

type fakeNotifier struct {
	fakeHandle
}

func (n *fakeNotifier) Subscribe(timeoutMS uint32, seat Handle, l Listener) (Handle, error) {
	c := n.comp
	if c.subscribeErr != nil {
		return nil, c.subscribeErr
	}
	c.subscribedTimeout = timeoutMS
	c.subscribedSeat = seat
	c.listener = l
	sub := &fakeHandle{name: "notification", comp: c}
	c.subscriptions = append(c.subscriptions, sub)
	c.log = append(c.log, "subscribe")
	return sub, nil
}

// fakeCompositor scripts a compositor: globals advertised at discovery, then
// one batch of events per Dispatch call, then endErr.
type fakeCompositor struct {
	globals []Global
	batches [][]string // "idle", "resume" or "remove"

	discoverErr  error
	bindErr      error
	subscribeErr error
	endErr       error
	destroyErr   error

	visitor           Visitor
	listener          Listener
	subscribedTimeout uint32
	subscribedSeat    Handle

	seats         []*fakeHandle
	notifiers     []*fakeNotifier
	subscriptions []*fakeHandle
	dispatches    int
	closed        int
	log           []string
}

func (c *fakeCompositor) dialer() Dialer {
	return func() (Compositor, error) { return c, nil }
}

func (c *fakeCompositor) Discover(v Visitor) error {
	c.visitor = v
	if c.discoverErr != nil {
		return c.discoverErr
	}
	for _, g := range c.globals {
		v.Global(g)
	}
	return nil
}

func (c *fakeCompositor) BindSeat(g Global) (Handle, error) {
	if c.bindErr != nil {
		return nil, c.bindErr
	}
	seat := &fakeHandle{name: "seat", comp: c}
	c.seats = append(c.seats, seat)
	c.log = append(c.log, "bind seat")
	return seat, nil
}

func (c *fakeCompositor) BindIdleNotifier(g Global) (IdleNotifier, error) {
	if c.bindErr != nil {
		return nil, c.bindErr
	}
	n := &fakeNotifier{fakeHandle{name: "notifier", comp: c}}
	c.notifiers = append(c.notifiers, n)
	c.log = append(c.log, "bind notifier")
	return n, nil
}

func (c *fakeCompositor) Dispatch() error {
	c.dispatches++
	if len(c.batches) == 0 {
		if c.endErr != nil {
			return c.endErr
		}
		return io.EOF
	}

	batch := c.batches[0]
	c.batches = c.batches[1:]
	for _, ev := range batch {
		switch ev {
		case "idle":
			c.listener.OnIdle()
		case "resume":
			c.listener.OnResume()
		case "remove":
			c.visitor.GlobalRemove(1)
		}
	}
	return nil
}

func (c *fakeCompositor) Close() error {
	c.closed++
	c.log = append(c.log, "close")
	return nil
}

// recordingSink collects tokens; it fails on failOn when set
type recordingSink struct {
	tokens []emitter.Token
	failOn emitter.Token
}

func (s *recordingSink) Emit(token emitter.Token) error {
	if s.failOn != "" && token == s.failOn {
		return errors.New("sink closed")
	}
	s.tokens = append(s.tokens, token)
	return nil
}

func seatGlobal(name uint32) Global {
	return Global{Name: name, Interface: SeatInterface, Version: 9}
}

func notifierGlobal(name uint32) Global {
	return Global{Name: name, Interface: IdleNotifierInterface, Version: 1}
}
