// Package bridge turns compositor idle notifications into the helper's line
// protocol.
//
// The compositor is reached through the Compositor interface; the Wayland
// implementation lives in internal/wayland. A run is strictly sequential:
// connect, discover and bind, subscribe, announce READY, dispatch until the
// connection fails, tear everything down.
package bridge

import "github.com/bnema/wlidle/internal/emitter"

// Well-known interface names of the globals the bridge binds
const (
	SeatInterface         = "wl_seat"
	IdleNotifierInterface = "ext_idle_notifier_v1"
)

// Global is one object advertised by the compositor registry
type Global struct {
	Name      uint32 `yaml:"name"`
	Interface string `yaml:"interface"`
	Version   uint32 `yaml:"version"`
}

// Visitor receives registry advertisements
type Visitor interface {
	Global(g Global)
	GlobalRemove(name uint32)
}

// Handle is a protocol object owned by the run
type Handle interface {
	Destroy() error
}

// Listener carries the callbacks of an idle notification
type Listener struct {
	OnIdle   func()
	OnResume func()
}

// IdleNotifier is a bound ext_idle_notifier_v1
type IdleNotifier interface {
	Handle
	// Subscribe creates the idle notification for seat with the given timeout
	Subscribe(timeoutMS uint32, seat Handle, l Listener) (Handle, error)
}

// Compositor is a live connection to the compositor
type Compositor interface {
	// Discover installs v on the registry and returns once every global
	// advertised so far has been visited. v keeps receiving events delivered
	// by later Dispatch calls.
	Discover(v Visitor) error
	BindSeat(g Global) (Handle, error)
	BindIdleNotifier(g Global) (IdleNotifier, error)
	// Dispatch blocks until events arrive and runs their callbacks
	Dispatch() error
	Close() error
}

// Dialer opens a connection to the compositor
type Dialer func() (Compositor, error)

// Sink receives the tokens produced by a run
type Sink interface {
	Emit(token emitter.Token) error
}
