// Package wayland implements bridge.Compositor on top of go-wayland.
package wayland

import (
	"os"
	"path/filepath"

	"github.com/bnema/wlidle/internal/bridge"
	"github.com/bnema/wlidle/internal/logger"
	"github.com/pkg/errors"
	"github.com/rajveermalviya/go-wayland/wayland/client"
)

// Versions requested when binding. Version 1 of each is all the bridge uses.
const (
	seatVersion         = 1
	idleNotifierVersion = 1
)

// Client is a connection to the Wayland compositor
type Client struct {
	display  *client.Display
	registry *client.Registry
}

var _ bridge.Compositor = (*Client)(nil)

// Dial connects to the compositor. An empty socket uses $WAYLAND_DISPLAY
// (or wayland-0) under $XDG_RUNTIME_DIR, a bare name is looked up there too
// and an absolute path is used as is.
func Dial(socket string) (*Client, error) {
	display, err := client.Connect(socketPath(socket))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	w := &Client{display: display}

	// Get the registry to discover global objects
	registry, err := display.GetRegistry()
	if err != nil {
		_ = w.Close()
		return nil, errors.Wrap(err, "failed to get registry")
	}
	w.registry = registry

	logger.Debug("Connected to Wayland display", "socket", socket)
	return w, nil
}

// socketPath resolves a bare socket name against $XDG_RUNTIME_DIR. The empty
// name is left for go-wayland to resolve from the environment.
func socketPath(socket string) string {
	if socket == "" || filepath.IsAbs(socket) {
		return socket
	}
	return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), socket)
}

// Dialer adapts Dial to bridge.Dialer
func Dialer(socket string) bridge.Dialer {
	return func() (bridge.Compositor, error) {
		c, err := Dial(socket)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Discover routes registry events to v and waits for a roundtrip, so every
// global advertised at connect time has been visited when it returns
func (w *Client) Discover(v bridge.Visitor) error {
	w.registry.SetGlobalHandler(func(e client.RegistryGlobalEvent) {
		v.Global(bridge.Global{Name: e.Name, Interface: e.Interface, Version: e.Version})
	})
	w.registry.SetGlobalRemoveHandler(func(e client.RegistryGlobalRemoveEvent) {
		v.GlobalRemove(e.Name)
	})
	return w.Roundtrip()
}

// Roundtrip blocks until the compositor has processed every request sent so
// far and all resulting events have been dispatched
func (w *Client) Roundtrip() error {
	callback, err := w.display.Sync()
	if err != nil {
		return errors.Wrap(err, "failed to request sync callback")
	}
	defer func() {
		if err := callback.Destroy(); err != nil {
			logger.Debug("Failed to destroy sync callback", "err", err)
		}
	}()

	done := false
	callback.SetDoneHandler(func(_ client.CallbackDoneEvent) {
		done = true
	})

	for !done {
		if err := w.display.Context().Dispatch(); err != nil {
			return errors.Wrap(err, "roundtrip interrupted")
		}
	}
	return nil
}

// BindSeat binds the advertised wl_seat
func (w *Client) BindSeat(g bridge.Global) (bridge.Handle, error) {
	ctx := w.display.Context()
	seat := client.NewSeat(ctx)
	if err := w.registry.Bind(g.Name, g.Interface, min(g.Version, seatVersion), seat); err != nil {
		ctx.Unregister(seat)
		return nil, errors.Wrapf(err, "failed to bind %s", g.Interface)
	}
	return &seatHandle{seat: seat}, nil
}

// Dispatch reads and dispatches the next event
func (w *Client) Dispatch() error {
	return w.display.Context().Dispatch()
}

// Close closes the connection. It is safe to call more than once.
func (w *Client) Close() error {
	if w.display == nil {
		return nil
	}
	err := w.display.Context().Close()
	w.display = nil
	w.registry = nil
	return err
}

// seatHandle owns a wl_seat bound at version 1, which has no destructor
// request; releasing it only drops the client-side proxy
type seatHandle struct {
	seat *client.Seat
}

func (s *seatHandle) Destroy() error {
	s.seat.Context().Unregister(s.seat)
	return nil
}
