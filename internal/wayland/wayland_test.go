package wayland

import (
	"path/filepath"
	"testing"

	"github.com/bnema/wlidle/internal/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialWithoutCompositor(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	t.Setenv("WAYLAND_DISPLAY", "wayland-test-missing")

	c, err := Dial("")
	require.Error(t, err)
	assert.Nil(t, c)

	_, err = Dial(filepath.Join(dir, "no-such-socket"))
	assert.Error(t, err)
}

func TestDialerReportsConnectionError(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	comp, err := Dialer("wayland-test-missing")()
	require.Error(t, err)
	assert.Nil(t, comp, "a failed dial must not return a typed nil")

	// The bridge wraps it as a connection error before touching anything else
	runErr := (&bridge.Bridge{Dial: Dialer("wayland-test-missing")}).Run()
	var connErr *bridge.ConnectionError
	assert.ErrorAs(t, runErr, &connErr)
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	assert.Equal(t, "", socketPath(""))
	assert.Equal(t, "/tmp/wl.sock", socketPath("/tmp/wl.sock"))
	assert.Equal(t, "/run/user/1000/wayland-1", socketPath("wayland-1"))
}

func TestCloseIsIdempotent(t *testing.T) {
	c := &Client{}
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestSubscribeRejectsForeignSeat(t *testing.T) {
	n := &idleNotifier{}
	_, err := n.Subscribe(1000, otherHandle{}, bridge.Listener{})
	assert.ErrorContains(t, err, "unexpected seat handle")
}

type otherHandle struct{}

func (otherHandle) Destroy() error { return nil }
