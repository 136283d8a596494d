package wayland

import (
	"github.com/bnema/wlidle/internal/bridge"
	"github.com/pkg/errors"
	idlenotify "github.com/rajveermalviya/go-wayland/wayland/staging/ext-idle-notify-v1"
)

// BindIdleNotifier binds the advertised ext_idle_notifier_v1
func (w *Client) BindIdleNotifier(g bridge.Global) (bridge.IdleNotifier, error) {
	ctx := w.display.Context()
	notifier := idlenotify.NewIdleNotifier(ctx)
	if err := w.registry.Bind(g.Name, g.Interface, min(g.Version, idleNotifierVersion), notifier); err != nil {
		ctx.Unregister(notifier)
		return nil, errors.Wrapf(err, "failed to bind %s", g.Interface)
	}
	return &idleNotifier{notifier: notifier}, nil
}

type idleNotifier struct {
	notifier *idlenotify.IdleNotifier
}

func (n *idleNotifier) Destroy() error {
	return n.notifier.Destroy()
}

// Subscribe requests an ext_idle_notification_v1 for seat and installs l
func (n *idleNotifier) Subscribe(timeoutMS uint32, seat bridge.Handle, l bridge.Listener) (bridge.Handle, error) {
	s, ok := seat.(*seatHandle)
	if !ok {
		return nil, errors.Errorf("unexpected seat handle %T", seat)
	}

	notification, err := n.notifier.GetIdleNotification(timeoutMS, s.seat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request idle notification")
	}

	notification.SetIdledHandler(func(_ idlenotify.IdleNotificationIdledEvent) {
		if l.OnIdle != nil {
			l.OnIdle()
		}
	})
	notification.SetResumedHandler(func(_ idlenotify.IdleNotificationResumedEvent) {
		if l.OnResume != nil {
			l.OnResume()
		}
	})
	return notification, nil
}
