package bridge

import (
	"github.com/bnema/wlidle/internal/emitter"
	"github.com/bnema/wlidle/internal/logger"
)

// subscribe creates the run's single idle notification. Its callbacks forward
// straight to sink, so tokens leave in the order the compositor sent events.
func subscribe(notifier IdleNotifier, timeoutMS uint32, seat Handle, sink Sink) (Handle, error) {
	l := Listener{
		OnIdle: func() {
			forward(sink, emitter.Idle)
		},
		OnResume: func() {
			forward(sink, emitter.Resumed)
		},
	}
	return notifier.Subscribe(timeoutMS, seat, l)
}

func forward(sink Sink, token emitter.Token) {
	logger.Debug("Idle state changed", "token", token)
	if err := sink.Emit(token); err != nil {
		logger.Error("Failed to emit token", "token", token, "err", err)
	}
}
