package bridge

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/bnema/wlidle/internal/emitter"
	"github.com/bnema/wlidle/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog routes the package logger into a buffer at the default level
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prevLevel := logger.Logger.GetLevel()
	logger.Logger.SetLevel(logger.ParseLevel(""))
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.Logger.SetLevel(prevLevel)
	})
	return &buf
}

func TestRunWritesOnlyDiagnosticToStderr(t *testing.T) {
	brokenPipe := errors.New("write unix @: sendmsg: broken pipe")

	tests := []struct {
		name    string
		comp    *fakeCompositor
		message string
	}{
		{
			name: "connection lost with failing releases",
			comp: &fakeCompositor{
				globals:    []Global{seatGlobal(1), notifierGlobal(2)},
				batches:    [][]string{{"idle"}, {"resume"}},
				destroyErr: brokenPipe,
			},
			message: "ERROR: Wayland dispatch failed: EOF\n",
		},
		{
			name: "bind failure",
			comp: &fakeCompositor{
				globals: []Global{seatGlobal(1), notifierGlobal(2)},
				bindErr: brokenPipe,
			},
			message: "ERROR: Wayland bind failed: bind wl_seat: " + brokenPipe.Error() + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLog(t)

			b := &Bridge{Dial: tt.comp.dialer(), TimeoutMS: 1000, Sink: &recordingSink{}}
			err := b.Run()
			require.Error(t, err)

			// stderr as main.go leaves it: log lines first, then the diagnostic
			stderr := bytes.NewBufferString(logs.String())
			emitter.Diagnose(stderr, err)

			assert.Empty(t, logs.String(), "nothing but the diagnostic may reach stderr")
			assert.Equal(t, tt.message, stderr.String())
			assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
			assertTornDownOnce(t, tt.comp)
		})
	}
}
