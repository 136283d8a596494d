// Package emitter writes the line protocol read by the parent process.
package emitter

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Token is one line of the stdout protocol
type Token string

const (
	Ready   Token = "READY"
	Idle    Token = "IDLE"
	Resumed Token = "RESUMED"
)

// Emitter writes tokens one per line and flushes after each
type Emitter struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// New creates an emitter writing to w
func New(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// Emit writes token followed by a newline and flushes it before returning
func (e *Emitter) Emit(token Token) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.w.WriteString(string(token) + "\n"); err != nil {
		return errors.Wrapf(err, "failed to write %s", token)
	}
	if err := e.w.Flush(); err != nil {
		return errors.Wrapf(err, "failed to flush %s", token)
	}
	return nil
}

// Diagnose writes the single human-readable line reported for a fatal error
func Diagnose(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "ERROR: %v\n", err)
}
