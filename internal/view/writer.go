package view

import (
	"io"
	"sync"
)

// SharedWriters wraps out and errOut so every Write to either goes through
// one lock. Tables, alerts and the shell prompt each emit a whole message in
// a single Write, so concurrent output never interleaves inside a message.
func SharedWriters(out, errOut io.Writer) (io.Writer, io.Writer) {
	mu := &sync.Mutex{}
	return &lockedWriter{mu: mu, w: out}, &lockedWriter{mu: mu, w: errOut}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
