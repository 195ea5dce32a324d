// Package viewtest provides recording fakes for view surfaces in tests.
package viewtest

import (
	"sync"
)

// Notifier records every alert and notice.
type Notifier struct {
	mu      sync.Mutex
	alerts  []string
	notices []string
}

func (n *Notifier) Alert(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, msg)
}

func (n *Notifier) Notice(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, msg)
}

// Alerts returns the recorded alerts in order.
func (n *Notifier) Alerts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.alerts...)
}

// Notices returns the recorded notices in order.
func (n *Notifier) Notices() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.notices...)
}

// Confirmer answers every prompt with Answer and records the prompts.
type Confirmer struct {
	Answer bool

	mu      sync.Mutex
	prompts []string
}

func (c *Confirmer) Confirm(prompt string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, prompt)
	return c.Answer
}

// Prompts returns the recorded prompts.
func (c *Confirmer) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
