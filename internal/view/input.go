package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Field is a single-line text input.
type Field interface {
	Value() string
	Clear()
}

// TextField is an in-memory Field.
type TextField struct {
	mu    sync.Mutex
	value string
}

// NewTextField creates a field holding value.
func NewTextField(value string) *TextField {
	return &TextField{value: value}
}

func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *TextField) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

func (f *TextField) Clear() { f.Set("") }

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// AlwaysConfirm approves every prompt (used with --yes).
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(string) bool { return true }

// Prompt asks on out and reads a y/n answer from in. Anything other than
// "s", "si", "sí", "y" or "yes" declines.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a terminal Confirmer.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [s/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// Option is an entry of a select list.
type Option struct {
	Value string
	Label string
}

// Options is a select list whose entries are replaced on every refresh.
type Options struct {
	mu    sync.RWMutex
	items []Option
}

// Replace sets the list entries.
func (o *Options) Replace(items []Option) {
	cp := make([]Option, len(items))
	copy(cp, items)
	o.mu.Lock()
	o.items = cp
	o.mu.Unlock()
}

// Items returns a copy of the entries.
func (o *Options) Items() []Option {
	o.mu.RLock()
	defer o.mu.RUnlock()
	cp := make([]Option, len(o.items))
	copy(cp, o.items)
	return cp
}

// Label returns the label for value, if listed.
func (o *Options) Label(value string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, it := range o.items {
		if it.Value == value {
			return it.Label, true
		}
	}
	return "", false
}
