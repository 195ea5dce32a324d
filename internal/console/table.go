// Package console is the interactive operator shell. Every command maps to
// a handler registered once in a Table.
package console

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Event is one parsed shell line.
type Event struct {
	Name string
	// Args are the positional arguments.
	Args []string
	// Params are the key=value arguments.
	Params map[string]string
}

// Arg returns the i-th positional argument or "".
func (e Event) Arg(i int) string {
	if i < 0 || i >= len(e.Args) {
		return ""
	}
	return e.Args[i]
}

// Param returns the first present value among keys.
func (e Event) Param(keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := e.Params[k]; ok {
			return v, true
		}
	}
	return "", false
}

// Handler reacts to an event.
type Handler func(ctx context.Context, ev Event) error

// Binding registers a handler under an event name. Async handlers run in
// the background so the operator can keep typing.
type Binding struct {
	Name   string
	Usage  string
	Help   string
	Async  bool
	Handle Handler
}

// Table is the immutable event routing table.
type Table struct {
	bindings map[string]Binding
}

// NewTable builds a Table. Duplicate or empty names are an error.
func NewTable(bindings ...Binding) (*Table, error) {
	t := &Table{bindings: make(map[string]Binding, len(bindings))}
	for _, b := range bindings {
		if b.Name == "" || b.Handle == nil {
			return nil, fmt.Errorf("console: binding %q: name and handler required", b.Name)
		}
		if _, dup := t.bindings[b.Name]; dup {
			return nil, fmt.Errorf("console: duplicate binding %q", b.Name)
		}
		t.bindings[b.Name] = b
	}
	return t, nil
}

// Lookup returns the binding for name.
func (t *Table) Lookup(name string) (Binding, bool) {
	b, ok := t.bindings[name]
	return b, ok
}

// Bindings returns all bindings sorted by name.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseLine splits a shell line into an Event. Double quotes group words;
// tokens of the form key=value become params.
func ParseLine(line string) (Event, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return Event{}, err
	}
	if len(tokens) == 0 {
		return Event{}, nil
	}

	ev := Event{Name: strings.ToLower(tokens[0].text), Params: map[string]string{}}
	for _, tok := range tokens[1:] {
		if k, v, ok := strings.Cut(tok.text, "="); ok && !tok.quoted && k != "" {
			ev.Params[strings.ToLower(k)] = v
			continue
		}
		ev.Args = append(ev.Args, tok.text)
	}
	return ev, nil
}

type token struct {
	text   string
	quoted bool
}

func tokenize(line string) ([]token, error) {
	var (
		tokens  []token
		cur     strings.Builder
		inQuote bool
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			tokens = append(tokens, token{text: cur.String(), quoted: quoted})
		}
		cur.Reset()
		quoted, started = false, false
	}

	for _, r := range line {
		switch {
		case r == '"':
			if !started {
				quoted = true
			}
			inQuote = !inQuote
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()

	out := make([]token, 0, len(tokens))
	for _, t := range tokens {
		if t.text == "" && !t.quoted {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
