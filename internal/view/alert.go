package view

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// GenericFailure is appended to failure labels when the backend gave no detail.
const GenericFailure = "Consulta el registro para más detalles."

// Notifier is the user-visible alert channel.
type Notifier interface {
	// Alert shows a blocking, prominent failure message.
	Alert(msg string)
	// Notice shows a confirmation message.
	Notice(msg string)
}

// Console writes alerts to errOut and notices to out.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a terminal notifier.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

func (c *Console) Alert(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.errOut, "❌ %s\n", msg)
}

func (c *Console) Notice(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "✅ %s\n", msg)
}

// userMessenger is implemented by errors that carry a message meant for the
// operator, such as the backend's error detail.
type userMessenger interface {
	UserMessage() string
}

// FailureMessage builds the alert text for a failed action: the label
// followed by the backend detail or validation messages when available,
// else the generic hint.
func FailureMessage(label string, err error) string {
	var um userMessenger
	if errors.As(err, &um) {
		if msg := strings.TrimSpace(um.UserMessage()); msg != "" {
			return label + ": " + msg
		}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			msgs = append(msgs, fe.Field+": "+fe.Message)
		}
		return label + ": " + strings.Join(msgs, "; ")
	}

	return label + ". " + GenericFailure
}

type alertedError struct{ err error }

func (e *alertedError) Error() string { return e.err.Error() }
func (e *alertedError) Unwrap() error { return e.err }

// MarkAlerted wraps err to record that the operator has already been shown
// an alert for it.
func MarkAlerted(err error) error {
	if err == nil || WasAlerted(err) {
		return err
	}
	return &alertedError{err: err}
}

// WasAlerted reports whether err was already surfaced through a Notifier.
func WasAlerted(err error) bool {
	var ae *alertedError
	return errors.As(err, &ae)
}
