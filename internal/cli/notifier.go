package cli

import (
	"fmt"
	"io"
)

// Notifier prints user-facing notices to the terminal, the CLI stand-in for
// the web client's toast popups.
type Notifier struct {
	w io.Writer
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) Info(msg string) {
	fmt.Fprintf(n.w, "-- %s\n", msg)
}

func (n *Notifier) Error(msg string) {
	fmt.Fprintf(n.w, "!! %s\n", msg)
}
