package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fittrack/internal/session"
)

// commandSurface defines the minimal command set the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type commandSurface interface {
	CurrentView() session.View
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Onboard(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	ShowFoodLogs(ctx context.Context) error
	ShowActivityLogs(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// viewCommands maps each view to the commands reachable from it. The
// onboarding view deliberately excludes everything but finishing the setup
// or leaving.
var viewCommands = map[session.View][]string{
	session.ViewLogin:      {"register", "login"},
	session.ViewOnboarding: {"onboard", "logout"},
	session.ViewMain:       {"profile", "food", "activity", "refresh", "onboard", "logout"},
}

// runREPL reads commands line by line and dispatches those allowed in the
// current view. Handler errors are ignored here; handlers report their own
// failures, keeping the loop focused on I/O. Exits on scanner EOF or on
// "exit"/"quit".
func runREPL(ctx context.Context, a commandSurface, promptFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "fit %s> ", promptFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		view := a.CurrentView()
		if cmd == "help" {
			fmt.Fprintf(w, "Available commands: %s, exit\n", strings.Join(viewCommands[view], ", "))
			continue
		}

		if !allowed(view, cmd) {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "onboard":
			_ = a.Onboard(ctx)
		case "profile":
			_ = a.ShowProfile(ctx)
		case "food":
			_ = a.ShowFoodLogs(ctx)
		case "activity":
			_ = a.ShowActivityLogs(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		}
	}
}

func allowed(view session.View, cmd string) bool {
	for _, c := range viewCommands[view] {
		if c == cmd {
			return true
		}
	}
	return false
}
