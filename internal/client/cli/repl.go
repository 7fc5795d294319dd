package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"parikshamitra/internal/client/guard"
)

const helpText = `Commands:
  register   create an account
  login      sign in
  whoami     show the stored identity
  home       open the home view
  teacher    open the teacher dashboard
  logout     sign out
  help       show this message
  exit       quit`

// Run reads commands until the input ends, the context is cancelled, or the
// user exits. The prompt reflects the current session state.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Pariksha Mitra client. Type 'help' for commands.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := GetSimpleText(a.reader, a.prompt(), a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if done := a.dispatch(ctx, strings.ToLower(line)); done {
			return nil
		}
	}
}

// prompt returns the REPL prompt, including the email when logged in.
func (a *App) prompt() string {
	sess := a.session.Current()
	if sess.LoggedIn() {
		return fmt.Sprintf("[%s]", sess.User.Email)
	}
	return "[anonymous]"
}

// dispatch runs one command and reports whether the REPL should stop.
func (a *App) dispatch(ctx context.Context, cmd string) bool {
	var err error

	switch cmd {
	case "":
	case "help":
		fmt.Fprintln(a.out, helpText)
	case "register":
		err = a.Navigate(ctx, guard.ViewRegister)
	case "login":
		err = a.Navigate(ctx, guard.ViewLogin)
	case "home":
		err = a.Navigate(ctx, guard.ViewHome)
	case "teacher":
		err = a.Navigate(ctx, guard.ViewTeacher)
	case "whoami":
		a.Whoami()
	case "logout":
		err = a.Logout(ctx)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye.")
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		printError(a.out, err)
	}
	return false
}
