/*
Package cli implements the interactive terminal client for Pariksha Mitra.

The App wires the REST API client, the persisted session store, and the
route guard into a small REPL: register, login, navigate between views,
and logout.
*/
package cli

import (
	"bufio"
	"io"
	"sync/atomic"

	"parikshamitra/internal/client/api"
	"parikshamitra/internal/client/session"
)

// App holds the client-side collaborators shared by all commands.
type App struct {
	reader  *bufio.Reader
	out     io.Writer
	client  api.Client
	session *session.Store

	// inFlight guards against duplicate submissions: while one network
	// call runs, further submit attempts are rejected, mirroring a
	// disabled submit button.
	inFlight atomic.Bool
}

// NewApp constructs an App reading prompts from in and writing to out.
func NewApp(client api.Client, sess *session.Store, in io.Reader, out io.Writer) *App {
	return &App{
		reader:  bufio.NewReader(in),
		out:     out,
		client:  client,
		session: sess,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// submit runs fn unless another submission is already in flight.
// It reports whether fn was actually run.
func (a *App) submit(fn func()) bool {
	if !a.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer a.inFlight.Store(false)

	fn()
	return true
}
