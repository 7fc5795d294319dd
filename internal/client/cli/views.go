package cli

import (
	"context"
	"fmt"

	"parikshamitra/internal/client/guard"
)

// Whoami prints the locally stored identity.
func (a *App) Whoami() {
	sess := a.session.Current()
	if !sess.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	u := sess.User
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
}

// Navigate resolves a requested view through the route guard and renders
// whatever view the guard lands on, which may differ from the request.
func (a *App) Navigate(ctx context.Context, target guard.View) error {
	sess := a.session.Current()
	role := ""
	if sess.User != nil {
		role = sess.User.Role
	}

	resolved := guard.Resolve(sess.LoggedIn(), role, target)
	if resolved != target {
		fmt.Fprintf(a.out, "Redirected to %s.\n", resolved)
	}

	switch resolved {
	case guard.ViewLogin:
		return a.Login(ctx)
	case guard.ViewRegister:
		return a.Register(ctx)
	case guard.ViewHome:
		a.renderHome(ctx)
	case guard.ViewTeacher:
		a.renderTeacher(ctx)
	}
	return nil
}

// renderHome shows the profile as the server currently knows it, falling back
// to the locally stored copy if the request fails.
func (a *App) renderHome(ctx context.Context) {
	sess := a.session.Current()

	u, err := a.client.Me(ctx, sess.Token)
	if err != nil {
		printError(a.out, err)
		u = sess.User
	}

	fmt.Fprintln(a.out, "=== Home ===")
	fmt.Fprintf(a.out, "Name:  %s\n", u.Name)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "Role:  %s\n", u.Role)
	if u.AvatarURL != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", u.AvatarURL)
	}
}

// renderTeacher shows the role-gated dashboard.
func (a *App) renderTeacher(ctx context.Context) {
	sess := a.session.Current()

	msg, err := a.client.TeacherOverview(ctx, sess.Token)
	if err != nil {
		printError(a.out, err)
		return
	}

	fmt.Fprintln(a.out, "=== Teacher dashboard ===")
	fmt.Fprintln(a.out, msg)
}
