/*
Package guard implements the client-side route guard.

Each view declares its required authentication state; Resolve maps a
navigation attempt onto the view the client should actually show, redirecting
unauthenticated users away from protected views and authenticated users away
from the auth forms.
*/
package guard

// View names a navigable client view.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewHome     View = "home"
	ViewTeacher  View = "teacher"
)

// access describes the authentication state a view requires.
type access int

const (
	// publicOnly views (login, register) are for logged-out users.
	publicOnly access = iota

	// authenticated views require any logged-in identity.
	authenticated

	// roleGated views additionally require a specific role.
	roleGated
)

// policy binds a view to its access requirement.
type policy struct {
	access access
	role   string
}

var policies = map[View]policy{
	ViewLogin:    {access: publicOnly},
	ViewRegister: {access: publicOnly},
	ViewHome:     {access: authenticated},
	ViewTeacher:  {access: roleGated, role: "teacher"},
}

// Resolve returns the view to display for a navigation attempt.
//
// Redirect rules: a logged-out user requesting anything but an auth form
// lands on login; a logged-in user requesting an auth form lands on home; a
// role-gated view falls back to home when the role does not match. Unknown
// views default to login for logged-out users and home otherwise.
func Resolve(loggedIn bool, role string, target View) View {
	p, known := policies[target]
	if !known {
		if loggedIn {
			return ViewHome
		}
		return ViewLogin
	}

	switch p.access {
	case publicOnly:
		if loggedIn {
			return ViewHome
		}
		return target

	case authenticated:
		if !loggedIn {
			return ViewLogin
		}
		return target

	case roleGated:
		if !loggedIn {
			return ViewLogin
		}
		if role != p.role {
			return ViewHome
		}
		return target
	}

	return ViewLogin
}
