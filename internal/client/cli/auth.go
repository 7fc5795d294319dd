package cli

import (
	"context"
	"fmt"
	"strings"

	"parikshamitra/internal/client/api"
)

// Register walks through the registration form, submits it, and on success
// stores the returned session so the user is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in. Log out first to register a new account.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := a.promptEmail()
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role (student/teacher, empty for student)", a.out)
	if err != nil {
		return err
	}
	role = strings.ToLower(role)
	if role == "" {
		role = "student"
	}

	req := api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if role == "teacher" {
		code, err := GetSimpleText(a.reader, "Invitation code", a.out)
		if err != nil {
			return err
		}
		req.InvitationCode = code
	}

	started := a.submit(func() {
		result, err := a.client.Register(ctx, req)
		if err != nil {
			printError(a.out, err)
			return
		}
		if err := a.session.Login(ctx, result.User, result.Token); err != nil {
			printError(a.out, err)
			return
		}
		fmt.Fprintf(a.out, "%s Welcome, %s.\n", result.Message, result.User.Name)
	})
	if !started {
		fmt.Fprintln(a.out, "A request is already in progress.")
	}
	return nil
}

// Login prompts for credentials, submits them, and on success stores the
// returned session.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in.")
		return nil
	}

	email, err := a.promptEmail()
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	started := a.submit(func() {
		result, err := a.client.Login(ctx, email, password)
		if err != nil {
			printError(a.out, err)
			return
		}
		if err := a.session.Login(ctx, result.User, result.Token); err != nil {
			printError(a.out, err)
			return
		}
		fmt.Fprintf(a.out, "%s Welcome back, %s.\n", result.Message, result.User.Name)
	})
	if !started {
		fmt.Fprintln(a.out, "A request is already in progress.")
	}
	return nil
}

// Logout clears the stored session. The token is simply forgotten; nothing
// is sent to the server.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return nil
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
