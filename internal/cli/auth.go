package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to sign up. Failures are
// reported by the session controller through the notifier; on success a
// greeting is printed and the REPL's next prompt reflects the new view.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.session.SignUp(ctx, creds(email, username, password))

	if user := a.session.User(); user != nil {
		fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", user.Email)
	}
	return nil
}

// Login prompts for credentials and attempts to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.session.LogIn(ctx, creds(email, "", password))

	if user := a.session.User(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Email)
	}
	return nil
}

// Logout ends the session and returns the REPL to the login view.
func (a *App) Logout(ctx context.Context) error {
	a.session.LogOut(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
