package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

type authMode int

const (
	modeLogin authMode = iota
	modeSignup
)

// Answers that switch between the login and signup prompts.
const (
	switchToSignup = ":signup"
	switchToLogin  = ":login"
)

// Login opens the login prompt. After a successful sign-in a pending draft
// is offered for posting.
func (a *App) Login(ctx context.Context) error {
	return a.openAuth(ctx, modeLogin)
}

// Signup opens the signup prompt; otherwise identical to Login.
func (a *App) Signup(ctx context.Context) error {
	return a.openAuth(ctx, modeSignup)
}

func (a *App) openAuth(ctx context.Context, mode authMode) error {
	if a.isLoggedIn() {
		u, _ := a.sessions.CurrentUser()
		fmt.Fprintf(a.out, "Already signed in as %s. Use logout first.\n", u.Name)
		return nil
	}

	ok, err := a.authFlow(ctx, mode)
	if err != nil || !ok {
		if !a.currentDraft().empty() {
			fmt.Fprintln(a.out, "Your draft is kept. Use `draft` to see it.")
		}
		return err
	}

	u, _ := a.sessions.CurrentUser()
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return a.offerDraft(ctx)
}

// authFlow runs the login/signup prompts until the user signs in (true) or
// cancels with an empty first answer (false). Rejections are shown and the
// prompt starts over, like a dialog that stays open.
func (a *App) authFlow(ctx context.Context, mode authMode) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		var (
			next authMode
			done bool
			err  error
		)
		switch mode {
		case modeSignup:
			next, done, err = a.signupOnce(ctx)
		default:
			next, done, err = a.loginOnce(ctx)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, errCancelled) {
			fmt.Fprintln(a.out, "Cancelled.")
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		mode = next
	}
}

var errCancelled = errors.New("cancelled")

func (a *App) loginOnce(ctx context.Context) (authMode, bool, error) {
	fmt.Fprintf(a.out, "Log in (enter %s to create an account, empty email to cancel)\n", switchToSignup)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return modeLogin, false, err
	}
	switch email {
	case "":
		return modeLogin, false, errCancelled
	case switchToSignup:
		return modeSignup, false, nil
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return modeLogin, false, err
	}

	r := <-a.sessions.LoginAsync(ctx, email, password)
	if !r.Success {
		fmt.Fprintln(a.out, "Error:", r.Error)
		return modeLogin, false, nil
	}
	return modeLogin, true, nil
}

func (a *App) signupOnce(ctx context.Context) (authMode, bool, error) {
	fmt.Fprintf(a.out, "Sign up (enter %s to use an existing account, empty name to cancel)\n", switchToLogin)

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return modeSignup, false, err
	}
	switch name {
	case "":
		return modeSignup, false, errCancelled
	case switchToLogin:
		return modeLogin, false, nil
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return modeSignup, false, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return modeSignup, false, err
	}

	r := <-a.sessions.SignupAsync(ctx, name, email, password)
	if !r.Success {
		fmt.Fprintln(a.out, "Error:", r.Error)
		return modeSignup, false, nil
	}
	return modeSignup, true, nil
}

// Logout ends the session and discards the composer draft.
func (a *App) Logout(ctx context.Context) error {
	wasIn := a.isLoggedIn()
	a.clearDraft()
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	if wasIn {
		fmt.Fprintln(a.out, "Logged out.")
	} else {
		fmt.Fprintln(a.out, "Not signed in.")
	}
	return nil
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.sessions.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s, avatar %s)\n", u.Name, u.Email, u.ID, u.Avatar)
	return nil
}
