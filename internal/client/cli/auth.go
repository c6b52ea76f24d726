package cli

import (
	"context"
	"fmt"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getInt64 = GetInt64

// Register prompts for the registration fields and creates an account.
// Registration does not sign the user in.
func (a *App) Register(ctx context.Context) error {
	var params models.RegisterParams
	var err error

	if params.StudentID, err = getSimpleText(a.reader, "Enter student id", a.out); err != nil {
		return err
	}
	if params.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if params.RealName, err = getSimpleText(a.reader, "Enter real name", a.out); err != nil {
		return err
	}
	if params.Phone, err = getSimpleText(a.reader, "Enter phone", a.out); err != nil {
		return err
	}
	if params.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if params.Password, err = getPassword(a.out); err != nil {
		return err
	}

	result := a.session.Register(ctx, params)
	if !result.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", result.Message)
		return nil
	}
	fmt.Fprintf(a.out, "%s (user id %d). You can now log in.\n", result.Message, result.UserID)
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context) error {
	loginField, err := getSimpleText(a.reader, "Enter username, student id or phone", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	result := a.session.Login(ctx, models.LoginParams{LoginField: loginField, Password: password})
	fmt.Fprintln(a.out, result.Message)
	return nil
}

// Logout drops the session and its durable record.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (user id %d, credit %d)\n", user.Username, user.UserID, user.CreditScore)
	return nil
}

// Refresh re-fetches the profile from the server.
func (a *App) Refresh(ctx context.Context) error {
	a.session.RefreshUserInfo(ctx)
	return a.WhoAmI(ctx)
}
