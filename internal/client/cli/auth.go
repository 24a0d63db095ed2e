package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/common"
)

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailNotFound):
			a.notify.Error("email not found")
		case errors.Is(err, common.ErrIncorrectPassword):
			a.notify.Error("incorrect password")
		case errors.Is(err, common.ErrUnavailable):
			a.notify.Error("server unavailable")
		default:
			a.notify.Error("login failed")
		}
		return err
	}

	a.notify.Success(fmt.Sprintf("welcome back, %s", user.DisplayName()))
	return nil
}

// Register prompts for a new identity and establishes a session for it.
// Password confirmation is validated here, before the workflow is called.
func (a *App) Register(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		a.notify.Error("passwords do not match")
		return errors.New("passwords do not match")
	}

	user, err := a.auth.Register(ctx, models.RegisterData{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		a.notify.Error("registration failed")
		return err
	}

	a.notify.Success(fmt.Sprintf("account created for %s", user.DisplayName()))
	return nil
}

// Logout clears the session; it always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.notify.Info("logged out")
	return nil
}

// Whoami prints the stored identity.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.notify.Error("could not read session")
		return err
	}
	if user == nil {
		a.notify.Info("not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.DisplayName(), user.Email)
	return nil
}

// Profile edits the current identity: blank answers keep existing values.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		a.notify.Warning("log in first")
		return err
	}

	firstName, err := GetSimpleText(a.reader, fmt.Sprintf("First name [%s]", user.FirstName), a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, fmt.Sprintf("Last name [%s]", user.LastName), a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s]", user.Email), a.out)
	if err != nil {
		return err
	}

	updated := *user
	if firstName != "" {
		updated.FirstName = firstName
	}
	if lastName != "" {
		updated.LastName = lastName
	}
	if email != "" {
		updated.Email = email
	}

	if _, err := a.auth.UpdateProfile(ctx, updated); err != nil {
		a.notify.Error("profile update failed")
		return err
	}
	a.notify.Success("profile updated")
	return nil
}
