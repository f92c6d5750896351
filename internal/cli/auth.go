package cli

import (
	"context"
	"errors"

	"github.com/scana-dk/scana/internal/common"
	"github.com/scana-dk/scana/internal/services"
)

func (a *App) loginCmd(ctx context.Context) {
	email, err := GetSimpleText(a.reader, a.language.T("email"), a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	password, err := GetPassword(a.language.T("password"), a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.println("Invalid email or password")
		} else {
			a.printf("error: %v\n", err)
		}
		return
	}

	a.session = sess
	a.printf("%s (%s)\n", a.language.T("welcomeBack"), sess.User.Name)
}

func (a *App) signupCmd(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name (optional)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	email, err := GetSimpleText(a.reader, a.language.T("email"), a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	password, err := GetPassword(a.language.T("password"), a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	defer common.WipeByteArray(confirm)

	terms, err := GetSimpleText(a.reader, "Accept the terms of service? (yes/no)", a.out)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	sess, err := a.auth.Signup(ctx, services.SignupRequest{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		AcceptTerms:     terms == "yes" || terms == "y",
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			a.println("That email is already registered")
		case errors.Is(err, common.ErrValidation):
			a.printf("Invalid input: %v\n", err)
		default:
			a.printf("error: %v\n", err)
		}
		return
	}

	a.session = sess
	a.printf("Account created. Welcome, %s!\n", sess.User.Name)
}

func (a *App) logoutCmd(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.session = nil
	a.println(a.language.T("logout"))
}
