package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/btxcapital/site/internal/client/api"
	"github.com/btxcapital/site/internal/client/services"
	"github.com/btxcapital/site/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for administrator credentials and tries to authenticate.
//
// On success the credential is persisted by the auth service and the console
// switches to the authenticated command set. On bad credentials the server's
// own message is shown when it sent one. The password byte slice is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, string(password)); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrNoToken) {
			log.Printf("Login failed: %s", err.Error())
		} else {
			log.Printf("Login failed: %s", api.ServerMessage(err))
		}
		return err
	}

	log.Println("Login successful")
	return nil
}

// Logout drops the stored credential. It always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	log.Println("Logged out")
	return nil
}
