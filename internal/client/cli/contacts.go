package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/btxcapital/site/internal/client/models"
	"github.com/btxcapital/site/internal/client/services"
)

// Messages fetches and prints every received contact message, newest logic
// left to the backend ordering. Names missing on a message render as
// "Unknown".
func (a *App) Messages(ctx context.Context) error {
	fmt.Println("Loading messages...")

	msgs, err := a.contactsService.FetchAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(msgs) == 0 {
		fmt.Println("No messages yet.")
		return nil
	}

	for _, m := range msgs {
		fmt.Printf("#%d  %s <%s>  %s\n", m.ID, m.DisplayName(), m.Email, m.CreatedAt)
		fmt.Println(m.Message)
		fmt.Println()
	}
	return nil
}

// SendMessage walks the public contact form: optional names, required email
// and message. Validation failures are reported before anything is sent.
func (a *App) SendMessage(ctx context.Context) error {
	first, err := getSimpleText(a.reader, "Enter first name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, "Enter last name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Enter your message:", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.ContactDraft{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Message:   message,
	}

	if err := a.contactsService.Submit(ctx, draft); err != nil {
		if errors.Is(err, services.ErrEmailRequired) || errors.Is(err, services.ErrMessageRequired) {
			fmt.Println(err.Error())
		} else {
			fmt.Println(services.ContactSubmitFailure)
		}
		return err
	}

	fmt.Println(services.ContactSubmitSuccess)
	return nil
}
