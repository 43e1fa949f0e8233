package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	News(ctx context.Context) error
	Messages(ctx context.Context) error
	CreateArticle(ctx context.Context) error
	DeleteArticle(ctx context.Context) error
	SendMessage(ctx context.Context) error
}

// requireAuth gates an admin command on the local session state. When the
// session carries no credential the user is diverted to the login prompt
// first; the command runs only if login leaves the session authenticated.
// The check itself never touches the network.
func requireAuth(ctx context.Context, a execIface, fn func(context.Context) error) {
	if !a.isLoggedIn() {
		printlnFn("Authentication required, please log in.")
		if err := a.Login(ctx); err != nil {
			return
		}
		if !a.isLoggedIn() {
			return
		}
	}
	_ = fn(ctx)
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - news | n       — list published articles
//	  - contact        — send a message via the public contact form
//	  - login          — authenticate as an administrator
//	  - exit | quit    — leave the program
//
//	Admin only (divert to login when not authenticated):
//	  - messages | m   — list received contact messages
//	  - create         — create a news article (with optional PDF)
//	  - delete         — delete a news article (asks for confirmation)
//	  - logout         — drop the stored credential
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("btx> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (n)ews, (m)essages, create, delete, contact, logout, exit")
			} else {
				printlnFn("Available commands: (n)ews, contact, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			requireAuth(ctx, a, func(ctx context.Context) error { return a.Logout(ctx) })

		case "n", "news":
			_ = a.News(ctx)

		case "contact":
			_ = a.SendMessage(ctx)

		case "m", "messages":
			requireAuth(ctx, a, a.Messages)

		case "create":
			requireAuth(ctx, a, a.CreateArticle)

		case "delete":
			requireAuth(ctx, a, a.DeleteArticle)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
