package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(admin)"
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the site admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
