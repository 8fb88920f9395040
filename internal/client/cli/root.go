package cli

import (
	"context"
	"fmt"
)

// Root greets the user, renders the feed once and enters the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to foorum (type 'help' for commands)")
	if err := a.Feed(ctx); err != nil {
		a.log.Error(ctx, "initial feed load failed", "error", err)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}
