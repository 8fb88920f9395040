package cli

import (
	"context"
	"fmt"
	"strings"
)

// Reset wipes the local store after confirmation. Anything but an explicit
// yes keeps the data.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete the session, posts and client id stored on this machine? [y/N]", a.out)
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		fmt.Fprintln(a.out, "Nothing deleted.")
		return nil
	}

	if err := a.sessions.ResetLocalData(ctx); err != nil {
		return err
	}
	a.clearDraft()
	fmt.Fprintln(a.out, "Local data deleted.")
	return nil
}
