package cli

import (
	"context"
	"fmt"
)

// Stats prints the local counters.
func (a *App) Stats(ctx context.Context) error {
	samples, err := a.metrics.Snapshot()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		fmt.Fprintln(a.out, "No activity recorded yet.")
		return nil
	}
	for _, s := range samples {
		fmt.Fprintln(a.out, s.String())
	}
	return nil
}
