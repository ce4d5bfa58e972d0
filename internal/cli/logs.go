package cli

import (
	"context"
	"fmt"
)

// ShowFoodLogs prints the current food log snapshot.
func (a *App) ShowFoodLogs(ctx context.Context) error {
	logs := a.session.AllFoodLogs()
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No food logged yet.")
		return nil
	}
	for _, entry := range logs {
		fmt.Fprintf(a.out, "%4d  %-24s %6.0f kcal\n", entry.ID, entry.Name, entry.Calories)
	}
	return nil
}

// ShowActivityLogs prints the current activity log snapshot.
func (a *App) ShowActivityLogs(ctx context.Context) error {
	logs := a.session.AllActivityLogs()
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No activity logged yet.")
		return nil
	}
	for _, entry := range logs {
		fmt.Fprintf(a.out, "%4d  %-24s %4d min %6.0f kcal\n", entry.ID, entry.Name, entry.Minutes, entry.Calories)
	}
	return nil
}

// Refresh re-fetches both log snapshots with the current token.
func (a *App) Refresh(ctx context.Context) error {
	token := a.session.Token()
	if token == "" {
		return nil
	}
	a.session.RestoreFoodLogs(ctx, token)
	a.session.RestoreActivityLogs(ctx, token)
	fmt.Fprintln(a.out, "Logs refreshed.")
	return nil
}
