package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mjacquet/eventdesk/internal/client/models"
)

// parseID extracts the numeric id argument of a command, notifying the user
// on misuse.
func parseID(args []string, usage string, notify *Notifier) (int64, error) {
	if len(args) == 0 {
		notify.Warning("usage: " + usage)
		return 0, errors.New("missing id argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		notify.Warning("usage: " + usage)
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// formatCapacity renders "3/50" or just "3" for unlimited events.
func formatCapacity(e *models.Event) string {
	if e.MaxParticipants > 0 {
		return fmt.Sprintf("%d/%d", e.CurrentParticipants, e.MaxParticipants)
	}
	return strconv.Itoa(e.CurrentParticipants)
}

func (a *App) printEvents(events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "no events")
		return
	}
	for _, e := range events {
		line := fmt.Sprintf("#%d %s | %s (%s)", e.ID, e.Title, e.Date, formatCapacity(&e))
		if e.Location != "" {
			line += " @ " + e.Location
		}
		fmt.Fprintln(a.out, line)
	}
}
