package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/common"
)

// Events lists all events.
func (a *App) Events(ctx context.Context) error {
	events, err := a.events.List(ctx)
	if err != nil {
		a.notify.Error("could not load events")
		return err
	}
	a.printEvents(events)
	return nil
}

// Show renders one event with its category.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>", a.notify)
	if err != nil {
		return err
	}

	event, err := a.events.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.notify.Error("event not found")
		} else {
			a.notify.Error("could not load event")
		}
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n", event.ID, event.Title)
	fmt.Fprintf(a.out, "  %s\n", event.Description)
	fmt.Fprintf(a.out, "  date: %s", event.Date)
	if event.Location != "" {
		fmt.Fprintf(a.out, "  location: %s", event.Location)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "  participants: %s\n", formatCapacity(event))
	if event.CategoryID != 0 {
		// Category load failures are non-fatal for display.
		if category, err := a.categories.Get(ctx, event.CategoryID); err == nil {
			fmt.Fprintf(a.out, "  category: %s\n", category.Name)
		}
	}
	return nil
}

// Search lists events whose title matches the given term.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify.Warning("usage: search <term>")
		return errors.New("missing search term")
	}
	events, err := a.events.Search(ctx, args[0])
	if err != nil {
		a.notify.Error("search failed")
		return err
	}
	a.printEvents(events)
	return nil
}

func (a *App) Upcoming(ctx context.Context) error {
	events, err := a.events.Upcoming(ctx)
	if err != nil {
		a.notify.Error("could not load events")
		return err
	}
	a.printEvents(events)
	return nil
}

func (a *App) Past(ctx context.Context) error {
	events, err := a.events.Past(ctx)
	if err != nil {
		a.notify.Error("could not load events")
		return err
	}
	a.printEvents(events)
	return nil
}

// Mine lists the events created by the current user.
func (a *App) Mine(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		a.notify.Warning("log in first")
		return err
	}
	events, err := a.events.ListByUser(ctx, user.ID)
	if err != nil {
		a.notify.Error("could not load events")
		return err
	}
	a.printEvents(events)
	return nil
}

// Categories lists the category lookup table.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		a.notify.Error("could not load categories")
		return err
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "#%d %s (%s)\n", c.ID, c.Name, c.Color)
	}
	return nil
}

// Create prompts for the event fields and posts a new event owned by the
// current user.
func (a *App) Create(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		a.notify.Warning("log in first")
		return err
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Date (yyyy-mm-dd)", a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Location (optional)", a.out)
	if err != nil {
		return err
	}
	categoryID, err := GetOptionalInt(a.reader, "Category id (optional)", a.out)
	if err != nil {
		a.notify.Error(err.Error())
		return err
	}
	maxParticipants, err := GetOptionalInt(a.reader, "Max participants (optional)", a.out)
	if err != nil {
		a.notify.Error(err.Error())
		return err
	}

	event, err := a.events.Create(ctx, models.CreateEvent{
		Title:           title,
		Description:     description,
		Date:            date,
		Location:        location,
		CategoryID:      int64(categoryID),
		MaxParticipants: maxParticipants,
	}, user.ID)
	if err != nil {
		a.notify.Error("could not create event")
		return err
	}
	a.notify.Success(fmt.Sprintf("event #%d created", event.ID))
	return nil
}

// Edit patches selected fields of an event; blank answers keep the current
// values.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args, "edit <id>", a.notify)
	if err != nil {
		return err
	}

	current, err := a.events.Get(ctx, id)
	if err != nil {
		a.notify.Error("could not load event")
		return err
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Title [%s]", current.Title), a.out)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, fmt.Sprintf("Date [%s]", current.Date), a.out)
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, fmt.Sprintf("Location [%s]", current.Location), a.out)
	if err != nil {
		return err
	}

	var patch models.UpdateEvent
	if title != "" {
		patch.Title = &title
	}
	if date != "" {
		patch.Date = &date
	}
	if location != "" {
		patch.Location = &location
	}

	if _, err := a.events.Update(ctx, id, patch); err != nil {
		a.notify.Error("could not update event")
		return err
	}
	a.notify.Success("event updated")
	return nil
}

// Delete removes an event.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <id>", a.notify)
	if err != nil {
		return err
	}
	if err := a.events.Delete(ctx, id); err != nil {
		a.notify.Error("could not delete event")
		return err
	}
	a.notify.Success("event deleted")
	return nil
}

// Join registers the user as a participant of an event.
func (a *App) Join(ctx context.Context, args []string) error {
	id, err := parseID(args, "join <id>", a.notify)
	if err != nil {
		return err
	}

	event, err := a.events.RegisterParticipant(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEventFull):
			a.notify.Warning("event full")
		case errors.Is(err, common.ErrNotFound):
			a.notify.Error("event not found")
		default:
			a.notify.Error("registration failed")
		}
		return err
	}

	a.notify.Success(fmt.Sprintf("registered for %q (%s)", event.Title, formatCapacity(event)))
	return nil
}
