package command

import (
	"fmt"
	"strings"
	"time"

	"caldr/model"
	"caldr/utils"
)

// EditRequest updates the named record. Nil fields keep their stored
// values, supplied fields replace them after the whole record revalidates.
type EditRequest struct {
	ID       string
	Calendar string

	Name        *string
	At          *string // new start, <date>@<time>
	To          *string // new end, <date>@<time>
	Location    *string
	Description *string
}

// Edit parses the supplied fields, applies them as one atomic change and
// returns the updated record. A failing field leaves the stored record
// untouched.
func Edit(st *utils.State, now time.Time, req EditRequest) (*model.Event, error) {
	var patch model.Patch
	if req.Name != nil {
		name := utils.CleanupString(*req.Name)
		patch.Summary = &name
	}
	if req.At != nil {
		start, err := st.Parser.ParseDateTimeStrict(*req.At, now)
		if err != nil {
			return nil, fmt.Errorf("Edit: can't parse the start date: %w", err)
		}
		patch.Start = &start
	}
	if req.To != nil {
		end, err := st.Parser.ParseDateTimeStrict(*req.To, now)
		if err != nil {
			return nil, fmt.Errorf("Edit: can't parse the end date: %w", err)
		}
		patch.End = &end
	}
	if req.Location != nil {
		location := utils.CleanupString(*req.Location)
		patch.Location = &location
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		patch.Description = &description
	}

	base, _, _ := ResolveID(req.ID)
	return st.Store.Update(calendarOr(st, req.Calendar), base, patch)
}
