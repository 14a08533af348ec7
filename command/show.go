package command

import (
	"caldr/model"
	"caldr/utils"
)

// ShowRequest names one record. ID may be an instance reference; the
// whole record comes back either way.
type ShowRequest struct {
	ID       string
	Calendar string
}

// Show fetches the named record from the calendar, defaulting to the
// store's default calendar.
func Show(st *utils.State, req ShowRequest) (*model.Event, error) {
	base, _, _ := ResolveID(req.ID)
	return st.Store.Get(calendarOr(st, req.Calendar), base)
}
