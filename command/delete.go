package command

import (
	"caldr/utils"
)

// DeleteRequest names the record to remove. An instance reference deletes
// the whole series; asking the user whether they meant that is the front
// end's concern.
type DeleteRequest struct {
	ID       string
	Calendar string
}

// Delete removes the named record and its file.
func Delete(st *utils.State, req DeleteRequest) error {
	base, _, _ := ResolveID(req.ID)
	return st.Store.Delete(calendarOr(st, req.Calendar), base)
}
