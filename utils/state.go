package utils

import (
	"log/slog"

	"github.com/joho/godotenv"

	"caldr/dateexpr"
	"caldr/store"
)

// State carries everything a command needs: the env config, the event
// store and the date expression parser.
type State struct {
	Config *Config
	Store  *store.Store
	Parser *dateexpr.Parser
}

func NewState() *State {
	st := &State{}

	// env
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	st.Config = NewConfig()

	// date parser
	var opts []dateexpr.Option
	if st.Config.GetNaturalDates() {
		opts = append(opts, dateexpr.WithNatural())
	}
	st.Parser = dateexpr.New(opts...)

	// event files
	st.Store = store.New(st.Config.GetCalendarDir())
	st.Store.SetDefaultCalendar(st.Config.GetDefaultCalendar())

	return st
}
