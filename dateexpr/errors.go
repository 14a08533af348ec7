package dateexpr

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	// UnrecognizedFormat means no grammar class matched the input.
	UnrecognizedFormat Kind = iota
	// InvalidDate means a date class matched but the values do not form a
	// real calendar date, like month 13 or February 30.
	InvalidDate
	// InvalidTime means a time class matched but a value is out of range,
	// like hour 25 or minute 70.
	InvalidTime
	// MissingTime means the expression needs a time part and has none.
	MissingTime
)

func (k Kind) String() string {
	switch k {
	case InvalidDate:
		return "invalid date"
	case InvalidTime:
		return "invalid time"
	case MissingTime:
		return "missing time"
	default:
		return "unrecognized format"
	}
}

// ParseError reports why an expression could not be resolved. Input carries
// the offending expression so callers can echo it back to the user.
type ParseError struct {
	Input string
	Kind  Kind
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidDate:
		return fmt.Sprintf("invalid date %q", e.Input)
	case InvalidTime:
		return fmt.Sprintf("invalid time %q", e.Input)
	case MissingTime:
		return fmt.Sprintf("%q has no time part, expected <date>@<time>", e.Input)
	default:
		return fmt.Sprintf("can't understand %q as a date/time", e.Input)
	}
}
