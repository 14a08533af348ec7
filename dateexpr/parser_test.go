package dateexpr_test

import (
	"errors"
	"testing"
	"time"

	"caldr/dateexpr"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ref   time.Time
		want  time.Time
	}{
		{
			name:  "relative date with bare hour",
			input: "tom@14",
			ref:   date(2024, time.January, 31),
			want:  time.Date(2024, time.February, 1, 14, 0, 0, 0, time.Local),
		},
		{
			name:  "day month with clock time",
			input: "14-jul@12:30",
			ref:   date(2024, time.January, 10),
			want:  time.Date(2024, time.July, 14, 12, 30, 0, 0, time.Local),
		},
		{
			name:  "full date with clock time",
			input: "2024/08/06@08:00",
			ref:   date(2024, time.January, 10),
			want:  time.Date(2024, time.August, 6, 8, 0, 0, 0, time.Local),
		},
		{
			name:  "no separator defaults to midnight",
			input: "monday",
			ref:   date(2024, time.January, 1),
			want:  date(2024, time.January, 8),
		},
		{
			name:  "surrounding spaces tolerated",
			input: " tom @ 14 ",
			ref:   date(2024, time.January, 31),
			want:  time.Date(2024, time.February, 1, 14, 0, 0, 0, time.Local),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dateexpr.ParseDateTime(tt.input, tt.ref)
			if err != nil {
				t.Fatalf("ParseDateTime(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateTimeStrict(t *testing.T) {
	ref := date(2024, time.January, 31)

	got, err := dateexpr.ParseDateTimeStrict("tom@14", ref)
	if err != nil {
		t.Fatalf("ParseDateTimeStrict(tom@14) error: %v", err)
	}
	want := time.Date(2024, time.February, 1, 14, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDateTimeStrict(tom@14) = %v, want %v", got, want)
	}

	tests := []struct {
		name  string
		input string
		kind  dateexpr.Kind
	}{
		{"date without time", "tomorrow", dateexpr.MissingTime},
		{"separator without time", "tom@", dateexpr.MissingTime},
		{"separator without date", "@14", dateexpr.UnrecognizedFormat},
		{"two separators", "a@b@c", dateexpr.UnrecognizedFormat},
		{"invalid hour", "tom@25", dateexpr.InvalidTime},
		{"invalid date part", "32-01@10:00", dateexpr.InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dateexpr.ParseDateTimeStrict(tt.input, ref)
			if err == nil {
				t.Fatalf("ParseDateTimeStrict(%q) expected error", tt.input)
			}
			var pe *dateexpr.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParseDateTimeStrict(%q) error %T, want *ParseError", tt.input, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("ParseDateTimeStrict(%q) kind = %v, want %v", tt.input, pe.Kind, tt.kind)
			}
		})
	}
}

func TestParserWithNatural(t *testing.T) {
	ref := time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local) // Wednesday
	p := dateexpr.New(dateexpr.WithNatural())

	got, err := p.ParseDate("next friday", ref)
	if err != nil {
		t.Fatalf("ParseDate(next friday) error: %v", err)
	}
	if got.Weekday() != time.Friday || !got.After(ref) {
		t.Errorf("ParseDate(next friday) = %v, want an upcoming Friday", got)
	}

	// grammar classes keep priority over the natural recognizer
	got, err = p.ParseDate("31-01", date(2024, time.February, 1))
	if err != nil {
		t.Fatalf("ParseDate(31-01) error: %v", err)
	}
	if want := date(2025, time.January, 31); !got.Equal(want) {
		t.Errorf("ParseDate(31-01) = %v, want %v", got, want)
	}

	// the default parser stays strict
	if _, err := dateexpr.ParseDate("next friday", ref); err == nil {
		t.Error("ParseDate(next friday) without WithNatural expected error")
	}
}
