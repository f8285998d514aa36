// Package schedule decides whether the storefront takes orders at a given
// instant. Everything here is pure: same inputs, same StoreStatus.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bakery/internal/errors"
)

const minutesPerDay = 24 * 60

// Band is one day's opening window in minutes after local midnight,
// half-open: [Open, Close).
type Band struct {
	Open  int
	Close int
}

// Contains reports whether minute-of-day m is inside the band.
func (b Band) Contains(m int) bool {
	return m >= b.Open && m < b.Close
}

func (b Band) validate() error {
	if b.Open < 0 || b.Close > minutesPerDay {
		return errors.Errorf("band %s-%s outside of the day", formatClock(b.Open), formatClock(b.Close))
	}
	if b.Open >= b.Close {
		return errors.Errorf("band opens at %s but closes at %s", formatClock(b.Open), formatClock(b.Close))
	}

	return nil
}

// Week is indexed by time.Weekday. A nil entry means closed all day.
type Week [7]*Band

// DefaultWeek is the bakery's regular timetable:
// Mon-Fri 09:00-20:00, Sat 09:00-16:00, Sun 09:00-13:00.
func DefaultWeek() Week {
	weekday := func() *Band { return &Band{Open: 9 * 60, Close: 20 * 60} }

	return Week{
		time.Sunday:    {Open: 9 * 60, Close: 13 * 60},
		time.Monday:    weekday(),
		time.Tuesday:   weekday(),
		time.Wednesday: weekday(),
		time.Thursday:  weekday(),
		time.Friday:    weekday(),
		time.Saturday:  {Open: 9 * 60, Close: 16 * 60},
	}
}

// DayHours is the textual form of one day in configuration.
type DayHours struct {
	Open   string
	Close  string
	Closed bool
}

// ParseWeek overlays configured days on DefaultWeek. Keys are English day
// names in any case ("monday", "Saturday").
func ParseWeek(days map[string]DayHours) (Week, error) {
	week := DefaultWeek()

	for name, hours := range days {
		day, ok := parseWeekday(name)
		if !ok {
			return Week{}, errors.Errorf("unknown weekday %q", name)
		}

		if hours.Closed {
			week[day] = nil

			continue
		}

		band, err := NewBand(hours.Open, hours.Close)
		if err != nil {
			return Week{}, errors.Wrapf(err, "invalid hours for %s", name)
		}
		week[day] = band
	}

	return week, nil
}

// NewBand parses an "HH:MM"-"HH:MM" pair.
func NewBand(openAt, closeAt string) (*Band, error) {
	openMin, err := ParseClock(openAt)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseClock(closeAt)
	if err != nil {
		return nil, err
	}

	band := &Band{Open: openMin, Close: closeMin}
	if err := band.validate(); err != nil {
		return nil, err
	}

	return band, nil
}

// ParseClock turns "HH:MM" into minutes after midnight. "24:00" is allowed
// as a closing time.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, errors.Errorf("time %q is not HH:MM", s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errors.Wrapf(err, "time %q has a bad hour", s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errors.Wrapf(err, "time %q has a bad minute", s)
	}

	if hours < 0 || minutes < 0 || minutes > 59 || hours*60+minutes > minutesPerDay {
		return 0, errors.Errorf("time %q out of range", s)
	}

	return hours*60 + minutes, nil
}

func parseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), strings.TrimSpace(name)) {
			return day, true
		}
	}

	return 0, false
}

// formatClock renders minutes as "9:00" / "20:00", the style used in
// customer messages.
func formatClock(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}
