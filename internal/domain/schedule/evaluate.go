package schedule

import (
	"fmt"
	"time"

	"bakery/internal/domain/entity"
	"bakery/internal/errors"
)

const (
	// DefaultMaintenanceMessage is shown when the store is force-closed
	// without a custom message.
	DefaultMaintenanceMessage = "Cerrado temporalmente por mantenimiento."

	// GenericClosedMessage is shown when the timetable itself is unusable.
	GenericClosedMessage = "Cerrado temporalmente."

	nextOpeningLayout = "15:04"
)

var dayNames = [7]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

// Settings is everything Evaluate needs besides the current instant.
type Settings struct {
	Location      *time.Location
	Week          Week
	ForceClosed   bool
	ClosedMessage string

	failClosed bool
}

// FailClosed returns settings that always evaluate to closed with the generic
// message. Used when configuration could not be turned into a timetable.
func FailClosed() Settings {
	return Settings{failClosed: true}
}

// Validate checks every configured band.
func (s Settings) Validate() error {
	if s.failClosed {
		return errors.New("schedule configuration is unusable")
	}

	for day, band := range s.Week {
		if band == nil {
			continue
		}
		if err := band.validate(); err != nil {
			return errors.Wrapf(err, "invalid band on %s", time.Weekday(day))
		}
	}

	return nil
}

// Evaluate computes the store status at now.
func Evaluate(now time.Time, settings Settings) entity.StoreStatus {
	status := entity.StoreStatus{EvaluatedAt: now}

	if settings.ForceClosed {
		msg := settings.ClosedMessage
		if msg == "" {
			msg = DefaultMaintenanceMessage
		}
		status.ClosedMessage = &msg

		return status
	}

	if err := settings.Validate(); err != nil {
		msg := GenericClosedMessage
		status.ClosedMessage = &msg

		return status
	}

	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	today := settings.Week[local.Weekday()]
	if today != nil && today.Contains(minute) {
		status.IsOpen = true

		return status
	}

	msg := closedMessage(local.Weekday(), today)
	status.ClosedMessage = &msg

	if next, ok := nextOpening(local, settings.Week); ok {
		formatted := next.Format(nextOpeningLayout)
		status.NextOpeningTime = &formatted
		status.NextOpeningAt = &next
	}

	return status
}

func closedMessage(day time.Weekday, today *Band) string {
	if today == nil {
		return fmt.Sprintf("Estamos cerrados. Hoy (%s) no abrimos.", dayNames[day])
	}

	return fmt.Sprintf("Estamos cerrados. Nuestro horario de hoy (%s) es de %s a %s.",
		dayNames[day], formatClock(today.Open), formatClock(today.Close))
}

// nextOpening finds the first band opening strictly after local: today's
// opening if it has not happened yet, else the next day that opens at all.
func nextOpening(local time.Time, week Week) (time.Time, bool) {
	year, month, day := local.Date()

	for offset := 0; offset <= 7; offset++ {
		date := time.Date(year, month, day+offset, 0, 0, 0, 0, local.Location())
		band := week[date.Weekday()]
		if band == nil {
			continue
		}

		opening := time.Date(year, month, day+offset, band.Open/60, band.Open%60, 0, 0, local.Location())
		if opening.After(local) {
			return opening, true
		}
	}

	return time.Time{}, false
}
