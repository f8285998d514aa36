package schedule

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func madrid(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	return loc
}

// Jan 2024: the 1st is a Monday.
func at(loc *time.Location, day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, loc)
}

func defaultSettings(loc *time.Location) Settings {
	return Settings{Location: loc, Week: DefaultWeek()}
}

func TestEvaluate_Classification(t *testing.T) {
	loc := madrid(t)

	tests := []struct {
		name        string
		now         time.Time
		wantOpen    bool
		wantMessage string
		wantNext    string
		wantNextDay int
	}{
		{name: "tuesday morning", now: at(loc, 2, 10, 0), wantOpen: true},
		{name: "tuesday night", now: at(loc, 2, 21, 0), wantMessage: "9:00 a 20:00", wantNext: "09:00", wantNextDay: 3},
		{name: "saturday before close", now: at(loc, 6, 15, 59), wantOpen: true},
		{name: "saturday at close", now: at(loc, 6, 16, 0), wantMessage: "9:00 a 16:00", wantNext: "09:00", wantNextDay: 7},
		{name: "sunday before close", now: at(loc, 7, 12, 59), wantOpen: true},
		{name: "sunday at close", now: at(loc, 7, 13, 0), wantMessage: "9:00 a 13:00", wantNext: "09:00", wantNextDay: 8},
		{name: "weekday before opening", now: at(loc, 3, 7, 0), wantMessage: "9:00 a 20:00", wantNext: "09:00", wantNextDay: 3},
		{name: "weekday at closing", now: at(loc, 3, 20, 0), wantMessage: "9:00 a 20:00", wantNext: "09:00", wantNextDay: 4},
		{name: "friday night", now: at(loc, 5, 21, 0), wantMessage: "viernes", wantNext: "09:00", wantNextDay: 6},
		{name: "monday at opening", now: at(loc, 8, 9, 0), wantOpen: true},
		{name: "monday one minute before opening", now: at(loc, 8, 8, 59), wantMessage: "lunes", wantNext: "09:00", wantNextDay: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(tt.now, defaultSettings(loc))

			assert.Equal(t, tt.wantOpen, status.IsOpen)
			if tt.wantOpen {
				assert.Nil(t, status.ClosedMessage)
				assert.Nil(t, status.NextOpeningTime)
				assert.Nil(t, status.NextOpeningAt)

				return
			}

			require.NotNil(t, status.ClosedMessage)
			assert.Contains(t, *status.ClosedMessage, tt.wantMessage)
			require.NotNil(t, status.NextOpeningTime)
			assert.Equal(t, tt.wantNext, *status.NextOpeningTime)
			require.NotNil(t, status.NextOpeningAt)
			assert.Equal(t, tt.wantNextDay, status.NextOpeningAt.Day())
			assert.Equal(t, 9, status.NextOpeningAt.Hour())
		})
	}
}

func TestEvaluate_ClosedMessageNamesTodaysHours(t *testing.T) {
	loc := madrid(t)

	status := Evaluate(at(loc, 2, 21, 0), defaultSettings(loc))

	require.NotNil(t, status.ClosedMessage)
	assert.Equal(t, "Estamos cerrados. Nuestro horario de hoy (martes) es de 9:00 a 20:00.", *status.ClosedMessage)
}

func TestEvaluate_UsesStoreLocation(t *testing.T) {
	loc := madrid(t)

	// 08:30 UTC on a winter Tuesday is 09:30 in Madrid.
	now := time.Date(2024, time.January, 2, 8, 30, 0, 0, time.UTC)

	assert.True(t, Evaluate(now, defaultSettings(loc)).IsOpen)
	assert.False(t, Evaluate(now, defaultSettings(time.UTC)).IsOpen)
}

func TestEvaluate_ForceClosed(t *testing.T) {
	loc := madrid(t)
	openInstant := at(loc, 2, 10, 0)

	t.Run("default message", func(t *testing.T) {
		settings := defaultSettings(loc)
		settings.ForceClosed = true

		status := Evaluate(openInstant, settings)

		assert.False(t, status.IsOpen)
		require.NotNil(t, status.ClosedMessage)
		assert.Equal(t, DefaultMaintenanceMessage, *status.ClosedMessage)
		assert.Nil(t, status.NextOpeningTime)
		assert.Nil(t, status.NextOpeningAt)
	})

	t.Run("override message", func(t *testing.T) {
		settings := defaultSettings(loc)
		settings.ForceClosed = true
		settings.ClosedMessage = "Cerrado por vacaciones hasta el lunes."

		for _, now := range []time.Time{openInstant, at(loc, 6, 23, 0), at(loc, 7, 9, 30)} {
			status := Evaluate(now, settings)

			assert.False(t, status.IsOpen)
			require.NotNil(t, status.ClosedMessage)
			assert.Equal(t, "Cerrado por vacaciones hasta el lunes.", *status.ClosedMessage)
			assert.Nil(t, status.NextOpeningTime)
		}
	})
}

func TestEvaluate_MalformedSettingsFailClosed(t *testing.T) {
	loc := madrid(t)
	openInstant := at(loc, 2, 10, 0)

	t.Run("fail closed marker", func(t *testing.T) {
		status := Evaluate(openInstant, FailClosed())

		assert.False(t, status.IsOpen)
		require.NotNil(t, status.ClosedMessage)
		assert.Equal(t, GenericClosedMessage, *status.ClosedMessage)
		assert.Nil(t, status.NextOpeningTime)
	})

	t.Run("inverted band", func(t *testing.T) {
		settings := defaultSettings(loc)
		settings.Week[time.Tuesday] = &Band{Open: 20 * 60, Close: 9 * 60}

		status := Evaluate(openInstant, settings)

		assert.False(t, status.IsOpen)
		require.NotNil(t, status.ClosedMessage)
		assert.Equal(t, GenericClosedMessage, *status.ClosedMessage)
	})
}

func TestEvaluate_ClosedDaySkippedForNextOpening(t *testing.T) {
	loc := madrid(t)
	settings := defaultSettings(loc)
	settings.Week[time.Sunday] = nil

	status := Evaluate(at(loc, 6, 17, 0), settings)

	require.NotNil(t, status.NextOpeningAt)
	assert.Equal(t, time.Monday, status.NextOpeningAt.Weekday())

	sunday := Evaluate(at(loc, 7, 10, 0), settings)
	assert.False(t, sunday.IsOpen)
	require.NotNil(t, sunday.ClosedMessage)
	assert.Equal(t, "Estamos cerrados. Hoy (domingo) no abrimos.", *sunday.ClosedMessage)
}

func TestEvaluate_NeverOpensHasNoNextOpening(t *testing.T) {
	status := Evaluate(time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC), Settings{Location: time.UTC})

	assert.False(t, status.IsOpen)
	assert.NotNil(t, status.ClosedMessage)
	assert.Nil(t, status.NextOpeningTime)
}

func TestEvaluate_Idempotent(t *testing.T) {
	loc := madrid(t)
	settings := defaultSettings(loc)

	for _, now := range []time.Time{at(loc, 2, 10, 0), at(loc, 6, 16, 0), at(loc, 3, 7, 0)} {
		first := Evaluate(now, settings)
		second := Evaluate(now, settings)

		assert.Equal(t, first, second)
	}
}
