// Package clock provides the wall clock behind service.Clock.
package clock

import (
	"time"

	"bakery/internal/domain/service"
)

type systemClock struct{}

func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
