package service

import "time"

// Clock is the wall-clock source for anything schedule related.
type Clock interface {
	Now() time.Time
}
