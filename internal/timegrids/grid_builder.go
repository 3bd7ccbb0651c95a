package timegrids

import (
	"errors"
	"fmt"
	"time"

	"device-telemetry/internal/models"
)

var (
	ErrInvalidRange = errors.New("grid end precedes start")
	ErrInvalidStep  = errors.New("grid step must be positive")
)

// BuildGrid returns start, start+step, start+2*step, ... up to and including the last
// instant that is not after end. The caller resolves end (usually "now") before calling;
// BuildGrid never reads the clock.
func BuildGrid(start, end time.Time, stepMinutes int) (models.TimeGrid, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start=%s, end=%s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d minutes", ErrInvalidStep, stepMinutes)
	}

	step := time.Duration(stepMinutes) * time.Minute
	grid := make(models.TimeGrid, 0, Len(start, end, stepMinutes))
	// Advance the Time itself; a Duration offset from start overflows past ~292 years.
	for instant := start; !instant.After(end); instant = instant.Add(step) {
		grid = append(grid, instant)
	}
	return grid, nil
}

// Len reports how many entries BuildGrid would return, or 0 when the arguments are invalid.
// It counts in whole seconds so spans beyond the range of time.Duration stay exact.
func Len(start, end time.Time, stepMinutes int) int {
	if end.Before(start) || stepMinutes <= 0 {
		return 0
	}
	seconds := end.Unix() - start.Unix()
	if end.Nanosecond() < start.Nanosecond() {
		seconds--
	}
	return int(seconds/(int64(stepMinutes)*60)) + 1
}
