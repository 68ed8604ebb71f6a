package core

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownSpeed is returned by ParseSpeed for a multiplier that is not in
// Speeds.
var ErrUnknownSpeed = errors.New("unknown playback speed")

// Speed is a playback multiplier applied to the base tick interval.
type Speed float64

// Speeds lists the selectable playback multipliers in ascending order.
var Speeds = []Speed{0.5, 1, 1.5, 2, 2.5, 3, 4, 5}

// DefaultSpeed is the multiplier selected at startup.
const DefaultSpeed Speed = 1

// String formats the multiplier the way it is shown to users, e.g. "1.5x".
func (s Speed) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "x"
}

// Scale divides the base interval by the multiplier.
func (s Speed) Scale(base time.Duration) time.Duration {
	if s <= 0 {
		return base
	}
	return time.Duration(float64(base) / float64(s))
}

// ParseSpeed accepts "2", "2x" or "2.5x" and returns the matching entry of
// Speeds.
func ParseSpeed(text string) (Speed, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(text), "x"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse speed %q: %w", text, ErrUnknownSpeed)
	}
	s := Speed(v)
	if !slices.Contains(Speeds, s) {
		return 0, fmt.Errorf("parse speed %q: %w", text, ErrUnknownSpeed)
	}
	return s, nil
}

// Faster returns the next multiplier up, or s itself at the top of the list.
func (s Speed) Faster() Speed {
	i := slices.Index(Speeds, s)
	if i < 0 || i == len(Speeds)-1 {
		return s
	}
	return Speeds[i+1]
}

// Slower returns the next multiplier down, or s itself at the bottom.
func (s Speed) Slower() Speed {
	i := slices.Index(Speeds, s)
	if i <= 0 {
		return s
	}
	return Speeds[i-1]
}
