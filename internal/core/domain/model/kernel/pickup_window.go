package kernel

import (
	"fmt"
	"time"

	"shipping/internal/pkg/errs"
)

const (
	// PickupDateLayout is the carrier wire format for pickup dates (YYYYMMDD).
	PickupDateLayout = "20060102"

	// PickupTimeLayout is the carrier wire format for ready/close times (HHMM00).
	PickupTimeLayout = "150405"
)

// ErrPickupWindowIsNotConstructed indicates that a PickupWindow was not built
// through NewPickupWindow or RestorePickupWindow.
var ErrPickupWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"PickupWindow must be created via NewPickupWindow or RestorePickupWindow")

// PickupWindow is a value object describing a scheduled carrier pickup:
// the calendar date of the visit plus the ready/close times between which
// the package is available for collection.
//
// Invariants enforced at construction:
//   - the date parses as YYYYMMDD
//   - ready and close times parse as HHMM00
//   - ready time is strictly before close time
//
// Whether the date is far enough in the future is a scheduling-time rule,
// not a structural one, so it is checked separately via ValidateSchedulable
// against a caller-supplied clock.
type PickupWindow struct {
	date      time.Time
	readyTime string
	closeTime string

	isConstructed bool
}

// NewPickupWindow parses and validates a pickup window from carrier wire
// formats: date as YYYYMMDD, ready and close times as HHMM00.
func NewPickupWindow(date, readyTime, closeTime string) (PickupWindow, error) {
	day, err := time.Parse(PickupDateLayout, date)
	if err != nil {
		return PickupWindow{}, errs.NewValueIsInvalidErrorWithCause("pickupDate", err)
	}

	ready, err := time.Parse(PickupTimeLayout, readyTime)
	if err != nil {
		return PickupWindow{}, errs.NewValueIsInvalidErrorWithCause("readyTime", err)
	}

	closeAt, err := time.Parse(PickupTimeLayout, closeTime)
	if err != nil {
		return PickupWindow{}, errs.NewValueIsInvalidErrorWithCause("closeTime", err)
	}

	if !ready.Before(closeAt) {
		return PickupWindow{}, errs.NewValueIsInvalidErrorWithCause("readyTime",
			fmt.Errorf("ready time %s is not before close time %s", readyTime, closeTime))
	}

	return PickupWindow{
		date:          day,
		readyTime:     readyTime,
		closeTime:     closeTime,
		isConstructed: true,
	}, nil
}

// RestorePickupWindow rebuilds a pickup window from persisted components.
// The stored values already passed NewPickupWindow once, but the invariants
// are re-checked to guard against hand-edited rows.
func RestorePickupWindow(date time.Time, readyTime, closeTime string) (PickupWindow, error) {
	return NewPickupWindow(date.Format(PickupDateLayout), readyTime, closeTime)
}

// Validate ensures the window was built through a constructor.
func (w PickupWindow) Validate() error {
	if !w.isConstructed {
		return ErrPickupWindowIsNotConstructed
	}
	return nil
}

// Date returns the pickup date at midnight UTC.
func (w PickupWindow) Date() time.Time {
	return w.date
}

// DateString returns the pickup date in carrier wire format (YYYYMMDD).
func (w PickupWindow) DateString() string {
	return w.date.Format(PickupDateLayout)
}

// ReadyTime returns the ready time in carrier wire format (HHMM00).
func (w PickupWindow) ReadyTime() string {
	return w.readyTime
}

// CloseTime returns the close time in carrier wire format (HHMM00).
func (w PickupWindow) CloseTime() string {
	return w.closeTime
}

// IsEqual compares two pickup windows by value.
func (w PickupWindow) IsEqual(other PickupWindow) bool {
	return w.date.Equal(other.date) && w.readyTime == other.readyTime && w.closeTime == other.closeTime
}

// ValidateSchedulable rejects windows whose date is today or earlier.
// Same-day and past-date pickups cannot be scheduled with the carrier, so
// the earliest allowed date is tomorrow relative to now.
func (w PickupWindow) ValidateSchedulable(now time.Time) error {
	if err := w.Validate(); err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !w.date.After(today) {
		return errs.NewValueIsInvalidErrorWithCause("pickupDate",
			fmt.Errorf("%s is not after today, earliest schedulable date is tomorrow", w.DateString()))
	}

	return nil
}
