// Package format turns environment state — durations, paths, repository
// summaries, command results — into prompt-line text, styled where it makes
// sense.
package format

import (
	"fmt"
	"io"
	"time"
)

// HumanDuration is a duration decomposed into display units.
//
// Invariants: Hours < 24, Minutes < 60, Seconds < 60 and the sub-second
// components < 1000.
type HumanDuration struct {
	days         uint64
	hours        uint8
	minutes      uint8
	seconds      uint8
	milliseconds uint16
	microseconds uint16
	nanoseconds  uint16
}

// NewHumanDuration builds a HumanDuration from already-decomposed
// components, reporting false when any component is out of range.
func NewHumanDuration(days uint64, hours, minutes, seconds uint8, milliseconds, microseconds, nanoseconds uint16) (HumanDuration, bool) {
	if hours >= 24 || minutes >= 60 || seconds >= 60 ||
		milliseconds >= 1000 || microseconds >= 1000 || nanoseconds >= 1000 {
		return HumanDuration{}, false
	}
	return HumanDuration{
		days:         days,
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		milliseconds: milliseconds,
		microseconds: microseconds,
		nanoseconds:  nanoseconds,
	}, true
}

// HumanizeDuration decomposes d. Negative durations decompose as zero.
func HumanizeDuration(d time.Duration) HumanDuration {
	if d < 0 {
		d = 0
	}
	return DurationFromNanoseconds(uint64(d))
}

// DurationFromNanoseconds decomposes a total number of nanoseconds.
func DurationFromNanoseconds(nanoseconds uint64) HumanDuration {
	microseconds, nanoseconds := nanoseconds/1000, nanoseconds%1000
	milliseconds, microseconds := microseconds/1000, microseconds%1000
	result := DurationFromMilliseconds(milliseconds)
	result.microseconds = uint16(microseconds)
	result.nanoseconds = uint16(nanoseconds)
	return result
}

// DurationFromMicroseconds decomposes a total number of microseconds.
func DurationFromMicroseconds(microseconds uint64) HumanDuration {
	milliseconds, microseconds := microseconds/1000, microseconds%1000
	result := DurationFromMilliseconds(milliseconds)
	result.microseconds = uint16(microseconds)
	return result
}

// DurationFromMilliseconds decomposes a total number of milliseconds.
func DurationFromMilliseconds(milliseconds uint64) HumanDuration {
	seconds, milliseconds := milliseconds/1000, milliseconds%1000
	result := DurationFromSeconds(seconds)
	result.milliseconds = uint16(milliseconds)
	return result
}

// DurationFromSeconds decomposes a total number of seconds.
func DurationFromSeconds(seconds uint64) HumanDuration {
	minutes, seconds := seconds/60, seconds%60
	result := DurationFromMinutes(minutes)
	result.seconds = uint8(seconds)
	return result
}

// DurationFromMinutes decomposes a total number of minutes.
func DurationFromMinutes(minutes uint64) HumanDuration {
	hours, minutes := minutes/60, minutes%60
	result := DurationFromHours(hours)
	result.minutes = uint8(minutes)
	return result
}

// DurationFromHours decomposes a total number of hours.
func DurationFromHours(hours uint64) HumanDuration {
	return HumanDuration{days: hours / 24, hours: uint8(hours % 24)}
}

// DurationFromDays builds a days-only HumanDuration.
func DurationFromDays(days uint64) HumanDuration {
	return HumanDuration{days: days}
}

func (d HumanDuration) Days() uint64 {
	return d.days
}

func (d HumanDuration) Hours() uint8 {
	return d.hours
}

func (d HumanDuration) Minutes() uint8 {
	return d.minutes
}

func (d HumanDuration) Seconds() uint8 {
	return d.seconds
}

func (d HumanDuration) Milliseconds() uint16 {
	return d.milliseconds
}

func (d HumanDuration) Microseconds() uint16 {
	return d.microseconds
}

func (d HumanDuration) Nanoseconds() uint16 {
	return d.nanoseconds
}

// TruncatedToDays zeroes every component below days.
func (d HumanDuration) TruncatedToDays() HumanDuration {
	return HumanDuration{days: d.days}
}

// TruncatedToHours zeroes every component below hours.
func (d HumanDuration) TruncatedToHours() HumanDuration {
	return HumanDuration{days: d.days, hours: d.hours}
}

// TruncatedToMinutes zeroes every component below minutes.
func (d HumanDuration) TruncatedToMinutes() HumanDuration {
	d.seconds, d.milliseconds, d.microseconds, d.nanoseconds = 0, 0, 0, 0
	return d
}

// TruncatedToSeconds zeroes every component below seconds.
func (d HumanDuration) TruncatedToSeconds() HumanDuration {
	d.milliseconds, d.microseconds, d.nanoseconds = 0, 0, 0
	return d
}

// TruncatedToMilliseconds zeroes every component below milliseconds.
func (d HumanDuration) TruncatedToMilliseconds() HumanDuration {
	d.microseconds, d.nanoseconds = 0, 0
	return d
}

// TruncatedToMicroseconds zeroes the nanoseconds component.
func (d HumanDuration) TruncatedToMicroseconds() HumanDuration {
	d.nanoseconds = 0
	return d
}

// DurationUnits selects components for WriteSome.
type DurationUnits uint8

const (
	UnitDays DurationUnits = 1 << iota
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitMilliseconds
	UnitMicroseconds
	UnitNanoseconds

	AllUnits = UnitDays | UnitHours | UnitMinutes | UnitSeconds |
		UnitMilliseconds | UnitMicroseconds | UnitNanoseconds
)

type durationPart struct {
	value uint64
	unit  string
	flag  DurationUnits
}

func (d HumanDuration) parts() [7]durationPart {
	return [7]durationPart{
		{d.days, "d", UnitDays},
		{uint64(d.hours), "h", UnitHours},
		{uint64(d.minutes), "m", UnitMinutes},
		{uint64(d.seconds), "s", UnitSeconds},
		{uint64(d.milliseconds), "ms", UnitMilliseconds},
		{uint64(d.microseconds), "µs", UnitMicroseconds},
		{uint64(d.nanoseconds), "ns", UnitNanoseconds},
	}
}

func writePart(w io.Writer, part durationPart, first bool) error {
	if !first {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d%s", part.value, part.unit)
	return err
}

// WriteAll writes every component of duration.
func WriteAll(w io.Writer, duration HumanDuration) error {
	return WriteSome(w, duration, AllUnits)
}

// WriteSome writes the components of duration selected by units, most
// significant first, space separated.
func WriteSome(w io.Writer, duration HumanDuration, units DurationUnits) error {
	first := true
	for _, part := range duration.parts() {
		if units&part.flag == 0 {
			continue
		}
		if err := writePart(w, part, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// WriteNonzero writes the nonzero components of duration.
func WriteNonzero(w io.Writer, duration HumanDuration) error {
	first := true
	for _, part := range duration.parts() {
		if part.value == 0 {
			continue
		}
		if err := writePart(w, part, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// WriteSkipHighZeros writes duration starting from its most significant
// nonzero component; everything below that is written, zero or not.
func WriteSkipHighZeros(w io.Writer, duration HumanDuration) error {
	first := true
	for _, part := range duration.parts() {
		if first && part.value == 0 {
			continue
		}
		if err := writePart(w, part, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// WriteSkipLowZeros writes duration from days down to its least significant
// nonzero component. An all-zero duration writes nothing.
func WriteSkipLowZeros(w io.Writer, duration HumanDuration) error {
	parts := duration.parts()
	last := -1
	for i, part := range parts {
		if part.value != 0 {
			last = i
		}
	}
	for i := 0; i <= last; i++ {
		if err := writePart(w, parts[i], i == 0); err != nil {
			return err
		}
	}
	return nil
}

// WriteSkipHighAndLowZeros writes duration from its most significant
// nonzero component to its least significant one. An all-zero duration
// writes nothing.
func WriteSkipHighAndLowZeros(w io.Writer, duration HumanDuration) error {
	parts := duration.parts()
	first, last := -1, -1
	for i, part := range parts {
		if part.value == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	for i := first; first >= 0 && i <= last; i++ {
		if err := writePart(w, parts[i], i == first); err != nil {
			return err
		}
	}
	return nil
}
