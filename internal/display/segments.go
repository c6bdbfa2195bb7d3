package display

import (
	"fmt"

	"github.com/five82/tock/internal/timer"
)

// Part names one of the three adjustable segments.
type Part int

const (
	PartHours Part = iota
	PartMinutes
	PartSeconds
)

// String returns the short label used in the UI.
func (p Part) String() string {
	switch p {
	case PartHours:
		return "h"
	case PartMinutes:
		return "m"
	default:
		return "s"
	}
}

// Next returns the segment to the right, wrapping around.
func (p Part) Next() Part {
	return (p + 1) % 3
}

// Prev returns the segment to the left, wrapping around.
func (p Part) Prev() Part {
	return (p + 2) % 3
}

// Segments is a remaining duration split for display.
type Segments struct {
	Hours   int
	Minutes int
	Seconds int
}

// Split breaks total seconds into hours, minutes and seconds.
func Split(total int) Segments {
	if total < 0 {
		total = 0
	}
	return Segments{
		Hours:   total / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// Pad renders n as at least two digits.
func Pad(n int) string {
	return fmt.Sprintf("%02d", n)
}

// ShowHours reports whether the hour segment is visible. It hides at zero
// hours unless the user is adjusting, so hours can be dialled in.
func ShowHours(seg Segments, adjusting bool) bool {
	return seg.Hours > 0 || adjusting
}

// Clock renders the segments as HH:MM:SS or MM:SS.
func Clock(seg Segments, adjusting bool) string {
	if ShowHours(seg, adjusting) {
		return Pad(seg.Hours) + ":" + Pad(seg.Minutes) + ":" + Pad(seg.Seconds)
	}
	return Pad(seg.Minutes) + ":" + Pad(seg.Seconds)
}

// AdjustPart moves one segment by delta and returns the clamped total.
func AdjustPart(total int, part Part, delta int) int {
	switch part {
	case PartHours:
		total += delta * 3600
	case PartMinutes:
		total += delta * 60
	case PartSeconds:
		total += delta
	}
	return timer.Clamp(total)
}
