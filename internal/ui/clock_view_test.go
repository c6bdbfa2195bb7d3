package ui

import (
	"testing"

	"github.com/five82/tock/internal/display"
	"github.com/five82/tock/internal/timer"
)

func TestRenderGlyphs(t *testing.T) {
	rows := renderGlyphs("1:0")
	want := [glyphRows]string{
		"  █   ███",
		"  █ █ █ █",
		"  █   █ █",
		"  █ █ █ █",
		"  █   ███",
	}
	for i := range rows {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestRenderGlyphsSkipsUnknown(t *testing.T) {
	rows := renderGlyphs("x")
	for i, row := range rows {
		if row != "" {
			t.Fatalf("row %d = %q, want empty", i, row)
		}
	}
}

func TestVisibleSegments(t *testing.T) {
	cases := []struct {
		name  string
		state timer.State
		parts []display.Part
	}{
		{"idle shows hours at zero", timer.State{Status: timer.StatusIdle, Remaining: 300}, []display.Part{display.PartHours, display.PartMinutes, display.PartSeconds}},
		{"running hides zero hours", timer.State{Status: timer.StatusRunning, Remaining: 300}, []display.Part{display.PartMinutes, display.PartSeconds}},
		{"paused hides zero hours", timer.State{Status: timer.StatusPaused, Remaining: 59}, []display.Part{display.PartMinutes, display.PartSeconds}},
		{"running keeps hours", timer.State{Status: timer.StatusRunning, Remaining: 3600}, []display.Part{display.PartHours, display.PartMinutes, display.PartSeconds}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := visibleSegments(tc.state)
			if len(got) != len(tc.parts) {
				t.Fatalf("got %d segments, want %d", len(got), len(tc.parts))
			}
			for i, s := range got {
				if s.part != tc.parts[i] {
					t.Fatalf("segment %d = %v, want %v", i, s.part, tc.parts[i])
				}
			}
		})
	}
}

func TestVisibleSegmentValues(t *testing.T) {
	got := visibleSegments(timer.State{Status: timer.StatusRunning, Remaining: 3725})
	want := []int{1, 2, 5}
	for i, s := range got {
		if s.value != want[i] {
			t.Fatalf("segment %d = %d, want %d", i, s.value, want[i])
		}
	}
}
