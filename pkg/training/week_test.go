package training

import (
	"testing"
	"time"
)

var location, _ = time.LoadLocation("Europe/Warsaw")

func TestResolveWeek_StartsOnMonday(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "reference on Monday",
			ref:  time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "reference on Wednesday",
			ref:  time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "reference on Saturday",
			ref:  time.Date(2025, time.March, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "reference on Sunday belongs to the preceding Monday",
			ref:  time.Date(2025, time.March, 9, 0, 0, 1, 0, time.UTC),
			want: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week spanning a month boundary",
			ref:  time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps the reference location",
			ref:  time.Date(2025, time.March, 5, 9, 0, 0, 0, location),
			want: time.Date(2025, time.March, 3, 0, 0, 0, 0, location),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWeek(tt.ref, 0)
			if !got.Start.Equal(tt.want) {
				t.Errorf("ResolveWeek(%v, 0).Start = %v, want %v", tt.ref, got.Start, tt.want)
			}
		})
	}
}

func TestResolveWeek_EndIsSundayLastMillisecond(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	week := ResolveWeek(ref, 0)

	wantEnd := time.Date(2025, time.March, 9, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !week.End.Equal(wantEnd) {
		t.Errorf("week end = %v, want %v", week.End, wantEnd)
	}
	if got := week.End.Sub(week.Start); got != 7*24*time.Hour-time.Millisecond {
		t.Errorf("week span = %v, want %v", got, 7*24*time.Hour-time.Millisecond)
	}
}

func TestResolveWeek_ZeroOffsetContainsReference(t *testing.T) {
	refs := []time.Time{
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 6, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 9, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.December, 31, 18, 0, 0, 0, location),
	}
	for _, ref := range refs {
		week := ResolveWeek(ref, 0)
		if !week.Contains(ref) {
			t.Errorf("ResolveWeek(%v, 0) = [%v, %v] does not contain the reference", ref, week.Start, week.End)
		}
	}
}

func TestResolveWeek_OffsetShiftsByWholeWeeks(t *testing.T) {
	ref := time.Date(2025, time.March, 6, 12, 0, 0, 0, time.UTC)
	base := ResolveWeek(ref, 0)

	for _, offset := range []int{-52, -3, -1, 1, 2, 26} {
		shifted := ResolveWeek(ref, offset)
		wantStart := base.Start.AddDate(0, 0, offset*7)
		if !shifted.Start.Equal(wantStart) {
			t.Errorf("ResolveWeek(ref, %d).Start = %v, want %v", offset, shifted.Start, wantStart)
		}
	}
}

func TestWeek_Contains_Boundaries(t *testing.T) {
	week := ResolveWeek(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), 0)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start is inclusive", week.Start, true},
		{"end is inclusive", week.End, true},
		{"just before start", week.Start.Add(-time.Nanosecond), false},
		{"just after end", week.End.Add(time.Millisecond), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := week.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWeek_ContainsDate(t *testing.T) {
	week := ResolveWeek(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), 0)

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"Monday at any time of day", time.Date(2025, time.March, 3, 18, 45, 0, 0, time.UTC), true},
		{"Sunday at any time of day", time.Date(2025, time.March, 9, 6, 0, 0, 0, time.UTC), true},
		{"previous Sunday", time.Date(2025, time.March, 2, 23, 0, 0, 0, time.UTC), false},
		{"next Monday", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := week.ContainsDate(tt.t); got != tt.want {
				t.Errorf("ContainsDate(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}
