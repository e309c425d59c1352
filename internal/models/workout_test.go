// ABOUTME: Tests for Workout models and set parsing.
// ABOUTME: Covers tolerant reps/weight parsing and default naming.
package models

import (
	"testing"
)

func TestSetInputParse(t *testing.T) {
	tests := []struct {
		name       string
		set        SetInput
		wantReps   int
		wantWeight float64
		wantOK     bool
	}{
		{"plain", SetInput{"8", "60"}, 8, 60, true},
		{"decimal weight", SetInput{"5", "72.5"}, 5, 72.5, true},
		{"comma decimal", SetInput{"5", "72,5"}, 5, 72.5, true},
		{"trailing text", SetInput{"10 reps", "40kg"}, 10, 40, true},
		{"fractional reps truncate", SetInput{"8.9", "40"}, 8, 40, true},
		{"zero reps", SetInput{"0", "40"}, 0, 40, false},
		{"negative weight", SetInput{"5", "-5"}, 5, -5, false},
		{"empty", SetInput{"", ""}, 0, 0, false},
		{"garbage", SetInput{"abc", "x"}, 0, 0, false},
		{"whitespace", SetInput{" 12 ", " 20 "}, 12, 20, true},
		{"exponent ignored", SetInput{"1e2", "1e2"}, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reps, weight, ok := tt.set.Parse()
			if reps != tt.wantReps {
				t.Errorf("reps = %d, want %d", reps, tt.wantReps)
			}
			if weight != tt.wantWeight {
				t.Errorf("weight = %v, want %v", weight, tt.wantWeight)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet(8, 62.5)

	if s.Reps != "8" {
		t.Errorf("Reps = %q, want 8", s.Reps)
	}
	if s.Weight != "62.5" {
		t.Errorf("Weight = %q, want 62.5", s.Weight)
	}
	if _, _, ok := s.Parse(); !ok {
		t.Error("expected NewSet output to parse")
	}
}

func TestDefaultWorkoutName(t *testing.T) {
	if got := DefaultWorkoutName("2024-03-04"); got != "Workout 2024-03-04" {
		t.Errorf("DefaultWorkoutName = %q", got)
	}
}

func TestIsValidMuscleGroup(t *testing.T) {
	for _, g := range []string{"push", "pull", "legs"} {
		if !IsValidMuscleGroup(g) {
			t.Errorf("expected %s to be valid", g)
		}
	}
	for _, g := range []string{"", "arms", "PUSH", "piernas"} {
		if IsValidMuscleGroup(g) {
			t.Errorf("expected %q to be invalid", g)
		}
	}
}
