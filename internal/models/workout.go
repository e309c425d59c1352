// ABOUTME: Workout, WorkoutDetail, and save-request models.
// ABOUTME: A workout is everything logged for one calendar date; details are its sets.
package models

import (
	"strconv"
	"strings"
)

// Workout is the header row for one calendar date.
type Workout struct {
	ID   int64  `json:"id" yaml:"id"`
	Date string `json:"date" yaml:"date"` // YYYY-MM-DD
	Name string `json:"name" yaml:"name"`
}

// DefaultWorkoutName returns the label used when a save carries no name.
func DefaultWorkoutName(date string) string {
	return "Workout " + date
}

// WorkoutDetail is one persisted set, joined with its exercise.
type WorkoutDetail struct {
	ID           int64       `json:"id" yaml:"id"`
	WorkoutID    int64       `json:"workout_id" yaml:"workout_id"`
	ExerciseID   int64       `json:"exercise_id" yaml:"exercise_id"`
	SetIndex     int         `json:"set_index" yaml:"set_index"`
	Reps         int         `json:"reps" yaml:"reps"`
	Weight       float64     `json:"weight" yaml:"weight"`
	ExerciseName string      `json:"exercise_name,omitempty" yaml:"exercise_name,omitempty"`
	MuscleGroup  MuscleGroup `json:"muscle_group,omitempty" yaml:"muscle_group,omitempty"`
}

// WorkoutInput is the full state of a day's workout as submitted by a caller.
type WorkoutInput struct {
	Date      string          `json:"date" yaml:"date"`
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Exercises []ExerciseInput `json:"exercises" yaml:"exercises"`
}

// ExerciseInput is one exercise of a WorkoutInput with its sets in entry order.
type ExerciseInput struct {
	ExerciseID int64      `json:"exercise_id" yaml:"exercise_id"`
	Sets       []SetInput `json:"sets" yaml:"sets"`
}

// SetInput holds reps and weight as entered, before parsing.
type SetInput struct {
	Reps   string `json:"reps" yaml:"reps"`
	Weight string `json:"weight" yaml:"weight"`
}

// NewSet builds a SetInput from numeric values.
func NewSet(reps int, weight float64) SetInput {
	return SetInput{
		Reps:   strconv.Itoa(reps),
		Weight: strconv.FormatFloat(weight, 'f', -1, 64),
	}
}

// Parse returns the set's reps and weight and whether both are positive.
// Reps accept a leading integer ("8 reps" is 8); weight accepts a leading
// decimal with either '.' or ',' as separator. Exponents are not read, so
// "1e2" is 1. Anything unparsable counts as 0.
func (s SetInput) Parse() (reps int, weight float64, ok bool) {
	reps = leadingInt(s.Reps)
	weight = leadingFloat(strings.ReplaceAll(s.Weight, ",", "."))
	return reps, weight, reps > 0 && weight > 0
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	dot := false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// SaveResult reports what a SaveWorkout call persisted.
type SaveResult struct {
	// WorkoutID is 0 when the save removed the day's workout.
	WorkoutID   int64 `json:"workout_id"`
	Deleted     bool  `json:"deleted"`
	SetsSaved   int   `json:"sets_saved"`
	SetsSkipped int   `json:"sets_skipped"`
}

// BestResult is the heaviest set of one exercise on one date.
type BestResult struct {
	DetailID int64   `json:"detail_id"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	IsRecord bool    `json:"is_record"`
}

// RepairResult reports what the duplicate cleanup removed.
type RepairResult struct {
	Groups  int   `json:"groups"`
	Removed int64 `json:"removed"`
}
