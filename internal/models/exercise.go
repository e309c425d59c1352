// ABOUTME: Exercise model and MuscleGroup enum for the exercise catalog.
// ABOUTME: Every exercise belongs to exactly one of push, pull, or legs.
package models

// MuscleGroup is the muscle region an exercise trains.
type MuscleGroup string

const (
	MuscleGroupPush MuscleGroup = "push"
	MuscleGroupPull MuscleGroup = "pull"
	MuscleGroupLegs MuscleGroup = "legs"
)

// AllMuscleGroups returns all valid muscle groups in display order.
var AllMuscleGroups = []MuscleGroup{MuscleGroupPush, MuscleGroupPull, MuscleGroupLegs}

// IsValidMuscleGroup checks if a string is a valid muscle group.
func IsValidMuscleGroup(s string) bool {
	for _, g := range AllMuscleGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry.
type Exercise struct {
	ID          int64       `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	MuscleGroup MuscleGroup `json:"muscle_group" yaml:"muscle_group"`
	Video       *string     `json:"video,omitempty" yaml:"video,omitempty"`
}

// NewExercise creates an Exercise without an identity.
func NewExercise(name string, group MuscleGroup) *Exercise {
	return &Exercise{Name: name, MuscleGroup: group}
}

// WithVideo sets the demonstration video reference.
func (e *Exercise) WithVideo(url string) *Exercise {
	e.Video = &url
	return e
}
