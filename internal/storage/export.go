// ABOUTME: Export and import of the whole training log.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON/YAML import replays saves.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/lift/internal/models"
)

// ExportData represents the full export format for the training log.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	StoreID    string             `json:"store_id,omitempty" yaml:"store_id,omitempty"`
	User       *models.User       `json:"user,omitempty" yaml:"user,omitempty"`
	Exercises  []*models.Exercise `json:"exercises" yaml:"exercises"`
	Workouts   []ExportWorkout    `json:"workouts" yaml:"workouts"`
}

// ExportWorkout is one day of training with its sets grouped by exercise.
type ExportWorkout struct {
	Date      string           `json:"date" yaml:"date"`
	Name      string           `json:"name" yaml:"name"`
	Exercises []ExportExercise `json:"exercises" yaml:"exercises"`
}

// ExportExercise holds one exercise's sets in set order.
type ExportExercise struct {
	ExerciseID int64       `json:"exercise_id" yaml:"exercise_id"`
	Name       string      `json:"name" yaml:"name"`
	Sets       []ExportSet `json:"sets" yaml:"sets"`
}

// ExportSet is one persisted set.
type ExportSet struct {
	Reps   int     `json:"reps" yaml:"reps"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// ImportResult reports what an import wrote.
type ImportResult struct {
	ExercisesCreated int  `json:"exercises_created"`
	WorkoutsImported int  `json:"workouts_imported"`
	SetsSkipped      int  `json:"sets_skipped"`
	UserImported     bool `json:"user_imported"`
}

// GetAllData retrieves everything for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	storeID, err := d.StoreID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read store id: %w", err)
	}

	user, err := d.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	exercises, err := d.GetExercises(ctx, nil)
	if err != nil {
		return nil, err
	}

	workouts, err := d.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lift",
		StoreID:    storeID,
		User:       user,
		Exercises:  exercises,
		Workouts:   make([]ExportWorkout, 0, len(workouts)),
	}

	for _, w := range workouts {
		details, err := d.GetWorkoutDetails(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		if len(details) == 0 {
			continue
		}
		data.Workouts = append(data.Workouts, ExportWorkout{
			Date:      w.Date,
			Name:      w.Name,
			Exercises: groupDetails(details),
		})
	}

	return data, nil
}

// groupDetails folds details ordered by exercise then set into exercises.
func groupDetails(details []*models.WorkoutDetail) []ExportExercise {
	var out []ExportExercise
	for _, wd := range details {
		if len(out) == 0 || out[len(out)-1].ExerciseID != wd.ExerciseID {
			out = append(out, ExportExercise{ExerciseID: wd.ExerciseID, Name: wd.ExerciseName})
		}
		last := &out[len(out)-1]
		last.Sets = append(last.Sets, ExportSet{Reps: wd.Reps, Weight: wd.Weight})
	}
	return out
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders the training log as one table per day, newest last.
// An empty since includes every day.
func (d *DB) ExportMarkdown(ctx context.Context, since string) (string, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Training Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, w := range data.Workouts {
		if since != "" && w.Date < since {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s - %s\n\n", w.Date, w.Name))
		sb.WriteString("| Exercise | Set | Reps | Weight |\n")
		sb.WriteString("|----------|-----|------|--------|\n")
		for _, ex := range w.Exercises {
			for i, set := range ex.Sets {
				sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.1f kg |\n", ex.Name, i+1, set.Reps, set.Weight))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(ctx context.Context, raw []byte) (*ImportResult, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(ctx, &data)
}

// ImportYAML imports data from YAML bytes.
func (d *DB) ImportYAML(ctx context.Context, raw []byte) (*ImportResult, error) {
	var data ExportData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	return d.ImportData(ctx, &data)
}

// ImportData merges an export into this store. Exercises are matched by name
// and muscle group and created when missing; each day is written through
// SaveWorkout, so an imported day replaces the same day here.
//
// The import is not atomic. Each day commits on its own, so when a day fails
// the exercises, profile and earlier days already written stay in place.
// Importing the same export again is safe.
func (d *DB) ImportData(ctx context.Context, data *ExportData) (*ImportResult, error) {
	if data == nil {
		return nil, fmt.Errorf("import: no data: %w", ErrInvalidInput)
	}
	res := &ImportResult{}

	existing, err := d.GetExercises(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	byKey := make(map[string]int64, len(existing))
	for _, e := range existing {
		key := exerciseKey(e.Name, e.MuscleGroup)
		if _, ok := byKey[key]; !ok {
			byKey[key] = e.ID
		}
	}

	idMap := make(map[int64]int64, len(data.Exercises))
	for _, e := range data.Exercises {
		key := exerciseKey(e.Name, e.MuscleGroup)
		if id, ok := byKey[key]; ok {
			idMap[e.ID] = id
			continue
		}
		created := &models.Exercise{Name: e.Name, MuscleGroup: e.MuscleGroup, Video: e.Video}
		id, err := d.CreateExercise(ctx, created)
		if err != nil {
			return nil, fmt.Errorf("import exercise %q: %w", e.Name, err)
		}
		byKey[key] = id
		idMap[e.ID] = id
		res.ExercisesCreated++
	}

	if data.User != nil {
		exists, err := d.CheckUserExists(ctx)
		if err != nil {
			return nil, fmt.Errorf("import user: %w", err)
		}
		if exists {
			err = d.UpdateUser(ctx, data.User)
		} else {
			_, err = d.CreateUser(ctx, data.User)
		}
		if err != nil {
			return nil, fmt.Errorf("import user: %w", err)
		}
		res.UserImported = true
	}

	for _, w := range data.Workouts {
		in := models.WorkoutInput{Date: w.Date, Name: w.Name}
		for _, ex := range w.Exercises {
			id, ok := idMap[ex.ExerciseID]
			if !ok {
				return nil, fmt.Errorf("import workout %s: unknown exercise %d: %w", w.Date, ex.ExerciseID, ErrInvalidInput)
			}
			ei := models.ExerciseInput{ExerciseID: id}
			for _, s := range ex.Sets {
				ei.Sets = append(ei.Sets, models.NewSet(s.Reps, s.Weight))
			}
			in.Exercises = append(in.Exercises, ei)
		}
		if len(in.Exercises) == 0 {
			continue
		}
		saved, err := d.SaveWorkout(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("import workout %s: %w", w.Date, err)
		}
		res.WorkoutsImported++
		res.SetsSkipped += saved.SetsSkipped
	}

	d.logger.Info("import finished", "exercises_created", res.ExercisesCreated,
		"workouts", res.WorkoutsImported, "skipped_sets", res.SetsSkipped)
	return res, nil
}

func exerciseKey(name string, group models.MuscleGroup) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + string(group)
}
