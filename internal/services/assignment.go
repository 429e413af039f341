package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/apierr"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/repos"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

// AssignmentInput carries the per-assignment parameters supplied by the
// caller, order index included.
type AssignmentInput struct {
	Sets       int
	Reps       string
	Weight     string
	RestTime   int
	Notes      *string
	OrderIndex int
}

type AssignmentService interface {
	Assign(ctx context.Context, tx *gorm.DB, workoutID, exerciseID int64, input AssignmentInput) (*types.WorkoutExercise, error)
	Update(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64, input AssignmentInput) error
	Remove(ctx context.Context, tx *gorm.DB, assignmentID int64) error
	RemoveScoped(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64) error
	ListForWorkout(ctx context.Context, tx *gorm.DB, workoutID int64) ([]*types.WorkoutExerciseDetail, error)
}

type assignmentService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	workoutRepo         repos.WorkoutRepo
	exerciseRepo        repos.ExerciseRepo
	workoutExerciseRepo repos.WorkoutExerciseRepo
}

func NewAssignmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	workoutRepo repos.WorkoutRepo,
	exerciseRepo repos.ExerciseRepo,
	workoutExerciseRepo repos.WorkoutExerciseRepo,
) AssignmentService {
	return &assignmentService{
		db:                  db,
		log:                 baseLog.With("service", "AssignmentService"),
		workoutRepo:         workoutRepo,
		exerciseRepo:        exerciseRepo,
		workoutExerciseRepo: workoutExerciseRepo,
	}
}

// Assign resolves both foreign ids before inserting; an unresolved id means
// no row is created.
func (as *assignmentService) Assign(ctx context.Context, tx *gorm.DB, workoutID, exerciseID int64, input AssignmentInput) (*types.WorkoutExercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = as.db
	}

	workouts, err := as.workoutRepo.GetByIDs(ctx, transaction, []int64{workoutID})
	if err != nil {
		as.log.Error("Assign: load workout failed", "error", err, "workout_id", workoutID)
		return nil, fmt.Errorf("load workout: %w", err)
	}
	if len(workouts) == 0 || workouts[0] == nil {
		return nil, apierr.Reference("invalid_workout_reference", fmt.Errorf("workout %d not found", workoutID))
	}

	exercises, err := as.exerciseRepo.GetByIDs(ctx, transaction, []int64{exerciseID})
	if err != nil {
		as.log.Error("Assign: load exercise failed", "error", err, "exercise_id", exerciseID)
		return nil, fmt.Errorf("load exercise: %w", err)
	}
	if len(exercises) == 0 || exercises[0] == nil {
		return nil, apierr.Reference("invalid_exercise_reference", fmt.Errorf("exercise %d not found", exerciseID))
	}

	assignment := &types.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		RestTime:   input.RestTime,
		Notes:      input.Notes,
		OrderIndex: input.OrderIndex,
	}
	if _, err := as.workoutExerciseRepo.Create(ctx, transaction, []*types.WorkoutExercise{assignment}); err != nil {
		as.log.Error("Assign failed", "error", err, "workout_id", workoutID, "exercise_id", exerciseID)
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

// Update touches only the five mutable columns; exercise_id, workout_id and
// order_index stay as assigned. Matching is by the (workout, assignment)
// pair, so the right assignment id under the wrong workout affects nothing.
func (as *assignmentService) Update(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64, input AssignmentInput) error {
	transaction := tx
	if transaction == nil {
		transaction = as.db
	}

	updates := map[string]interface{}{
		"sets":      input.Sets,
		"reps":      input.Reps,
		"weight":    input.Weight,
		"rest_time": input.RestTime,
		"notes":     input.Notes,
	}
	rows, err := as.workoutExerciseRepo.UpdateByWorkoutAndID(ctx, transaction, workoutID, assignmentID, updates)
	if err != nil {
		as.log.Error("Update assignment failed", "error", err, "workout_id", workoutID, "assignment_id", assignmentID)
		return fmt.Errorf("update assignment: %w", err)
	}
	if rows == 0 {
		return apierr.NotFound("assignment_not_found", fmt.Errorf("assignment %d not found in workout %d", assignmentID, workoutID))
	}
	return nil
}

func (as *assignmentService) Remove(ctx context.Context, tx *gorm.DB, assignmentID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = as.db
	}

	rows, err := as.workoutExerciseRepo.DeleteByID(ctx, transaction, assignmentID)
	if err != nil {
		as.log.Error("Remove assignment failed", "error", err, "assignment_id", assignmentID)
		return fmt.Errorf("delete assignment: %w", err)
	}
	if rows == 0 {
		return apierr.NotFound("assignment_not_found", fmt.Errorf("assignment %d not found", assignmentID))
	}
	return nil
}

func (as *assignmentService) RemoveScoped(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = as.db
	}

	rows, err := as.workoutExerciseRepo.DeleteByWorkoutAndID(ctx, transaction, workoutID, assignmentID)
	if err != nil {
		as.log.Error("RemoveScoped assignment failed", "error", err, "workout_id", workoutID, "assignment_id", assignmentID)
		return fmt.Errorf("delete assignment: %w", err)
	}
	if rows == 0 {
		return apierr.NotFound("assignment_not_found", fmt.Errorf("assignment %d not found in workout %d", assignmentID, workoutID))
	}
	return nil
}

func (as *assignmentService) ListForWorkout(ctx context.Context, tx *gorm.DB, workoutID int64) ([]*types.WorkoutExerciseDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = as.db
	}

	details, err := as.workoutExerciseRepo.GetDetailsByWorkoutID(ctx, transaction, workoutID)
	if err != nil {
		as.log.Error("ListForWorkout failed", "error", err, "workout_id", workoutID)
		return nil, fmt.Errorf("list workout assignments: %w", err)
	}
	if details == nil {
		details = []*types.WorkoutExerciseDetail{}
	}
	return details, nil
}
