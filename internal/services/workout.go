package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/apierr"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/repos"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type WorkoutService interface {
	Create(ctx context.Context, tx *gorm.DB, programID int64, name string, dayNumber, weekNumber int) (*types.Workout, error)
	Rename(ctx context.Context, tx *gorm.DB, workoutID int64, name string) error
	CascadeDelete(ctx context.Context, tx *gorm.DB, workoutID int64) error
}

type workoutService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	programRepo         repos.ProgramRepo
	workoutRepo         repos.WorkoutRepo
	workoutExerciseRepo repos.WorkoutExerciseRepo
}

func NewWorkoutService(
	db *gorm.DB,
	baseLog *logger.Logger,
	programRepo repos.ProgramRepo,
	workoutRepo repos.WorkoutRepo,
	workoutExerciseRepo repos.WorkoutExerciseRepo,
) WorkoutService {
	return &workoutService{
		db:                  db,
		log:                 baseLog.With("service", "WorkoutService"),
		programRepo:         programRepo,
		workoutRepo:         workoutRepo,
		workoutExerciseRepo: workoutExerciseRepo,
	}
}

func (ws *workoutService) Create(ctx context.Context, tx *gorm.DB, programID int64, name string, dayNumber, weekNumber int) (*types.Workout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apierr.Validation("missing_workout_name", fmt.Errorf("workout name is required"))
	}

	transaction := tx
	if transaction == nil {
		transaction = ws.db
	}

	// The schema alone would accept a dangling program id, so the parent is
	// resolved explicitly before the insert.
	programs, err := ws.programRepo.GetByIDs(ctx, transaction, []int64{programID})
	if err != nil {
		ws.log.Error("Create workout: load program failed", "error", err, "program_id", programID)
		return nil, fmt.Errorf("load program: %w", err)
	}
	if len(programs) == 0 || programs[0] == nil {
		return nil, apierr.Reference("invalid_program_reference", fmt.Errorf("program %d not found", programID))
	}

	workout := &types.Workout{
		ProgramID:  programID,
		Name:       name,
		DayNumber:  dayNumber,
		WeekNumber: weekNumber,
	}
	if _, err := ws.workoutRepo.Create(ctx, transaction, []*types.Workout{workout}); err != nil {
		ws.log.Error("Create workout failed", "error", err, "program_id", programID)
		return nil, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

// Rename reports not-found when no row matched, the same zero-rows policy
// every other mutation here follows.
func (ws *workoutService) Rename(ctx context.Context, tx *gorm.DB, workoutID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return apierr.Validation("missing_workout_name", fmt.Errorf("workout name is required"))
	}

	transaction := tx
	if transaction == nil {
		transaction = ws.db
	}

	rows, err := ws.workoutRepo.UpdateName(ctx, transaction, workoutID, name)
	if err != nil {
		ws.log.Error("Rename workout failed", "error", err, "workout_id", workoutID)
		return fmt.Errorf("rename workout: %w", err)
	}
	if rows == 0 {
		return apierr.NotFound("workout_not_found", fmt.Errorf("workout %d not found", workoutID))
	}
	return nil
}

// CascadeDelete removes the workout's assignments and then the workout row
// inside one transaction. Deleting the workout first would orphan its
// assignments, so the order is fixed.
func (ws *workoutService) CascadeDelete(ctx context.Context, tx *gorm.DB, workoutID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = ws.db
	}

	err := transaction.WithContext(ctx).Transaction(func(txx *gorm.DB) error {
		if _, err := ws.workoutExerciseRepo.DeleteByWorkoutIDs(ctx, txx, []int64{workoutID}); err != nil {
			return fmt.Errorf("delete workout assignments: %w", err)
		}
		rows, err := ws.workoutRepo.DeleteByIDs(ctx, txx, []int64{workoutID})
		if err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		if rows == 0 {
			return apierr.NotFound("workout_not_found", fmt.Errorf("workout %d not found", workoutID))
		}
		return nil
	})
	if err != nil {
		ws.log.Warn("CascadeDelete workout failed", "error", err, "workout_id", workoutID)
		return err
	}
	ws.log.Info("Workout deleted with assignments", "workout_id", workoutID)
	return nil
}
