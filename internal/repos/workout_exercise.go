package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type WorkoutExerciseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assignments []*types.WorkoutExercise) ([]*types.WorkoutExercise, error)
	GetDetailsByWorkoutID(ctx context.Context, tx *gorm.DB, workoutID int64) ([]*types.WorkoutExerciseDetail, error)
	UpdateByWorkoutAndID(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64, updates map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, assignmentID int64) (int64, error)
	DeleteByWorkoutAndID(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64) (int64, error)
	DeleteByWorkoutIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) (int64, error)
	DeleteByProgramID(ctx context.Context, tx *gorm.DB, programID int64) (int64, error)
}

type workoutExerciseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkoutExerciseRepo(db *gorm.DB, baseLog *logger.Logger) WorkoutExerciseRepo {
	repoLog := baseLog.With("repo", "WorkoutExerciseRepo")
	return &workoutExerciseRepo{db: db, log: repoLog}
}

func (wer *workoutExerciseRepo) Create(ctx context.Context, tx *gorm.DB, assignments []*types.WorkoutExercise) ([]*types.WorkoutExercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	if len(assignments) == 0 {
		return []*types.WorkoutExercise{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetDetailsByWorkoutID joins each assignment with its exercise's name and
// type, ordered by order_index; equal indexes keep insertion order.
func (wer *workoutExerciseRepo) GetDetailsByWorkoutID(ctx context.Context, tx *gorm.DB, workoutID int64) ([]*types.WorkoutExerciseDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	var results []*types.WorkoutExerciseDetail

	if err := transaction.WithContext(ctx).
		Model(&types.WorkoutExercise{}).
		Select("workout_exercises.*, exercises.name AS exercise_name, exercises.type AS exercise_type").
		Joins("JOIN exercises ON exercises.id = workout_exercises.exercise_id").
		Where("workout_exercises.workout_id = ?", workoutID).
		Order("workout_exercises.order_index ASC, workout_exercises.id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateByWorkoutAndID applies updates only where both the assignment id and
// the workout id match; a right id under the wrong workout touches nothing.
func (wer *workoutExerciseRepo) UpdateByWorkoutAndID(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64, updates map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&types.WorkoutExercise{}).
		Where("workout_id = ? AND id = ?", workoutID, assignmentID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (wer *workoutExerciseRepo) DeleteByID(ctx context.Context, tx *gorm.DB, assignmentID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", assignmentID).
		Delete(&types.WorkoutExercise{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (wer *workoutExerciseRepo) DeleteByWorkoutAndID(ctx context.Context, tx *gorm.DB, workoutID, assignmentID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	res := transaction.WithContext(ctx).
		Where("workout_id = ? AND id = ?", workoutID, assignmentID).
		Delete(&types.WorkoutExercise{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (wer *workoutExerciseRepo) DeleteByWorkoutIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	if len(workoutIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("workout_id IN ?", workoutIDs).
		Delete(&types.WorkoutExercise{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteByProgramID removes every assignment under any workout of the
// program through a dependent subquery; the assignment row itself carries no
// program id.
func (wer *workoutExerciseRepo) DeleteByProgramID(ctx context.Context, tx *gorm.DB, programID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wer.db
	}

	res := transaction.WithContext(ctx).
		Where("workout_id IN (?)", transaction.Model(&types.Workout{}).Select("id").Where("program_id = ?", programID)).
		Delete(&types.WorkoutExercise{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
