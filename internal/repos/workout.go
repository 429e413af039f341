package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type WorkoutRepo interface {
	Create(ctx context.Context, tx *gorm.DB, workouts []*types.Workout) ([]*types.Workout, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) ([]*types.Workout, error)
	GetByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) ([]*types.Workout, error)
	UpdateName(ctx context.Context, tx *gorm.DB, workoutID int64, name string) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) (int64, error)
	DeleteByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) (int64, error)
}

type workoutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkoutRepo(db *gorm.DB, baseLog *logger.Logger) WorkoutRepo {
	repoLog := baseLog.With("repo", "WorkoutRepo")
	return &workoutRepo{db: db, log: repoLog}
}

func (wr *workoutRepo) Create(ctx context.Context, tx *gorm.DB, workouts []*types.Workout) ([]*types.Workout, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(workouts) == 0 {
		return []*types.Workout{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&workouts).Error; err != nil {
		return nil, err
	}

	return workouts, nil
}

func (wr *workoutRepo) GetByIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) ([]*types.Workout, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.Workout

	if len(workoutIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", workoutIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByProgramIDs returns workouts ordered by (week_number, day_number);
// ties keep insertion order via the serial id.
func (wr *workoutRepo) GetByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) ([]*types.Workout, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var results []*types.Workout

	if len(programIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("program_id IN ?", programIDs).
		Order("week_number ASC, day_number ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *workoutRepo) UpdateName(ctx context.Context, tx *gorm.DB, workoutID int64, name string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Workout{}).
		Where("id = ?", workoutID).
		Update("name", name)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (wr *workoutRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, workoutIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(workoutIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", workoutIDs).
		Delete(&types.Workout{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (wr *workoutRepo) DeleteByProgramIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if len(programIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("program_id IN ?", programIDs).
		Delete(&types.Workout{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
