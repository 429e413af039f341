package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type ExerciseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, exercises []*types.Exercise) ([]*types.Exercise, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, exerciseIDs []int64) ([]*types.Exercise, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
}

type exerciseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExerciseRepo(db *gorm.DB, baseLog *logger.Logger) ExerciseRepo {
	repoLog := baseLog.With("repo", "ExerciseRepo")
	return &exerciseRepo{db: db, log: repoLog}
}

func (er *exerciseRepo) Create(ctx context.Context, tx *gorm.DB, exercises []*types.Exercise) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(exercises) == 0 {
		return []*types.Exercise{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&exercises).Error; err != nil {
		return nil, err
	}

	return exercises, nil
}

func (er *exerciseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, exerciseIDs []int64) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.Exercise

	if len(exerciseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", exerciseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *exerciseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.Exercise
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *exerciseRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64

	if err := transaction.WithContext(ctx).
		Model(&types.Exercise{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	exists := count > 0
	return exists, nil
}
