package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type ProgramRepo interface {
	Create(ctx context.Context, tx *gorm.DB, programs []*types.Program) ([]*types.Program, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) ([]*types.Program, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Program, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) (int64, error)
}

type programRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgramRepo(db *gorm.DB, baseLog *logger.Logger) ProgramRepo {
	repoLog := baseLog.With("repo", "ProgramRepo")
	return &programRepo{db: db, log: repoLog}
}

func (pr *programRepo) Create(ctx context.Context, tx *gorm.DB, programs []*types.Program) ([]*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(programs) == 0 {
		return []*types.Program{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&programs).Error; err != nil {
		return nil, err
	}

	return programs, nil
}

func (pr *programRepo) GetByIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) ([]*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Program

	if len(programIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", programIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *programRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Program
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *programRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, programIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(programIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", programIDs).
		Delete(&types.Program{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
