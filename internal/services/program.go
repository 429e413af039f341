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

type ProgramService interface {
	Create(ctx context.Context, tx *gorm.DB, name, level, programType, category, description string) (*types.Program, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Program, error)
	GetWithWorkouts(ctx context.Context, tx *gorm.DB, programID int64) (*types.ProgramDetail, error)
	CascadeDelete(ctx context.Context, tx *gorm.DB, programID int64) error
}

type programService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	programRepo         repos.ProgramRepo
	workoutRepo         repos.WorkoutRepo
	workoutExerciseRepo repos.WorkoutExerciseRepo
}

func NewProgramService(
	db *gorm.DB,
	baseLog *logger.Logger,
	programRepo repos.ProgramRepo,
	workoutRepo repos.WorkoutRepo,
	workoutExerciseRepo repos.WorkoutExerciseRepo,
) ProgramService {
	return &programService{
		db:                  db,
		log:                 baseLog.With("service", "ProgramService"),
		programRepo:         programRepo,
		workoutRepo:         workoutRepo,
		workoutExerciseRepo: workoutExerciseRepo,
	}
}

func (ps *programService) Create(ctx context.Context, tx *gorm.DB, name, level, programType, category, description string) (*types.Program, error) {
	// Required fields are rejected before any storage access.
	if strings.TrimSpace(name) == "" || strings.TrimSpace(level) == "" ||
		strings.TrimSpace(programType) == "" || strings.TrimSpace(description) == "" {
		return nil, apierr.Validation("missing_required_fields", fmt.Errorf("name, level, type and description are required"))
	}

	transaction := tx
	if transaction == nil {
		transaction = ps.db
	}

	program := &types.Program{
		Name:        name,
		Level:       level,
		Type:        programType,
		Description: description,
	}
	if strings.TrimSpace(category) != "" {
		program.Category = &category
	}

	if _, err := ps.programRepo.Create(ctx, transaction, []*types.Program{program}); err != nil {
		ps.log.Error("Create program failed", "error", err)
		return nil, fmt.Errorf("create program: %w", err)
	}
	ps.log.Info("Program created", "program_id", program.ID)
	return program, nil
}

func (ps *programService) List(ctx context.Context, tx *gorm.DB) ([]*types.Program, error) {
	transaction := tx
	if transaction == nil {
		transaction = ps.db
	}

	programs, err := ps.programRepo.List(ctx, transaction)
	if err != nil {
		ps.log.Error("List programs failed", "error", err)
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// GetWithWorkouts resolves the program before touching the workouts table:
// an empty workout list must never be mistaken for a missing program.
func (ps *programService) GetWithWorkouts(ctx context.Context, tx *gorm.DB, programID int64) (*types.ProgramDetail, error) {
	transaction := tx
	if transaction == nil {
		transaction = ps.db
	}

	programs, err := ps.programRepo.GetByIDs(ctx, transaction, []int64{programID})
	if err != nil {
		ps.log.Error("GetWithWorkouts: load program failed", "error", err, "program_id", programID)
		return nil, fmt.Errorf("load program: %w", err)
	}
	if len(programs) == 0 || programs[0] == nil {
		return nil, apierr.NotFound("program_not_found", fmt.Errorf("program %d not found", programID))
	}

	workouts, err := ps.workoutRepo.GetByProgramIDs(ctx, transaction, []int64{programID})
	if err != nil {
		ps.log.Error("GetWithWorkouts: load workouts failed", "error", err, "program_id", programID)
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	if workouts == nil {
		workouts = []*types.Workout{}
	}

	return &types.ProgramDetail{Program: *programs[0], Workouts: workouts}, nil
}

// CascadeDelete removes a program and everything under it as one atomic
// unit. Child-first order: assignments of the program's workouts, then the
// workouts, then the program row. Any step failing rolls back the rest.
func (ps *programService) CascadeDelete(ctx context.Context, tx *gorm.DB, programID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = ps.db
	}

	err := transaction.WithContext(ctx).Transaction(func(txx *gorm.DB) error {
		if _, err := ps.workoutExerciseRepo.DeleteByProgramID(ctx, txx, programID); err != nil {
			return fmt.Errorf("delete program assignments: %w", err)
		}
		if _, err := ps.workoutRepo.DeleteByProgramIDs(ctx, txx, []int64{programID}); err != nil {
			return fmt.Errorf("delete program workouts: %w", err)
		}
		rows, err := ps.programRepo.DeleteByIDs(ctx, txx, []int64{programID})
		if err != nil {
			return fmt.Errorf("delete program: %w", err)
		}
		if rows == 0 {
			return apierr.NotFound("program_not_found", fmt.Errorf("program %d not found", programID))
		}
		return nil
	})
	if err != nil {
		ps.log.Warn("CascadeDelete program failed", "error", err, "program_id", programID)
		return err
	}
	ps.log.Info("Program deleted with descendants", "program_id", programID)
	return nil
}
