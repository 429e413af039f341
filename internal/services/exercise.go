package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/apierr"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/repos"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/seed"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

type ExerciseService interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error)
	Create(ctx context.Context, tx *gorm.DB, name, exerciseType, videoURL string) (*types.Exercise, error)
	SeedCatalog(ctx context.Context) error
}

type exerciseService struct {
	db           *gorm.DB
	log          *logger.Logger
	exerciseRepo repos.ExerciseRepo
}

func NewExerciseService(db *gorm.DB, baseLog *logger.Logger, exerciseRepo repos.ExerciseRepo) ExerciseService {
	return &exerciseService{
		db:           db,
		log:          baseLog.With("service", "ExerciseService"),
		exerciseRepo: exerciseRepo,
	}
}

func (es *exerciseService) List(ctx context.Context, tx *gorm.DB) ([]*types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = es.db
	}

	exercises, err := es.exerciseRepo.List(ctx, transaction)
	if err != nil {
		es.log.Error("List exercises failed", "error", err)
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Create adds a catalog row without any duplicate check; only the seeder
// dedupes by name.
func (es *exerciseService) Create(ctx context.Context, tx *gorm.DB, name, exerciseType, videoURL string) (*types.Exercise, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(exerciseType) == "" {
		return nil, apierr.Validation("missing_required_fields", fmt.Errorf("name and type are required"))
	}

	transaction := tx
	if transaction == nil {
		transaction = es.db
	}

	exercise := &types.Exercise{
		Name: name,
		Type: exerciseType,
	}
	if strings.TrimSpace(videoURL) != "" {
		exercise.VideoURL = &videoURL
	}

	if _, err := es.exerciseRepo.Create(ctx, transaction, []*types.Exercise{exercise}); err != nil {
		es.log.Error("Create exercise failed", "error", err)
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

// SeedCatalog ensures the fixed catalog exists, skipping rows already
// present by exact name. Each entry is an independent unit of work: a
// failing insert is logged and the loop moves on, so a partial failure
// never blocks the remaining entries. Safe to run on every startup.
func (es *exerciseService) SeedCatalog(ctx context.Context) error {
	entries, err := seed.Catalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	inserted := 0
	for _, entry := range entries {
		exists, err := es.exerciseRepo.NameExists(ctx, nil, entry.Name)
		if err != nil {
			es.log.Warn("SeedCatalog: existence check failed", "error", err, "name", entry.Name)
			continue
		}
		if exists {
			continue
		}
		exercise := &types.Exercise{Name: entry.Name, Type: entry.Type}
		if _, err := es.exerciseRepo.Create(ctx, nil, []*types.Exercise{exercise}); err != nil {
			es.log.Warn("SeedCatalog: insert failed", "error", err, "name", entry.Name)
			continue
		}
		es.log.Debug("SeedCatalog: exercise added", "name", entry.Name)
		inserted++
	}
	es.log.Info("Exercise catalog seeded", "total", len(entries), "inserted", inserted)
	return nil
}
