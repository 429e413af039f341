package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "workoutplus", log)
	postgresSSLMode := utils.GetEnv("POSTGRES_SSLMODE", "disable", log)
	log.Debug("Environment variables loaded")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName, postgresSSLMode)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Program{},
		&types.Workout{},
		&types.Exercise{},
		&types.WorkoutExercise{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, sql string
	}{
		{
			"workouts", "fk_workouts_program_id",
			`ALTER TABLE "workouts" ADD CONSTRAINT "fk_workouts_program_id" FOREIGN KEY ("program_id") REFERENCES "programs"("id")`,
		},
		{
			"workout_exercises", "fk_workout_exercises_workout_id",
			`ALTER TABLE "workout_exercises" ADD CONSTRAINT "fk_workout_exercises_workout_id" FOREIGN KEY ("workout_id") REFERENCES "workouts"("id")`,
		},
		{
			"workout_exercises", "fk_workout_exercises_exercise_id",
			`ALTER TABLE "workout_exercises" ADD CONSTRAINT "fk_workout_exercises_exercise_id" FOREIGN KEY ("exercise_id") REFERENCES "exercises"("id")`,
		},
	}
	for _, c := range constraints {
		if err := s.db.Exec(fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)).Error; err != nil {
			return fmt.Errorf("Failed to reset %s: %w", c.name, err)
		}
		if err := s.db.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("Failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

// Close releases the underlying connection pool. Called once on shutdown.
func (s *PostgresService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.log.Info("Closing postgres connection pool...")
	return sqlDB.Close()
}
