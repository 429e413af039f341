package repos

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GiuseppeFalliti/workout-plus-backend/internal/logger"
	"github.com/GiuseppeFalliti/workout-plus-backend/internal/types"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repos_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&types.Program{},
		&types.Workout{},
		&types.Exercise{},
		&types.WorkoutExercise{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func seedProgram(t *testing.T, db *gorm.DB, name string) *types.Program {
	t.Helper()
	p := &types.Program{Name: name, Level: "intermediate", Type: "strength", Description: "test program"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed program: %v", err)
	}
	return p
}

func seedWorkout(t *testing.T, db *gorm.DB, programID int64, name string, week, day int) *types.Workout {
	t.Helper()
	w := &types.Workout{ProgramID: programID, Name: name, WeekNumber: week, DayNumber: day}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	return w
}

func seedExercise(t *testing.T, db *gorm.DB, name, exType string) *types.Exercise {
	t.Helper()
	e := &types.Exercise{Name: name, Type: exType}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed exercise: %v", err)
	}
	return e
}

func seedAssignment(t *testing.T, db *gorm.DB, workoutID, exerciseID int64, orderIndex int) *types.WorkoutExercise {
	t.Helper()
	we := &types.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: exerciseID,
		Sets:       3,
		Reps:       "8-12",
		Weight:     "bodyweight",
		RestTime:   60,
		OrderIndex: orderIndex,
	}
	if err := db.Create(we).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return we
}

func TestWorkoutsOrderedByWeekThenDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Order A")

	seedWorkout(t, db, p.ID, "w2d1", 2, 1)
	seedWorkout(t, db, p.ID, "w1d3", 1, 3)
	seedWorkout(t, db, p.ID, "w1d1", 1, 1)

	workouts, err := repo.GetByProgramIDs(context.Background(), nil, []int64{p.ID})
	if err != nil {
		t.Fatalf("GetByProgramIDs: %v", err)
	}
	if len(workouts) != 3 {
		t.Fatalf("workout count: want=3 got=%d", len(workouts))
	}
	wantOrder := []string{"w1d1", "w1d3", "w2d1"}
	for i, want := range wantOrder {
		if workouts[i].Name != want {
			t.Fatalf("workout order at %d: want=%q got=%q", i, want, workouts[i].Name)
		}
	}
}

func TestWorkoutOrderingTiesKeepInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Ties")

	first := seedWorkout(t, db, p.ID, "first", 1, 1)
	second := seedWorkout(t, db, p.ID, "second", 1, 1)

	workouts, err := repo.GetByProgramIDs(context.Background(), nil, []int64{p.ID})
	if err != nil {
		t.Fatalf("GetByProgramIDs: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("workout count: want=2 got=%d", len(workouts))
	}
	if workouts[0].ID != first.ID || workouts[1].ID != second.ID {
		t.Fatalf("tie order: want=[%d %d] got=[%d %d]", first.ID, second.ID, workouts[0].ID, workouts[1].ID)
	}
}

func TestExerciseListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepo(db, newTestLogger(t))

	seedExercise(t, db, "Squat", "Legs")
	seedExercise(t, db, "Dips", "Triceps")
	seedExercise(t, db, "Plank", "Core")

	exercises, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	wantOrder := []string{"Dips", "Plank", "Squat"}
	if len(exercises) != len(wantOrder) {
		t.Fatalf("exercise count: want=%d got=%d", len(wantOrder), len(exercises))
	}
	for i, want := range wantOrder {
		if exercises[i].Name != want {
			t.Fatalf("exercise order at %d: want=%q got=%q", i, want, exercises[i].Name)
		}
	}
}

func TestExerciseNameExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewExerciseRepo(db, newTestLogger(t))
	seedExercise(t, db, "Squat", "Legs")

	exists, err := repo.NameExists(context.Background(), nil, "Squat")
	if err != nil {
		t.Fatalf("NameExists: %v", err)
	}
	if !exists {
		t.Fatalf("NameExists(Squat): want=true got=false")
	}
	exists, err = repo.NameExists(context.Background(), nil, "squat")
	if err != nil {
		t.Fatalf("NameExists: %v", err)
	}
	if exists {
		t.Fatalf("NameExists(squat): exact match expected, want=false got=true")
	}
}

func TestAssignmentDetailsOrderedAndJoined(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutExerciseRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Join")
	w := seedWorkout(t, db, p.ID, "day 1", 1, 1)
	squat := seedExercise(t, db, "Squat", "Legs")
	plank := seedExercise(t, db, "Plank", "Core")

	seedAssignment(t, db, w.ID, plank.ID, 1)
	seedAssignment(t, db, w.ID, squat.ID, 0)

	details, err := repo.GetDetailsByWorkoutID(context.Background(), nil, w.ID)
	if err != nil {
		t.Fatalf("GetDetailsByWorkoutID: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("detail count: want=2 got=%d", len(details))
	}
	if details[0].ExerciseName != "Squat" || details[0].OrderIndex != 0 {
		t.Fatalf("first detail: want=Squat/0 got=%s/%d", details[0].ExerciseName, details[0].OrderIndex)
	}
	if details[1].ExerciseName != "Plank" || details[1].ExerciseType != "Core" {
		t.Fatalf("second detail: want=Plank/Core got=%s/%s", details[1].ExerciseName, details[1].ExerciseType)
	}
}

func TestAssignmentDetailTiesKeepInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutExerciseRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Stable")
	w := seedWorkout(t, db, p.ID, "day 1", 1, 1)
	e := seedExercise(t, db, "Squat", "Legs")

	first := seedAssignment(t, db, w.ID, e.ID, 5)
	second := seedAssignment(t, db, w.ID, e.ID, 5)

	details, err := repo.GetDetailsByWorkoutID(context.Background(), nil, w.ID)
	if err != nil {
		t.Fatalf("GetDetailsByWorkoutID: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("detail count: want=2 got=%d", len(details))
	}
	if details[0].ID != first.ID || details[1].ID != second.ID {
		t.Fatalf("tie order: want=[%d %d] got=[%d %d]", first.ID, second.ID, details[0].ID, details[1].ID)
	}
}

func TestUpdateByWorkoutAndIDRequiresBothKeys(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutExerciseRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Compound")
	w1 := seedWorkout(t, db, p.ID, "day 1", 1, 1)
	w2 := seedWorkout(t, db, p.ID, "day 2", 1, 2)
	e := seedExercise(t, db, "Squat", "Legs")
	a := seedAssignment(t, db, w1.ID, e.ID, 0)

	updates := map[string]interface{}{"sets": 5}

	rows, err := repo.UpdateByWorkoutAndID(context.Background(), nil, w2.ID, a.ID, updates)
	if err != nil {
		t.Fatalf("UpdateByWorkoutAndID: %v", err)
	}
	if rows != 0 {
		t.Fatalf("rows with wrong workout: want=0 got=%d", rows)
	}

	rows, err = repo.UpdateByWorkoutAndID(context.Background(), nil, w1.ID, a.ID, updates)
	if err != nil {
		t.Fatalf("UpdateByWorkoutAndID: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rows with right workout: want=1 got=%d", rows)
	}
}

func TestDeleteByProgramIDRemovesOnlyThatSubtree(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutExerciseRepo(db, newTestLogger(t))
	pA := seedProgram(t, db, "A")
	pB := seedProgram(t, db, "B")
	wA := seedWorkout(t, db, pA.ID, "a1", 1, 1)
	wB := seedWorkout(t, db, pB.ID, "b1", 1, 1)
	e := seedExercise(t, db, "Squat", "Legs")
	seedAssignment(t, db, wA.ID, e.ID, 0)
	seedAssignment(t, db, wA.ID, e.ID, 1)
	kept := seedAssignment(t, db, wB.ID, e.ID, 0)

	rows, err := repo.DeleteByProgramID(context.Background(), nil, pA.ID)
	if err != nil {
		t.Fatalf("DeleteByProgramID: %v", err)
	}
	if rows != 2 {
		t.Fatalf("deleted rows: want=2 got=%d", rows)
	}

	var remaining []*types.WorkoutExercise
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("load remaining: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Fatalf("remaining assignments: want=[%d] got=%d rows", kept.ID, len(remaining))
	}
}

func TestDeleteByIDReportsRowsAffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkoutExerciseRepo(db, newTestLogger(t))
	p := seedProgram(t, db, "Del")
	w := seedWorkout(t, db, p.ID, "day 1", 1, 1)
	e := seedExercise(t, db, "Squat", "Legs")
	a := seedAssignment(t, db, w.ID, e.ID, 0)

	rows, err := repo.DeleteByID(context.Background(), nil, a.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if rows != 1 {
		t.Fatalf("first delete rows: want=1 got=%d", rows)
	}
	rows, err = repo.DeleteByID(context.Background(), nil, a.ID)
	if err != nil {
		t.Fatalf("DeleteByID repeat: %v", err)
	}
	if rows != 0 {
		t.Fatalf("repeat delete rows: want=0 got=%d", rows)
	}
}
