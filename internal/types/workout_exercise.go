package types

// WorkoutExercise ties one catalog exercise to one workout with prescribed
// parameters. Reps and weight are text on purpose: they carry ranges
// ("8-12") and bodyweight/band notations.
type WorkoutExercise struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkoutID  int64     `gorm:"column:workout_id;not null;index" json:"workout_id"`
	Workout    *Workout  `gorm:"foreignKey:WorkoutID;references:ID" json:"workout,omitempty"`
	ExerciseID int64     `gorm:"column:exercise_id;not null;index" json:"exercise_id"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID;references:ID" json:"exercise,omitempty"`
	Sets       int       `gorm:"column:sets" json:"sets"`
	Reps       string    `gorm:"column:reps" json:"reps"`
	Weight     string    `gorm:"column:weight" json:"weight"`
	RestTime   int       `gorm:"column:rest_time" json:"rest_time"`
	Notes      *string   `gorm:"column:notes" json:"notes,omitempty"`
	OrderIndex int       `gorm:"column:order_index" json:"order_index"`
}

func (WorkoutExercise) TableName() string { return "workout_exercises" }

// WorkoutExerciseDetail is the assignment row joined with the exercise's
// name and type, the shape returned when listing a workout's exercises.
type WorkoutExerciseDetail struct {
	WorkoutExercise
	ExerciseName string `gorm:"column:exercise_name" json:"exercise_name"`
	ExerciseType string `gorm:"column:exercise_type" json:"exercise_type"`
}
