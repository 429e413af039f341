package types

type Workout struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProgramID  int64    `gorm:"column:program_id;not null;index" json:"program_id"`
	Program    *Program `gorm:"foreignKey:ProgramID;references:ID" json:"program,omitempty"`
	Name       string   `gorm:"column:name;not null" json:"name"`
	DayNumber  int      `gorm:"column:day_number;not null" json:"day_number"`
	WeekNumber int      `gorm:"column:week_number;not null" json:"week_number"`
}

func (Workout) TableName() string { return "workouts" }
