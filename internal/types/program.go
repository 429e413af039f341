package types

// Program is the root of the training hierarchy. Ids are serial and never
// reused; deleting a program goes through the cascade in ProgramService.
type Program struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Level       string  `gorm:"column:level;not null" json:"level"`
	Type        string  `gorm:"column:type;not null" json:"type"`
	Category    *string `gorm:"column:category" json:"category,omitempty"`
	Description string  `gorm:"column:description;not null" json:"description"`
}

func (Program) TableName() string { return "programs" }

// ProgramDetail is a program merged with its workouts ordered by
// (week_number, day_number).
type ProgramDetail struct {
	Program
	Workouts []*Workout `json:"workouts"`
}
