package types

// Exercise is a catalog entry. Type is a free-text tag and may carry several
// comma-separated tags ("Back, Biceps"). Name is not unique in storage; only
// the seeder dedupes by name.
type Exercise struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"column:name;not null" json:"name"`
	Type     string  `gorm:"column:type;not null" json:"type"`
	VideoURL *string `gorm:"column:video_url" json:"video_url,omitempty"`
}

func (Exercise) TableName() string { return "exercises" }
