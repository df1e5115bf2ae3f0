package entity

// Edge tables for the many-to-many relations. Each pair is unique: attaching
// the same label or category twice is a conflict, not a second row.

type NoteLabel struct {
	ID      int `gorm:"primaryKey"`
	NoteID  int `gorm:"not null;uniqueIndex:idx_note_label"`
	LabelID int `gorm:"not null;uniqueIndex:idx_note_label"`

	// Relations
	Note  Note  `gorm:"foreignKey:NoteID;references:ID"`
	Label Label `gorm:"foreignKey:LabelID;references:ID"`
}

func (NoteLabel) TableName() string { return "notes_labels" }

type NoteCategory struct {
	ID         int `gorm:"primaryKey"`
	NoteID     int `gorm:"not null;uniqueIndex:idx_note_category"`
	CategoryID int `gorm:"not null;uniqueIndex:idx_note_category"`

	// Relations
	Note     Note     `gorm:"foreignKey:NoteID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (NoteCategory) TableName() string { return "notes_categories" }

type UserLabel struct {
	ID      int `gorm:"primaryKey"`
	UserID  int `gorm:"not null;uniqueIndex:idx_user_label"`
	LabelID int `gorm:"not null;uniqueIndex:idx_user_label"`

	// Relations
	User  User  `gorm:"foreignKey:UserID;references:ID"`
	Label Label `gorm:"foreignKey:LabelID;references:ID"`
}

func (UserLabel) TableName() string { return "users_labels" }
