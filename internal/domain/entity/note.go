package entity

type Note struct {
	ID        int    `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"` // optional in requests, stored as ""
	OwnerID   int    `gorm:"not null;index"`
	CreatedAt int64  `gorm:"not null"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}
