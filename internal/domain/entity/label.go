package entity

type Label struct {
	ID      int    `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	OwnerID int    `gorm:"not null;index"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID;references:ID"`
}
