package entity

// User is an account holder. Every note, label and category row belongs
// to exactly one user.
type User struct {
	ID           int    `gorm:"primaryKey"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Login        bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false"`
}
