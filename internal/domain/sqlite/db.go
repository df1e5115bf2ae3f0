package sqlite

import (
	"time"

	"notedeck/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// MaxOpenConns bounds the pool; saturated callers block on acquisition,
// which is the only backpressure this service applies.
const MaxOpenConns = 10

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Note{},
		&entity.Label{},
		&entity.Category{},
		&entity.NoteLabel{},
		&entity.NoteCategory{},
		&entity.UserLabel{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(MaxOpenConns)
	sqlDB.SetMaxIdleConns(MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
