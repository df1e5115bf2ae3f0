package repository

import (
	"errors"

	"notedeck/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByOwner(ownerId int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("owner_id = ?", ownerId).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID only matches rows owned by ownerId. A note belonging to someone
// else resolves to nil, same as a note that does not exist.
func (d *DefaultNoteRepository) FindByID(id, ownerId int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("id = ? AND owner_id = ?", id, ownerId).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
