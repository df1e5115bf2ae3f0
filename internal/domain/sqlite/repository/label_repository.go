package repository

import (
	"errors"

	"notedeck/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultLabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *DefaultLabelRepository {
	return &DefaultLabelRepository{db: db}
}

func (d *DefaultLabelRepository) FindAllByOwner(ownerId int) ([]*entity.Label, error) {
	var labels []*entity.Label
	err := d.db.Where("owner_id = ?", ownerId).Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (d *DefaultLabelRepository) FindByID(id, ownerId int) (*entity.Label, error) {
	var label entity.Label
	err := d.db.Where("id = ? AND owner_id = ?", id, ownerId).First(&label).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &label, nil
}

// FindForNote joins through notes_labels, scoped to the label owner.
func (d *DefaultLabelRepository) FindForNote(noteId, ownerId int) ([]*entity.Label, error) {
	var labels []*entity.Label
	err := d.db.
		Joins("INNER JOIN notes_labels nl ON nl.label_id = labels.id").
		Where("nl.note_id = ? AND labels.owner_id = ?", noteId, ownerId).
		Find(&labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (d *DefaultLabelRepository) Save(label *entity.Label) error {
	return d.db.Save(label).Error
}

func (d *DefaultLabelRepository) Delete(label *entity.Label) error {
	return d.db.Delete(label).Error
}
