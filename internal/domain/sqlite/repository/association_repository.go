package repository

import (
	"errors"

	"notedeck/internal/domain/entity"

	"gorm.io/gorm"
)

// Edge repositories for notes_labels, notes_categories and users_labels.
// The composite unique indexes on the entities back the duplicate checks
// done at the service layer.

type DefaultNoteLabelRepository struct {
	db *gorm.DB
}

func NewNoteLabelRepository(db *gorm.DB) *DefaultNoteLabelRepository {
	return &DefaultNoteLabelRepository{db: db}
}

func (d *DefaultNoteLabelRepository) FindEdge(noteId, labelId int) (*entity.NoteLabel, error) {
	var edge entity.NoteLabel
	err := d.db.Where("note_id = ? AND label_id = ?", noteId, labelId).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (d *DefaultNoteLabelRepository) Create(edge *entity.NoteLabel) error {
	return d.db.Create(edge).Error
}

func (d *DefaultNoteLabelRepository) Delete(edge *entity.NoteLabel) error {
	return d.db.Delete(edge).Error
}

type DefaultNoteCategoryRepository struct {
	db *gorm.DB
}

func NewNoteCategoryRepository(db *gorm.DB) *DefaultNoteCategoryRepository {
	return &DefaultNoteCategoryRepository{db: db}
}

func (d *DefaultNoteCategoryRepository) FindEdge(noteId, categoryId int) (*entity.NoteCategory, error) {
	var edge entity.NoteCategory
	err := d.db.Where("note_id = ? AND category_id = ?", noteId, categoryId).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (d *DefaultNoteCategoryRepository) Create(edge *entity.NoteCategory) error {
	return d.db.Create(edge).Error
}

func (d *DefaultNoteCategoryRepository) Delete(edge *entity.NoteCategory) error {
	return d.db.Delete(edge).Error
}

type DefaultUserLabelRepository struct {
	db *gorm.DB
}

func NewUserLabelRepository(db *gorm.DB) *DefaultUserLabelRepository {
	return &DefaultUserLabelRepository{db: db}
}

func (d *DefaultUserLabelRepository) FindEdge(userId, labelId int) (*entity.UserLabel, error) {
	var edge entity.UserLabel
	err := d.db.Where("user_id = ? AND label_id = ?", userId, labelId).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (d *DefaultUserLabelRepository) Create(edge *entity.UserLabel) error {
	return d.db.Create(edge).Error
}

func (d *DefaultUserLabelRepository) Delete(edge *entity.UserLabel) error {
	return d.db.Delete(edge).Error
}
