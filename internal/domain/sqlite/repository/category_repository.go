package repository

import (
	"errors"

	"notedeck/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{db: db}
}

func (d *DefaultCategoryRepository) FindAllByOwner(ownerId int) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := d.db.Where("owner_id = ?", ownerId).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *DefaultCategoryRepository) FindByID(id, ownerId int) (*entity.Category, error) {
	var category entity.Category
	err := d.db.Where("id = ? AND owner_id = ?", id, ownerId).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *DefaultCategoryRepository) FindForNote(noteId, ownerId int) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := d.db.
		Joins("INNER JOIN notes_categories nc ON nc.category_id = categories.id").
		Where("nc.note_id = ? AND categories.owner_id = ?", noteId, ownerId).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *DefaultCategoryRepository) Save(category *entity.Category) error {
	return d.db.Save(category).Error
}

func (d *DefaultCategoryRepository) Delete(category *entity.Category) error {
	return d.db.Delete(category).Error
}
