package service

import (
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	return validate
}

type mockUserRepo struct {
	findByIDFunc      func(id int) (*entity.User, error)
	findByEmailFunc   func(email string) (*entity.User, error)
	existsByEmailFunc func(email string) (bool, error)
	saveFunc          func(user *entity.User) error
}

func (m *mockUserRepo) FindByID(id int) (*entity.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*entity.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(email)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	if m.existsByEmailFunc != nil {
		return m.existsByEmailFunc(email)
	}
	return false, nil
}

func (m *mockUserRepo) Save(user *entity.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(user)
	}
	return nil
}

type mockNoteRepo struct {
	findAllByOwnerFunc func(ownerId int) ([]*entity.Note, error)
	findByIDFunc       func(id, ownerId int) (*entity.Note, error)
	saveFunc           func(note *entity.Note) error
	deleteFunc         func(note *entity.Note) error
}

func (m *mockNoteRepo) FindAllByOwner(ownerId int) ([]*entity.Note, error) {
	if m.findAllByOwnerFunc != nil {
		return m.findAllByOwnerFunc(ownerId)
	}
	return nil, nil
}

func (m *mockNoteRepo) FindByID(id, ownerId int) (*entity.Note, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id, ownerId)
	}
	return nil, nil
}

func (m *mockNoteRepo) Save(note *entity.Note) error {
	if m.saveFunc != nil {
		return m.saveFunc(note)
	}
	return nil
}

func (m *mockNoteRepo) Delete(note *entity.Note) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(note)
	}
	return nil
}

type mockLabelRepo struct {
	findAllByOwnerFunc func(ownerId int) ([]*entity.Label, error)
	findByIDFunc       func(id, ownerId int) (*entity.Label, error)
	findForNoteFunc    func(noteId, ownerId int) ([]*entity.Label, error)
	saveFunc           func(label *entity.Label) error
	deleteFunc         func(label *entity.Label) error
}

func (m *mockLabelRepo) FindAllByOwner(ownerId int) ([]*entity.Label, error) {
	if m.findAllByOwnerFunc != nil {
		return m.findAllByOwnerFunc(ownerId)
	}
	return nil, nil
}

func (m *mockLabelRepo) FindByID(id, ownerId int) (*entity.Label, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id, ownerId)
	}
	return nil, nil
}

func (m *mockLabelRepo) FindForNote(noteId, ownerId int) ([]*entity.Label, error) {
	if m.findForNoteFunc != nil {
		return m.findForNoteFunc(noteId, ownerId)
	}
	return nil, nil
}

func (m *mockLabelRepo) Save(label *entity.Label) error {
	if m.saveFunc != nil {
		return m.saveFunc(label)
	}
	return nil
}

func (m *mockLabelRepo) Delete(label *entity.Label) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(label)
	}
	return nil
}

type mockCategoryRepo struct {
	findAllByOwnerFunc func(ownerId int) ([]*entity.Category, error)
	findByIDFunc       func(id, ownerId int) (*entity.Category, error)
	findForNoteFunc    func(noteId, ownerId int) ([]*entity.Category, error)
	saveFunc           func(category *entity.Category) error
	deleteFunc         func(category *entity.Category) error
}

func (m *mockCategoryRepo) FindAllByOwner(ownerId int) ([]*entity.Category, error) {
	if m.findAllByOwnerFunc != nil {
		return m.findAllByOwnerFunc(ownerId)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByID(id, ownerId int) (*entity.Category, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id, ownerId)
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindForNote(noteId, ownerId int) ([]*entity.Category, error) {
	if m.findForNoteFunc != nil {
		return m.findForNoteFunc(noteId, ownerId)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Save(category *entity.Category) error {
	if m.saveFunc != nil {
		return m.saveFunc(category)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(category *entity.Category) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(category)
	}
	return nil
}

type mockNoteLabelRepo struct {
	findEdgeFunc func(noteId, labelId int) (*entity.NoteLabel, error)
	createFunc   func(edge *entity.NoteLabel) error
	deleteFunc   func(edge *entity.NoteLabel) error
}

func (m *mockNoteLabelRepo) FindEdge(noteId, labelId int) (*entity.NoteLabel, error) {
	if m.findEdgeFunc != nil {
		return m.findEdgeFunc(noteId, labelId)
	}
	return nil, nil
}

func (m *mockNoteLabelRepo) Create(edge *entity.NoteLabel) error {
	if m.createFunc != nil {
		return m.createFunc(edge)
	}
	return nil
}

func (m *mockNoteLabelRepo) Delete(edge *entity.NoteLabel) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(edge)
	}
	return nil
}

type mockNoteCategoryRepo struct {
	findEdgeFunc func(noteId, categoryId int) (*entity.NoteCategory, error)
	createFunc   func(edge *entity.NoteCategory) error
	deleteFunc   func(edge *entity.NoteCategory) error
}

func (m *mockNoteCategoryRepo) FindEdge(noteId, categoryId int) (*entity.NoteCategory, error) {
	if m.findEdgeFunc != nil {
		return m.findEdgeFunc(noteId, categoryId)
	}
	return nil, nil
}

func (m *mockNoteCategoryRepo) Create(edge *entity.NoteCategory) error {
	if m.createFunc != nil {
		return m.createFunc(edge)
	}
	return nil
}

func (m *mockNoteCategoryRepo) Delete(edge *entity.NoteCategory) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(edge)
	}
	return nil
}
