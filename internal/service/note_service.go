package service

import (
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAllByOwner(ownerId int) ([]*entity.Note, error)
	FindByID(id, ownerId int) (*entity.Note, error)
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type NoteLabelRepository interface {
	FindEdge(noteId, labelId int) (*entity.NoteLabel, error)
	Create(edge *entity.NoteLabel) error
	Delete(edge *entity.NoteLabel) error
}

type NoteCategoryRepository interface {
	FindEdge(noteId, categoryId int) (*entity.NoteCategory, error)
	Create(edge *entity.NoteCategory) error
	Delete(edge *entity.NoteCategory) error
}

type DefaultNoteService struct {
	NoteRepo         NoteRepository
	LabelRepo        LabelRepository
	CategoryRepo     CategoryRepository
	NoteLabelRepo    NoteLabelRepository
	NoteCategoryRepo NoteCategoryRepository
	Validate         *validator.Validate
}

func NewNoteService(
	noteRepo NoteRepository,
	labelRepo LabelRepository,
	categoryRepo CategoryRepository,
	noteLabelRepo NoteLabelRepository,
	noteCategoryRepo NoteCategoryRepository,
	validate *validator.Validate,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:         noteRepo,
		LabelRepo:        labelRepo,
		CategoryRepo:     categoryRepo,
		NoteLabelRepo:    noteLabelRepo,
		NoteCategoryRepo: noteCategoryRepo,
		Validate:         validate,
	}
}

func (n *DefaultNoteService) GetNotes(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (n *DefaultNoteService) GetNote(actor *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.fetchOwned(actor, noteId)
	if apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	note := &entity.Note{
		Title:     req.Title,
		Body:      req.Body,
		OwnerID:   actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(actor *entity.User, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	note, apierr := n.fetchOwned(actor, req.ID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}

	note.UpdatedAt = utils.NowUTC()
	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// DeleteNote removes the note and returns its prior state.
func (n *DefaultNoteService) DeleteNote(actor *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.fetchOwned(actor, noteId)
	if apierr != nil {
		return nil, apierr
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) GetLabelsForNote(actor *entity.User, noteId int) ([]*contract.LabelResponse, apierror.ErrorResponse) {
	if _, apierr := n.fetchOwned(actor, noteId); apierr != nil {
		return nil, apierr
	}

	labels, err := n.LabelRepo.FindForNote(noteId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch labels for note %d: %v", noteId, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LabelResponse, len(labels))
	for i, label := range labels {
		resp[i] = toLabelResponse(label)
	}
	return resp, nil
}

func (n *DefaultNoteService) GetCategoriesForNote(actor *entity.User, noteId int) ([]*contract.CategoryResponse, apierror.ErrorResponse) {
	if _, apierr := n.fetchOwned(actor, noteId); apierr != nil {
		return nil, apierr
	}

	categories, err := n.CategoryRepo.FindForNote(noteId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch categories for note %d: %v", noteId, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CategoryResponse, len(categories))
	for i, category := range categories {
		resp[i] = toCategoryResponse(category)
	}
	return resp, nil
}

// AttachLabel links a label to a note. Both rows must belong to the actor;
// anything else looks like a missing resource. A second attach of the same
// pair is a conflict.
func (n *DefaultNoteService) AttachLabel(actor *entity.User, noteId, labelId int) (*contract.NoteLabelResponse, apierror.ErrorResponse) {
	if apierr := n.checkLabelPair(actor, noteId, labelId); apierr != nil {
		return nil, apierr
	}

	existing, err := n.NoteLabelRepo.FindEdge(noteId, labelId)
	if err != nil {
		log.Errorf("failed to check note-label edge: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateEdgeError
	}

	edge := &entity.NoteLabel{NoteID: noteId, LabelID: labelId}
	if err := n.NoteLabelRepo.Create(edge); err != nil {
		log.Errorf("failed to create note-label edge: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteLabelResponse(edge), nil
}

func (n *DefaultNoteService) DetachLabel(actor *entity.User, noteId, labelId int) (*contract.NoteLabelResponse, apierror.ErrorResponse) {
	if apierr := n.checkLabelPair(actor, noteId, labelId); apierr != nil {
		return nil, apierr
	}

	edge, err := n.NoteLabelRepo.FindEdge(noteId, labelId)
	if err != nil {
		log.Errorf("failed to check note-label edge: %v", err)
		return nil, apierror.InternalServerError
	}
	if edge == nil {
		return nil, apierror.NotFoundError
	}

	if err := n.NoteLabelRepo.Delete(edge); err != nil {
		log.Errorf("failed to delete note-label edge: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteLabelResponse(edge), nil
}

func (n *DefaultNoteService) AttachCategory(actor *entity.User, noteId, categoryId int) (*contract.NoteCategoryResponse, apierror.ErrorResponse) {
	if apierr := n.checkCategoryPair(actor, noteId, categoryId); apierr != nil {
		return nil, apierr
	}

	existing, err := n.NoteCategoryRepo.FindEdge(noteId, categoryId)
	if err != nil {
		log.Errorf("failed to check note-category edge: %v", err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateEdgeError
	}

	edge := &entity.NoteCategory{NoteID: noteId, CategoryID: categoryId}
	if err := n.NoteCategoryRepo.Create(edge); err != nil {
		log.Errorf("failed to create note-category edge: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteCategoryResponse(edge), nil
}

func (n *DefaultNoteService) DetachCategory(actor *entity.User, noteId, categoryId int) (*contract.NoteCategoryResponse, apierror.ErrorResponse) {
	if apierr := n.checkCategoryPair(actor, noteId, categoryId); apierr != nil {
		return nil, apierr
	}

	edge, err := n.NoteCategoryRepo.FindEdge(noteId, categoryId)
	if err != nil {
		log.Errorf("failed to check note-category edge: %v", err)
		return nil, apierror.InternalServerError
	}
	if edge == nil {
		return nil, apierror.NotFoundError
	}

	if err := n.NoteCategoryRepo.Delete(edge); err != nil {
		log.Errorf("failed to delete note-category edge: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteCategoryResponse(edge), nil
}

func (n *DefaultNoteService) fetchOwned(actor *entity.User, noteId int) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch note %d: %v", noteId, err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.NotFoundError
	}
	return note, nil
}

func (n *DefaultNoteService) checkLabelPair(actor *entity.User, noteId, labelId int) apierror.ErrorResponse {
	if _, apierr := n.fetchOwned(actor, noteId); apierr != nil {
		return apierr
	}

	label, err := n.LabelRepo.FindByID(labelId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch label %d: %v", labelId, err)
		return apierror.InternalServerError
	}
	if label == nil {
		return apierror.NotFoundError
	}
	return nil
}

func (n *DefaultNoteService) checkCategoryPair(actor *entity.User, noteId, categoryId int) apierror.ErrorResponse {
	if _, apierr := n.fetchOwned(actor, noteId); apierr != nil {
		return apierr
	}

	category, err := n.CategoryRepo.FindByID(categoryId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch category %d: %v", categoryId, err)
		return apierror.InternalServerError
	}
	if category == nil {
		return apierror.NotFoundError
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		OwnerID:   note.OwnerID,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
		UpdatedAt: utils.FormatEpoch(note.UpdatedAt),
	}
}

func toNoteLabelResponse(edge *entity.NoteLabel) *contract.NoteLabelResponse {
	return &contract.NoteLabelResponse{
		ID:      edge.ID,
		NoteID:  edge.NoteID,
		LabelID: edge.LabelID,
	}
}

func toNoteCategoryResponse(edge *entity.NoteCategory) *contract.NoteCategoryResponse {
	return &contract.NoteCategoryResponse{
		ID:         edge.ID,
		NoteID:     edge.NoteID,
		CategoryID: edge.CategoryID,
	}
}
