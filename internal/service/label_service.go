package service

import (
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type LabelRepository interface {
	FindAllByOwner(ownerId int) ([]*entity.Label, error)
	FindByID(id, ownerId int) (*entity.Label, error)
	FindForNote(noteId, ownerId int) ([]*entity.Label, error)
	Save(label *entity.Label) error
	Delete(label *entity.Label) error
}

type DefaultLabelService struct {
	LabelRepo LabelRepository
	Validate  *validator.Validate
}

func NewLabelService(labelRepo LabelRepository, validate *validator.Validate) *DefaultLabelService {
	return &DefaultLabelService{LabelRepo: labelRepo, Validate: validate}
}

func (l *DefaultLabelService) GetLabels(actor *entity.User) ([]*contract.LabelResponse, apierror.ErrorResponse) {
	labels, err := l.LabelRepo.FindAllByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch labels: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LabelResponse, len(labels))
	for i, label := range labels {
		resp[i] = toLabelResponse(label)
	}
	return resp, nil
}

func (l *DefaultLabelService) GetLabel(actor *entity.User, labelId int) (*contract.LabelResponse, apierror.ErrorResponse) {
	label, apierr := l.fetchOwned(actor, labelId)
	if apierr != nil {
		return nil, apierr
	}
	return toLabelResponse(label), nil
}

func (l *DefaultLabelService) CreateLabel(actor *entity.User, req *contract.LabelRequest) (*contract.LabelResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	label := &entity.Label{
		Name:    req.Name,
		OwnerID: actor.ID,
	}
	if err := l.LabelRepo.Save(label); err != nil {
		log.Errorf("failed to save label: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLabelResponse(label), nil
}

func (l *DefaultLabelService) UpdateLabel(actor *entity.User, req *contract.UpdateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := l.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	label, apierr := l.fetchOwned(actor, req.ID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		label.Name = *req.Name
	}

	if err := l.LabelRepo.Save(label); err != nil {
		log.Errorf("failed to update label: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLabelResponse(label), nil
}

func (l *DefaultLabelService) DeleteLabel(actor *entity.User, labelId int) (*contract.LabelResponse, apierror.ErrorResponse) {
	label, apierr := l.fetchOwned(actor, labelId)
	if apierr != nil {
		return nil, apierr
	}

	if err := l.LabelRepo.Delete(label); err != nil {
		log.Errorf("failed to delete label: %v", err)
		return nil, apierror.InternalServerError
	}
	return toLabelResponse(label), nil
}

func (l *DefaultLabelService) fetchOwned(actor *entity.User, labelId int) (*entity.Label, apierror.ErrorResponse) {
	label, err := l.LabelRepo.FindByID(labelId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch label %d: %v", labelId, err)
		return nil, apierror.InternalServerError
	}

	if label == nil {
		return nil, apierror.NotFoundError
	}
	return label, nil
}

func toLabelResponse(label *entity.Label) *contract.LabelResponse {
	return &contract.LabelResponse{
		ID:   label.ID,
		Name: label.Name,
	}
}
