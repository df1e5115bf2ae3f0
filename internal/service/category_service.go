package service

import (
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CategoryRepository interface {
	FindAllByOwner(ownerId int) ([]*entity.Category, error)
	FindByID(id, ownerId int) (*entity.Category, error)
	FindForNote(noteId, ownerId int) ([]*entity.Category, error)
	Save(category *entity.Category) error
	Delete(category *entity.Category) error
}

type DefaultCategoryService struct {
	CategoryRepo CategoryRepository
	Validate     *validator.Validate
}

func NewCategoryService(categoryRepo CategoryRepository, validate *validator.Validate) *DefaultCategoryService {
	return &DefaultCategoryService{CategoryRepo: categoryRepo, Validate: validate}
}

func (s *DefaultCategoryService) GetCategories(actor *entity.User) ([]*contract.CategoryResponse, apierror.ErrorResponse) {
	categories, err := s.CategoryRepo.FindAllByOwner(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch categories: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CategoryResponse, len(categories))
	for i, category := range categories {
		resp[i] = toCategoryResponse(category)
	}
	return resp, nil
}

func (s *DefaultCategoryService) GetCategory(actor *entity.User, categoryId int) (*contract.CategoryResponse, apierror.ErrorResponse) {
	category, apierr := s.fetchOwned(actor, categoryId)
	if apierr != nil {
		return nil, apierr
	}
	return toCategoryResponse(category), nil
}

func (s *DefaultCategoryService) CreateCategory(actor *entity.User, req *contract.CategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	category := &entity.Category{
		Name:    req.Name,
		OwnerID: actor.ID,
	}
	if err := s.CategoryRepo.Save(category); err != nil {
		log.Errorf("failed to save category: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCategoryResponse(category), nil
}

func (s *DefaultCategoryService) UpdateCategory(actor *entity.User, req *contract.UpdateCategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	category, apierr := s.fetchOwned(actor, req.ID)
	if apierr != nil {
		return nil, apierr
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.CategoryRepo.Save(category); err != nil {
		log.Errorf("failed to update category: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCategoryResponse(category), nil
}

func (s *DefaultCategoryService) DeleteCategory(actor *entity.User, categoryId int) (*contract.CategoryResponse, apierror.ErrorResponse) {
	category, apierr := s.fetchOwned(actor, categoryId)
	if apierr != nil {
		return nil, apierr
	}

	if err := s.CategoryRepo.Delete(category); err != nil {
		log.Errorf("failed to delete category: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCategoryResponse(category), nil
}

func (s *DefaultCategoryService) fetchOwned(actor *entity.User, categoryId int) (*entity.Category, apierror.ErrorResponse) {
	category, err := s.CategoryRepo.FindByID(categoryId, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch category %d: %v", categoryId, err)
		return nil, apierror.InternalServerError
	}

	if category == nil {
		return nil, apierror.NotFoundError
	}
	return category, nil
}

func toCategoryResponse(category *entity.Category) *contract.CategoryResponse {
	return &contract.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
