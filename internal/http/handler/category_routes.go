package handler

import (
	"net/http"
	"strconv"

	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CategoryService interface {
	GetCategories(actor *entity.User) ([]*contract.CategoryResponse, apierror.ErrorResponse)
	GetCategory(actor *entity.User, categoryId int) (*contract.CategoryResponse, apierror.ErrorResponse)
	CreateCategory(actor *entity.User, req *contract.CategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse)
	UpdateCategory(actor *entity.User, req *contract.UpdateCategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse)
	DeleteCategory(actor *entity.User, categoryId int) (*contract.CategoryResponse, apierror.ErrorResponse)
}

type DefaultCategoryRoute struct {
	CategoryService CategoryService
}

func NewCategoryDefault(categoryService CategoryService) *DefaultCategoryRoute {
	return &DefaultCategoryRoute{CategoryService: categoryService}
}

func (s *DefaultCategoryRoute) GetCategories(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	categories, apierr := s.CategoryService.GetCategories(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"categories": categories}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultCategoryRoute) GetCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	category, apierr := s.CategoryService.GetCategory(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, category)
}

func (s *DefaultCategoryRoute) CreateCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	category, apierr := s.CategoryService.CreateCategory(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, category)
}

func (s *DefaultCategoryRoute) UpdateCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	category, apierr := s.CategoryService.UpdateCategory(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, category)
}

func (s *DefaultCategoryRoute) DeleteCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	category, apierr := s.CategoryService.DeleteCategory(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, category)
}
