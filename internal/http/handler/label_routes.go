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

type LabelService interface {
	GetLabels(actor *entity.User) ([]*contract.LabelResponse, apierror.ErrorResponse)
	GetLabel(actor *entity.User, labelId int) (*contract.LabelResponse, apierror.ErrorResponse)
	CreateLabel(actor *entity.User, req *contract.LabelRequest) (*contract.LabelResponse, apierror.ErrorResponse)
	UpdateLabel(actor *entity.User, req *contract.UpdateLabelRequest) (*contract.LabelResponse, apierror.ErrorResponse)
	DeleteLabel(actor *entity.User, labelId int) (*contract.LabelResponse, apierror.ErrorResponse)
}

type DefaultLabelRoute struct {
	LabelService LabelService
}

func NewLabelDefault(labelService LabelService) *DefaultLabelRoute {
	return &DefaultLabelRoute{LabelService: labelService}
}

func (l *DefaultLabelRoute) GetLabels(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	labels, apierr := l.LabelService.GetLabels(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"labels": labels}
	return c.JSON(http.StatusOK, &resp)
}

func (l *DefaultLabelRoute) GetLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	label, apierr := l.LabelService.GetLabel(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, label)
}

func (l *DefaultLabelRoute) CreateLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	label, apierr := l.LabelService.CreateLabel(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, label)
}

func (l *DefaultLabelRoute) UpdateLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateLabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	label, apierr := l.LabelService.UpdateLabel(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, label)
}

func (l *DefaultLabelRoute) DeleteLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	label, apierr := l.LabelService.DeleteLabel(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, label)
}
