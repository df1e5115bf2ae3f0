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

type NoteService interface {
	GetNotes(actor *entity.User) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNote(actor *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.User, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.User, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.User, noteId int) (*contract.NoteResponse, apierror.ErrorResponse)

	GetLabelsForNote(actor *entity.User, noteId int) ([]*contract.LabelResponse, apierror.ErrorResponse)
	AttachLabel(actor *entity.User, noteId, labelId int) (*contract.NoteLabelResponse, apierror.ErrorResponse)
	DetachLabel(actor *entity.User, noteId, labelId int) (*contract.NoteLabelResponse, apierror.ErrorResponse)

	GetCategoriesForNote(actor *entity.User, noteId int) ([]*contract.CategoryResponse, apierror.ErrorResponse)
	AttachCategory(actor *entity.User, noteId, categoryId int) (*contract.NoteCategoryResponse, apierror.ErrorResponse)
	DetachCategory(actor *entity.User, noteId, categoryId int) (*contract.NoteCategoryResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetNotes(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	note, apierr := n.NoteService.GetNote(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	note, apierr := n.NoteService.DeleteNote(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) GetNoteLabels(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	labels, apierr := n.NoteService.GetLabelsForNote(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"labels": labels}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) AttachLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, labelId, perr := notePairParams(c, "label_id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	edge, apierr := n.NoteService.AttachLabel(user, noteId, labelId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, edge)
}

func (n *DefaultNoteRoute) DetachLabel(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, labelId, perr := notePairParams(c, "label_id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	edge, apierr := n.NoteService.DetachLabel(user, noteId, labelId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, edge)
}

func (n *DefaultNoteRoute) GetNoteCategories(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	categories, apierr := n.NoteService.GetCategoriesForNote(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"categories": categories}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) AttachCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, categoryId, perr := notePairParams(c, "category_id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	edge, apierr := n.NoteService.AttachCategory(user, noteId, categoryId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, edge)
}

func (n *DefaultNoteRoute) DetachCategory(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	noteId, categoryId, perr := notePairParams(c, "category_id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	edge, apierr := n.NoteService.DetachCategory(user, noteId, categoryId)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, edge)
}

func notePairParams(c echo.Context, other string) (int, int, apierror.ErrorResponse) {
	noteId, err := strconv.Atoi(c.Param("note_id"))
	if err != nil {
		return 0, 0, apierror.NewInvalidParamTypeError("note_id", "int")
	}

	otherId, err := strconv.Atoi(c.Param(other))
	if err != nil {
		return 0, 0, apierror.NewInvalidParamTypeError(other, "int")
	}
	return noteId, otherId, nil
}
