package handlers

import (
	"errors"
	"net/http"

	"caseboard/services"

	"github.com/labstack/echo/v4"
)

type noteRequest struct {
	Content   string `json:"content" form:"content"`
	CreatedBy string `json:"created_by" form:"created_by"`
}

// GetCaseNotesHandler lists the notes of a case, oldest first
func (h *Handler) GetCaseNotesHandler(c echo.Context) error {
	notes, err := h.notes.ForCase(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.JSON(http.StatusOK, listResponse{Data: notes, Total: len(notes)})
}

// CreateCaseNoteHandler appends a note to a case
func (h *Handler) CreateCaseNoteHandler(c echo.Context) error {
	var in noteRequest
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	note, err := h.notes.Add(c.Param("id"), in.Content, in.CreatedBy)
	if errors.Is(err, services.ErrEmptyNote) {
		err = services.ValidationErrors{"content": "Note content is required"}
	}
	if err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.JSON(http.StatusCreated, note)
}
