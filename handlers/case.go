package handlers

import (
	"net/http"

	"caseboard/models"

	"github.com/labstack/echo/v4"
)

// GetCasesHandler returns the cases matching ?search= and, optionally, ?status=
func (h *Handler) GetCasesHandler(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !models.IsValidCaseStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status filter")
	}

	cases := h.cases.List(c.QueryParam("search"), status)
	return c.JSON(http.StatusOK, listResponse{Data: cases, Total: len(cases)})
}

// GetCaseHandler returns a single case
func (h *Handler) GetCaseHandler(c echo.Context) error {
	caseRecord, err := h.cases.Get(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// CreateCaseHandler creates a case from the JSON body
func (h *Handler) CreateCaseHandler(c echo.Context) error {
	var in models.Case
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	caseRecord, err := h.cases.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.JSON(http.StatusCreated, caseRecord)
}

// UpdateCaseHandler replaces a case; the id comes from the path
func (h *Handler) UpdateCaseHandler(c echo.Context) error {
	var in models.Case
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	in.ID = c.Param("id")

	caseRecord, err := h.cases.Update(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// DeleteCaseHandler removes a case once confirmed
func (h *Handler) DeleteCaseHandler(c echo.Context) error {
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.cases.Delete(c.Param("id")); err != nil {
		return h.fail(c, err, "Case not found")
	}
	return c.NoContent(http.StatusNoContent)
}
