package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"caseboard/services"

	"github.com/labstack/echo/v4"
)

// ExportClientsHandler downloads the clients matching ?search= as XLSX
func (h *Handler) ExportClientsHandler(c echo.Context) error {
	buf, err := services.ExportClientsXLSX(h.clients.List(c.QueryParam("search")))
	if err != nil {
		return h.fail(c, err, "")
	}
	return sendAttachment(c, "clients.xlsx", services.XLSXContentType, buf.Bytes())
}

// ExportCasesHandler downloads the cases matching ?search= and ?status= as XLSX
func (h *Handler) ExportCasesHandler(c echo.Context) error {
	cases := h.cases.List(c.QueryParam("search"), c.QueryParam("status"))
	buf, err := services.ExportCasesXLSX(cases)
	if err != nil {
		return h.fail(c, err, "")
	}
	return sendAttachment(c, "cases.xlsx", services.XLSXContentType, buf.Bytes())
}

// ImportClientsHandler creates clients from an uploaded XLSX workbook
func (h *Handler) ImportClientsHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return h.fail(c, services.ValidationErrors{"file": "Please select a workbook"}, "")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid upload form")
	}

	file, err := services.ReadUpload(fileHeader, h.documents.MaxUploadSize())
	if err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.clients.Import(c.Request().Context(), bytes.NewReader(file.Content))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return h.fail(c, err, "")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read workbook")
	}
	return c.JSON(http.StatusOK, result)
}
