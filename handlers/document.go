package handlers

import (
	"errors"
	"mime"
	"net/http"

	"caseboard/models"
	"caseboard/services"

	"github.com/labstack/echo/v4"
)

// documentResponse adds the download link to document metadata
type documentResponse struct {
	models.Document
	DownloadURL string `json:"download_url"`
}

func toDocumentResponse(d models.Document) documentResponse {
	return documentResponse{Document: d, DownloadURL: d.GetDownloadURL()}
}

// GetDocumentsHandler returns documents matching ?search= and ?category=
func (h *Handler) GetDocumentsHandler(c echo.Context) error {
	category := c.QueryParam("category")
	if category != "" && category != models.DocumentCategoryAll && !models.IsValidDocumentCategory(category) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category filter")
	}

	docs := h.documents.Search(c.QueryParam("search"), category)
	out := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return c.JSON(http.StatusOK, listResponse{Data: out, Total: len(out)})
}

// GetDocumentCategoriesHandler returns the category filter options
func (h *Handler) GetDocumentCategoriesHandler(c echo.Context) error {
	categories := append([]string{models.DocumentCategoryAll}, models.DocumentCategories()...)
	return c.JSON(http.StatusOK, categories)
}

// GetDocumentHandler returns document metadata
func (h *Handler) GetDocumentHandler(c echo.Context) error {
	doc, err := h.documents.Get(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Document not found")
	}
	return c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// UploadDocumentHandler stores a document from a multipart form. The file
// part is optional when a name is given.
func (h *Handler) UploadDocumentHandler(c echo.Context) error {
	in := services.UploadInput{
		Name:       c.FormValue("name"),
		Category:   c.FormValue("category"),
		CaseID:     c.FormValue("case_id"),
		ClientID:   c.FormValue("client_id"),
		UploadedBy: c.FormValue("uploaded_by"),
	}

	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		file, err := services.ReadUpload(fileHeader, h.documents.MaxUploadSize())
		if err != nil {
			return h.fail(c, err, "Document not found")
		}
		in.File = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// name-only upload
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid upload form")
	}

	doc, err := h.documents.Upload(c.Request().Context(), in)
	if errors.Is(err, services.ErrNoFile) {
		err = services.ValidationErrors{"file": "Please select a file or enter a document name"}
	}
	if err != nil {
		return h.fail(c, err, "Document not found")
	}
	return c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// DownloadDocumentHandler sends the document as an attachment. Documents
// without stored content get generated placeholder content and the
// X-Simulated-Download header.
func (h *Handler) DownloadDocumentHandler(c echo.Context) error {
	res, err := h.documents.Download(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Document not found")
	}

	if res.Simulated {
		c.Response().Header().Set("X-Simulated-Download", "true")
	}
	return sendAttachment(c, res.Name, res.ContentType, res.Content)
}

// DeleteDocumentHandler removes a document once confirmed
func (h *Handler) DeleteDocumentHandler(c echo.Context) error {
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.documents.Delete(c.Param("id")); err != nil {
		return h.fail(c, err, "Document not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func sendAttachment(c echo.Context, name, contentType string, content []byte) error {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": name})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, contentType, content)
}
