package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"caseboard/models"
	"caseboard/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportClientsHandler(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/api/clients/export.xlsx?search=williams", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.XLSXContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "clients.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(services.SheetClients)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Williams", rows[1][1])
}

func TestExportCasesHandler(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/api/cases/export.xlsx?status=Active", "")
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(services.SheetCases)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestImportClientsHandler(t *testing.T) {
	e, s := setupServer(t)

	workbook, err := services.ExportClientsXLSX([]models.Client{
		{Name: "Ann Lee", Email: "ann@example.com", Phone: "555-0100"},
		{Name: "No Email", Phone: "555-0101"},
	})
	require.NoError(t, err)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "clients.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/clients/import", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[services.ImportResult](t, rec)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 3")

	assert.Equal(t, 4, s.Clients.Len())
	assert.Len(t, s.Clients.Filter("ann lee"), 1)

	t.Run("Missing file", func(t *testing.T) {
		rec := doMultipart(t, e, "/api/clients/import", map[string]string{"x": "y"}, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
