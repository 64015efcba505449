package handlers

import (
	"github.com/labstack/echo/v4"
)

// Register mounts the API. Middleware in writes applies to every route but
// is expected to let reads through.
func (h *Handler) Register(e *echo.Echo, writes ...echo.MiddlewareFunc) {
	e.GET("/health", HealthHandler)

	api := e.Group("/api", writes...)

	// Dashboard
	api.GET("/dashboard", h.DashboardHandler)

	// Clients
	api.GET("/clients", h.GetClientsHandler)
	api.POST("/clients", h.CreateClientHandler)
	api.GET("/clients/export.xlsx", h.ExportClientsHandler)
	api.POST("/clients/import", h.ImportClientsHandler)
	api.GET("/clients/:id", h.GetClientHandler)
	api.PUT("/clients/:id", h.UpdateClientHandler)
	api.DELETE("/clients/:id", h.DeleteClientHandler)
	api.GET("/clients/:id/cases", h.GetClientCasesHandler)

	// Cases
	api.GET("/cases", h.GetCasesHandler)
	api.POST("/cases", h.CreateCaseHandler)
	api.GET("/cases/export.xlsx", h.ExportCasesHandler)
	api.GET("/cases/:id", h.GetCaseHandler)
	api.PUT("/cases/:id", h.UpdateCaseHandler)
	api.DELETE("/cases/:id", h.DeleteCaseHandler)

	// Case notes (append-only)
	api.GET("/cases/:id/notes", h.GetCaseNotesHandler)
	api.POST("/cases/:id/notes", h.CreateCaseNoteHandler)

	// Documents
	api.GET("/documents", h.GetDocumentsHandler)
	api.POST("/documents", h.UploadDocumentHandler)
	api.GET("/documents/categories", h.GetDocumentCategoriesHandler)
	api.GET("/documents/:id", h.GetDocumentHandler)
	api.GET("/documents/:id/download", h.DownloadDocumentHandler)
	api.DELETE("/documents/:id", h.DeleteDocumentHandler)
}
