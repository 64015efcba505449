package services

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"caseboard/models"
	"caseboard/store"

	"go.uber.org/zap"
)

const (
	// UntitledDocument names uploads that carry neither a name nor a file
	UntitledDocument = "Untitled Document"
	// PlaceholderSize is the display size of uploads without a file
	PlaceholderSize = "0.5 MB"
)

// UploadInput is the document upload form
type UploadInput struct {
	Name       string
	Category   string
	CaseID     string
	ClientID   string
	UploadedBy string
	File       *FileInput // nil when only a name was entered
}

// DownloadResult is the file handed back on download
type DownloadResult struct {
	Name        string
	ContentType string
	Content     []byte
	// Simulated is true when the document has no stored payload and the
	// content was generated from its content type
	Simulated bool
}

// DocumentService implements the document library: search, upload, download, delete
type DocumentService struct {
	store         *store.Store
	latency       Latency
	maxUploadSize int64
	logger        *zap.Logger
	now           func() time.Time
}

// NewDocumentService creates a document service. Uploads wait for latency
// and are limited to maxUploadSize bytes (0 means unlimited).
func NewDocumentService(s *store.Store, latency Latency, maxUploadSize int64, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		store:         s,
		latency:       latency,
		maxUploadSize: maxUploadSize,
		logger:        logger,
		now:           time.Now,
	}
}

// MaxUploadSize returns the upload limit in bytes
func (s *DocumentService) MaxUploadSize() int64 {
	return s.maxUploadSize
}

// Search returns documents whose name, case name or client name contains
// term. An empty category or "All Categories" matches every category.
func (s *DocumentService) Search(term, category string) []models.Document {
	docs := s.store.Documents.Filter(term)
	if category == "" || category == models.DocumentCategoryAll {
		return docs
	}

	filtered := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if d.Category == category {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// Get returns a document by id
func (s *DocumentService) Get(id string) (models.Document, error) {
	d, ok := s.store.Documents.Find(id)
	if !ok {
		return models.Document{}, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return d, nil
}

// Upload stores a new document after the upload delay
func (s *DocumentService) Upload(ctx context.Context, in UploadInput) (models.Document, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.File == nil && in.Name == "" {
		return models.Document{}, ErrNoFile
	}
	if in.File != nil && s.maxUploadSize > 0 && in.File.Size > s.maxUploadSize {
		return models.Document{}, fmt.Errorf("%w of %s", ErrFileTooLarge, FormatSize(s.maxUploadSize))
	}

	if in.Category == "" {
		in.Category = models.DocumentCategoryPleadings
	}
	if err := ValidateDocumentCategory(in.Category); err != nil {
		return models.Document{}, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		return models.Document{}, err
	}

	now := s.now().UTC()
	doc := models.Document{
		Name:         in.Name,
		Type:         models.ContentTypeBinary,
		Size:         PlaceholderSize,
		Category:     in.Category,
		UploadedBy:   strings.TrimSpace(in.UploadedBy),
		UploadedAt:   now,
		LastModified: now,
	}
	if doc.UploadedBy == "" {
		doc.UploadedBy = DefaultAuthor
	}
	if in.File != nil {
		if doc.Name == "" {
			doc.Name = in.File.Name
		}
		doc.Type = DetectContentType(in.File.Name, in.File.ContentType)
		doc.Size = FormatSize(in.File.Size)
		doc.Payload = bytes.Clone(in.File.Content)
		if doc.Payload == nil {
			doc.Payload = []byte{}
		}
	}
	if doc.Name == "" {
		doc.Name = UntitledDocument
	}

	// References that resolve to nothing are dropped
	if in.CaseID != "" {
		if name, ok := s.resolveCaseName(in.CaseID); ok {
			doc.CaseID = stringPtr(in.CaseID)
			doc.CaseName = stringPtr(name)
		}
	}
	if in.ClientID != "" {
		if name, ok := s.resolveClientName(in.ClientID); ok {
			doc.ClientID = stringPtr(in.ClientID)
			doc.ClientName = stringPtr(name)
		}
	}

	created := s.store.Documents.Insert(doc)
	s.logger.Info("document uploaded",
		zap.String("document_id", created.ID),
		zap.String("name", created.Name),
		zap.String("type", created.Type),
		zap.Bool("has_payload", created.HasPayload()))
	return created, nil
}

// Delete removes a document
func (s *DocumentService) Delete(id string) error {
	if !s.store.Documents.Delete(id) {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	s.logger.Info("document deleted", zap.String("document_id", id))
	return nil
}

// Download returns the stored file, or placeholder content when the document
// was never uploaded with a payload
func (s *DocumentService) Download(id string) (*DownloadResult, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if doc.HasPayload() {
		return &DownloadResult{
			Name:        doc.Name,
			ContentType: doc.Type,
			Content:     bytes.Clone(doc.Payload),
		}, nil
	}

	contentType, content := PlaceholderContent(doc)
	return &DownloadResult{
		Name:        doc.Name,
		ContentType: contentType,
		Content:     content,
		Simulated:   true,
	}, nil
}

// PlaceholderContent fabricates a stand-in file for doc based on its content type
func PlaceholderContent(doc models.Document) (string, []byte) {
	switch {
	case strings.Contains(doc.Type, "pdf"):
		return models.ContentTypePDF, []byte(fmt.Sprintf(
			"%%PDF-1.5\n%% This is a sample PDF file for %s\n%% In a real application, this would be an actual PDF file content", doc.Name))
	case strings.Contains(doc.Type, "word"):
		return models.ContentTypeDOCX, []byte(fmt.Sprintf(
			"This is a sample Word document for %s.\nIn a real application, this would be an actual Word file.", doc.Name))
	case strings.Contains(doc.Type, "image"):
		return models.ContentTypeSVG, []byte(fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200">
  <rect width="200" height="200" fill="#f0f0f0" />
  <text x="40" y="100" font-family="sans-serif" font-size="14" fill="#333">%s</text>
</svg>`, html.EscapeString(doc.Name)))
	default:
		return models.ContentTypeText, []byte(fmt.Sprintf(
			"This is a sample document for %s.\nIn a real application, this would be the actual file content.", doc.Name))
	}
}

// resolveCaseName looks the case title up, falling back to the name carried
// by another document attached to the same case
func (s *DocumentService) resolveCaseName(caseID string) (string, bool) {
	if c, ok := s.store.Cases.Find(caseID); ok {
		return c.Title, true
	}
	docs := s.store.Documents.Where(func(d models.Document) bool {
		return d.CaseID != nil && *d.CaseID == caseID && d.CaseName != nil
	})
	if len(docs) == 0 {
		return "", false
	}
	return *docs[0].CaseName, true
}

// resolveClientName mirrors resolveCaseName for clients
func (s *DocumentService) resolveClientName(clientID string) (string, bool) {
	if c, ok := s.store.Clients.Find(clientID); ok {
		return c.Name, true
	}
	docs := s.store.Documents.Where(func(d models.Document) bool {
		return d.ClientID != nil && *d.ClientID == clientID && d.ClientName != nil
	})
	if len(docs) == 0 {
		return "", false
	}
	return *docs[0].ClientName, true
}

func stringPtr(s string) *string {
	return &s
}
