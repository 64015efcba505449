package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"caseboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDocumentService(t *testing.T) (*DocumentService, func() int) {
	t.Helper()
	s := setupTestStore(t)
	svc := NewDocumentService(s, Latency{}, 1024, zap.NewNop())
	svc.now = fixedClock("2024-06-01T10:00:00Z")
	return svc, s.Documents.Len
}

func TestDocumentServiceSearch(t *testing.T) {
	svc, _ := setupDocumentService(t)

	assert.Len(t, svc.Search("", ""), 5)
	assert.Len(t, svc.Search("", models.DocumentCategoryAll), 5)
	assert.Len(t, svc.Search("", models.DocumentCategoryEvidence), 2)
	assert.Len(t, svc.Search("smith", models.DocumentCategoryPleadings), 1)
	assert.Empty(t, svc.Search("williams", models.DocumentCategoryContracts))
}

func TestDocumentServiceUpload(t *testing.T) {
	t.Run("File with declared type", func(t *testing.T) {
		svc, count := setupDocumentService(t)

		doc, err := svc.Upload(context.Background(), UploadInput{
			Category: models.DocumentCategoryCorrespondence,
			CaseID:   "2",
			ClientID: "2",
			File: &FileInput{
				Name:        "letter.txt",
				ContentType: "text/plain",
				Size:        11,
				Content:     []byte("hello world"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "6", doc.ID)
		assert.Equal(t, "letter.txt", doc.Name)
		assert.Equal(t, "text/plain", doc.Type)
		assert.Equal(t, "0.0 MB", doc.Size)
		assert.Equal(t, DefaultAuthor, doc.UploadedBy)
		require.NotNil(t, doc.CaseName)
		assert.Equal(t, "Estate of Williams", *doc.CaseName)
		require.NotNil(t, doc.ClientName)
		assert.Equal(t, "Jane Williams", *doc.ClientName)
		assert.Equal(t, 6, count())
	})

	t.Run("Type from extension", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		doc, err := svc.Upload(context.Background(), UploadInput{
			Name: "Brief",
			File: &FileInput{Name: "brief.PDF", Size: 4, Content: []byte("%PDF")},
		})
		require.NoError(t, err)
		assert.Equal(t, "Brief", doc.Name)
		assert.Equal(t, models.ContentTypePDF, doc.Type)
		assert.Equal(t, models.DocumentCategoryPleadings, doc.Category)
	})

	t.Run("Name only", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		doc, err := svc.Upload(context.Background(), UploadInput{Name: "Retainer", UploadedBy: "Sarah Williams"})
		require.NoError(t, err)
		assert.Equal(t, models.ContentTypeBinary, doc.Type)
		assert.Equal(t, PlaceholderSize, doc.Size)
		assert.Equal(t, "Sarah Williams", doc.UploadedBy)
		assert.False(t, doc.HasPayload())
	})

	t.Run("Unresolved references are dropped", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		doc, err := svc.Upload(context.Background(), UploadInput{Name: "Orphan", CaseID: "77", ClientID: "88"})
		require.NoError(t, err)
		assert.Nil(t, doc.CaseID)
		assert.Nil(t, doc.ClientID)
	})

	t.Run("Reference resolved from another document", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		require.True(t, svc.store.Cases.Delete("3"))

		doc, err := svc.Upload(context.Background(), UploadInput{Name: "Amendment", CaseID: "3"})
		require.NoError(t, err)
		require.NotNil(t, doc.CaseName)
		assert.Equal(t, "Parker Industries Contract Dispute", *doc.CaseName)
	})

	t.Run("Nothing to upload", func(t *testing.T) {
		svc, count := setupDocumentService(t)
		_, err := svc.Upload(context.Background(), UploadInput{Name: "  "})
		assert.ErrorIs(t, err, ErrNoFile)
		assert.Equal(t, 5, count())
	})

	t.Run("Too large", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		_, err := svc.Upload(context.Background(), UploadInput{
			File: &FileInput{Name: "big.bin", Size: 2048, Content: make([]byte, 2048)},
		})
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("Unknown category", func(t *testing.T) {
		svc, _ := setupDocumentService(t)
		_, err := svc.Upload(context.Background(), UploadInput{Name: "x", Category: "Memes"})
		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "category")
	})
}

func TestDocumentServiceDownload(t *testing.T) {
	svc, _ := setupDocumentService(t)

	t.Run("Stored payload", func(t *testing.T) {
		doc, err := svc.Upload(context.Background(), UploadInput{
			File: &FileInput{Name: "a.txt", ContentType: "text/plain", Size: 3, Content: []byte("abc")},
		})
		require.NoError(t, err)

		res, err := svc.Download(doc.ID)
		require.NoError(t, err)
		assert.False(t, res.Simulated)
		assert.Equal(t, "a.txt", res.Name)
		assert.Equal(t, []byte("abc"), res.Content)
	})

	t.Run("Placeholder by type", func(t *testing.T) {
		tests := []struct {
			id          string
			contentType string
			prefix      string
		}{
			{"1", models.ContentTypePDF, "%PDF-1.5"},
			{"3", models.ContentTypeSVG, "<svg"},
			{"5", models.ContentTypeDOCX, "This is a sample Word document for Contract_Draft.docx."},
		}
		for _, tt := range tests {
			res, err := svc.Download(tt.id)
			require.NoError(t, err)
			assert.True(t, res.Simulated)
			assert.Equal(t, tt.contentType, res.ContentType)
			assert.True(t, strings.HasPrefix(string(res.Content), tt.prefix), string(res.Content))
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := svc.Download("404")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlaceholderContentPlainText(t *testing.T) {
	contentType, content := PlaceholderContent(models.Document{Name: "notes.bin", Type: models.ContentTypeBinary})
	assert.Equal(t, models.ContentTypeText, contentType)
	assert.Contains(t, string(content), "This is a sample document for notes.bin.")
}

func TestDocumentServiceDelete(t *testing.T) {
	svc, count := setupDocumentService(t)

	require.NoError(t, svc.Delete("2"))
	assert.Equal(t, 4, count())
	assert.ErrorIs(t, svc.Delete("2"), ErrNotFound)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1.2 MB", FormatSize(1258291))
	assert.Equal(t, "0.0 MB", FormatSize(0))
	assert.Equal(t, "10.0 MB", FormatSize(10*1024*1024))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "text/csv", DetectContentType("a.csv", "text/csv"))
	assert.Equal(t, models.ContentTypeDOCX, DetectContentType("Draft.DOCX", ""))
	assert.Equal(t, models.ContentTypeJPEG, DetectContentType("photo.jpeg", ""))
	assert.Equal(t, models.ContentTypeBinary, DetectContentType("archive.zip", ""))
	assert.Equal(t, models.ContentTypePDF, DetectContentType("brief.pdf", "application/octet-stream"))
}
