package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"caseboard/models"
)

// FileInput is an uploaded file read into memory
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// ReadUpload reads a multipart file, rejecting files over maxSize bytes
func ReadUpload(fileHeader *multipart.FileHeader, maxSize int64) (*FileInput, error) {
	// Check file size
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, fmt.Errorf("%w of %s", ErrFileTooLarge, FormatSize(maxSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if maxSize > 0 {
		// One extra byte tells an oversized body apart from an exact fit
		reader = io.LimitReader(file, maxSize+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if maxSize > 0 && int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w of %s", ErrFileTooLarge, FormatSize(maxSize))
	}

	return &FileInput{
		Name:        filepath.Base(fileHeader.Filename),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

// DetectContentType returns the declared content type, else one derived from
// the file extension. A declared application/octet-stream counts as
// undeclared since generic clients send it for every file.
func DetectContentType(fileName, declared string) string {
	if declared != "" && declared != models.ContentTypeBinary {
		return declared
	}

	name := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return models.ContentTypePDF
	case strings.HasSuffix(name, ".docx"):
		return models.ContentTypeDOCX
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return models.ContentTypeJPEG
	default:
		return models.ContentTypeBinary
	}
}

// FormatSize renders a byte count in megabytes with one decimal, e.g. "1.2 MB"
func FormatSize(size int64) string {
	return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
}
