package models

import "time"

// Document category constants
const (
	DocumentCategoryPleadings       = "Pleadings"
	DocumentCategoryEvidence        = "Evidence"
	DocumentCategoryContracts       = "Contracts"
	DocumentCategoryEstateDocuments = "Estate Documents"
	DocumentCategoryCorrespondence  = "Correspondence"
	DocumentCategoryNotes           = "Notes"
	DocumentCategoryFinancials      = "Financials"
	DocumentCategoryOther           = "Other"

	// DocumentCategoryAll is the filter value matching every category
	DocumentCategoryAll = "All Categories"
)

// Common content types
const (
	ContentTypePDF    = "application/pdf"
	ContentTypeDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeJPEG   = "image/jpeg"
	ContentTypeSVG    = "image/svg+xml"
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// Document represents an uploaded file and its metadata
type Document struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"` // content type
	Size string `json:"size" yaml:"size"` // display size, e.g. "1.2 MB"

	// Denormalized references, never checked against the case/client records
	CaseID     *string `json:"case_id,omitempty" yaml:"case_id,omitempty"`
	CaseName   *string `json:"case_name,omitempty" yaml:"case_name,omitempty"`
	ClientID   *string `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientName *string `json:"client_name,omitempty" yaml:"client_name,omitempty"`

	Category     string    `json:"category" yaml:"category"`
	UploadedBy   string    `json:"uploaded_by" yaml:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at" yaml:"uploaded_at"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`

	// Payload is the raw file content, absent for fixture documents
	Payload []byte `json:"-" yaml:"-"`
}

// GetID returns the document id
func (d Document) GetID() string {
	return d.ID
}

// WithID returns a copy of the document carrying id
func (d Document) WithID(id string) Document {
	d.ID = id
	return d
}

// Clone returns a deep copy of the document. The optional references and
// the payload are not shared with d.
func (d Document) Clone() Document {
	d.CaseID = cloneString(d.CaseID)
	d.CaseName = cloneString(d.CaseName)
	d.ClientID = cloneString(d.ClientID)
	d.ClientName = cloneString(d.ClientName)
	if d.Payload != nil {
		d.Payload = append([]byte{}, d.Payload...)
	}
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// SearchFields returns the values matched by free-text search
func (d Document) SearchFields() []string {
	fields := []string{d.Name}
	if d.CaseName != nil {
		fields = append(fields, *d.CaseName)
	}
	if d.ClientName != nil {
		fields = append(fields, *d.ClientName)
	}
	return fields
}

// HasPayload reports whether the original file content is stored
func (d *Document) HasPayload() bool {
	return d.Payload != nil
}

// GetDownloadURL returns the download URL for this document
func (d *Document) GetDownloadURL() string {
	return "/api/documents/" + d.ID + "/download"
}

// DocumentCategories lists the valid categories in display order
func DocumentCategories() []string {
	return []string{
		DocumentCategoryPleadings,
		DocumentCategoryEvidence,
		DocumentCategoryContracts,
		DocumentCategoryEstateDocuments,
		DocumentCategoryCorrespondence,
		DocumentCategoryNotes,
		DocumentCategoryFinancials,
		DocumentCategoryOther,
	}
}

// IsValidDocumentCategory checks if the category is valid
func IsValidDocumentCategory(category string) bool {
	for _, c := range DocumentCategories() {
		if c == category {
			return true
		}
	}
	return false
}
