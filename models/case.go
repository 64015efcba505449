package models

// Case status constants
const (
	CaseStatusActive  = "Active"
	CaseStatusPending = "Pending"
	CaseStatusClosed  = "Closed"
)

// Case represents a legal matter handled for a client
type Case struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	CaseNumber string `json:"case_number" yaml:"case_number"`
	// Client holds the client's display name, not a Client.ID
	Client     string `json:"client" yaml:"client"`
	Status     string `json:"status" yaml:"status"`
	Type       string `json:"type" yaml:"type"` // free-form category: Civil, Probate, Commercial...
	DateOpened string `json:"date_opened" yaml:"date_opened"`

	// Optional court details
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Judge       string `json:"judge,omitempty" yaml:"judge,omitempty"`
	Court       string `json:"court,omitempty" yaml:"court,omitempty"`
	FilingDate  string `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`
	HearingDate string `json:"hearing_date,omitempty" yaml:"hearing_date,omitempty"`
	Attorney    string `json:"attorney,omitempty" yaml:"attorney,omitempty"`
}

// GetID returns the case id
func (c Case) GetID() string {
	return c.ID
}

// WithID returns a copy of the case carrying id
func (c Case) WithID(id string) Case {
	c.ID = id
	return c
}

// Clone returns a copy of the case
func (c Case) Clone() Case {
	return c
}

// SearchFields returns the values matched by free-text search
func (c Case) SearchFields() []string {
	return []string{c.Title, c.CaseNumber, c.Client}
}

// IsActive checks if the case is active
func (c *Case) IsActive() bool {
	return c.Status == CaseStatusActive
}

// IsPending checks if the case is pending
func (c *Case) IsPending() bool {
	return c.Status == CaseStatusPending
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// CaseStatuses lists the valid statuses in display order
func CaseStatuses() []string {
	return []string{CaseStatusActive, CaseStatusPending, CaseStatusClosed}
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	for _, s := range CaseStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
