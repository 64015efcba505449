package models

import "time"

// Note is a free-text entry appended to a case
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	CaseID    string    `json:"case_id" yaml:"case_id"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	CreatedBy string    `json:"created_by" yaml:"created_by"`
}

// GetID returns the note id
func (n Note) GetID() string {
	return n.ID
}

// WithID returns a copy of the note carrying id
func (n Note) WithID(id string) Note {
	n.ID = id
	return n
}

// Clone returns a copy of the note
func (n Note) Clone() Note {
	return n
}

// SearchFields returns the values matched by free-text search
func (n Note) SearchFields() []string {
	return []string{n.Content}
}
