package services

import (
	"fmt"
	"html"
	"slices"
	"strings"
	"time"

	"caseboard/models"
	"caseboard/store"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// DefaultAuthor is recorded when a write does not name its author
const DefaultAuthor = "User"

// NoteService appends notes to cases. Notes cannot be edited or removed.
type NoteService struct {
	store  *store.Store
	policy *bluemonday.Policy
	logger *zap.Logger
	now    func() time.Time
}

// NewNoteService creates a note service
func NewNoteService(s *store.Store, logger *zap.Logger) *NoteService {
	return &NoteService{
		store:  s,
		policy: bluemonday.StrictPolicy(),
		logger: logger,
		now:    time.Now,
	}
}

// ForCase returns the notes of a case, oldest first
func (s *NoteService) ForCase(caseID string) ([]models.Note, error) {
	if _, ok := s.store.Cases.Find(caseID); !ok {
		return nil, fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	return s.store.Notes.Where(func(n models.Note) bool {
		return n.CaseID == caseID
	}), nil
}

// Add appends a note to a case. Markup is stripped from content; the
// remaining text is stored as typed.
func (s *NoteService) Add(caseID, content, author string) (models.Note, error) {
	if _, ok := s.store.Cases.Find(caseID); !ok {
		return models.Note{}, fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}

	// Sanitize escapes the text it keeps; notes are stored as plain text
	content = strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(strings.TrimSpace(content))))
	if content == "" {
		return models.Note{}, ErrEmptyNote
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultAuthor
	}

	note := s.store.Notes.Insert(models.Note{
		CaseID:    caseID,
		Content:   content,
		CreatedAt: s.now().UTC().Truncate(time.Second),
		CreatedBy: author,
	})
	s.logger.Info("note added", zap.String("note_id", note.ID), zap.String("case_id", caseID))
	return note, nil
}

// Recent returns up to limit notes across all cases, newest first
func (s *NoteService) Recent(limit int) []models.Note {
	notes := s.store.Notes.List()
	// Insertion order is creation order
	slices.Reverse(notes)
	if limit >= 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}
