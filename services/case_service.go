package services

import (
	"context"
	"fmt"
	"time"

	"caseboard/models"
	"caseboard/store"

	"go.uber.org/zap"
)

// CaseService implements the case screens: list, detail, create, edit, delete
type CaseService struct {
	store   *store.Store
	latency Latency
	logger  *zap.Logger
	now     func() time.Time
}

// NewCaseService creates a case service. Writes wait for latency first.
func NewCaseService(s *store.Store, latency Latency, logger *zap.Logger) *CaseService {
	return &CaseService{
		store:   s,
		latency: latency,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the cases matching search by title, case number or client.
// A non-empty status narrows the result to that status.
func (s *CaseService) List(search, status string) []models.Case {
	cases := s.store.Cases.Filter(search)
	if status == "" {
		return cases
	}

	filtered := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Get returns a case by id
func (s *CaseService) Get(id string) (models.Case, error) {
	c, ok := s.store.Cases.Find(id)
	if !ok {
		return models.Case{}, fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// Create validates and stores a new case. Status defaults to Active and the
// opening date to today.
func (s *CaseService) Create(ctx context.Context, in models.Case) (models.Case, error) {
	in = NormalizeCase(in)
	if in.Status == "" {
		in.Status = models.CaseStatusActive
	}
	if in.DateOpened == "" {
		in.DateOpened = FormatDate(s.now())
	}
	if err := ValidateCase(in); err != nil {
		return models.Case{}, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		return models.Case{}, err
	}

	created := s.store.Cases.Insert(in)
	s.logger.Info("case created",
		zap.String("case_id", created.ID),
		zap.String("case_number", created.CaseNumber))
	return created, nil
}

// Update validates and replaces an existing case
func (s *CaseService) Update(ctx context.Context, in models.Case) (models.Case, error) {
	current, err := s.Get(in.ID)
	if err != nil {
		return models.Case{}, err
	}

	in = NormalizeCase(in)
	if in.Status == "" {
		in.Status = current.Status
	}
	if in.DateOpened == "" {
		in.DateOpened = current.DateOpened
	}
	if err := ValidateCase(in); err != nil {
		return models.Case{}, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		return models.Case{}, err
	}

	if !s.store.Cases.Update(in) {
		return models.Case{}, fmt.Errorf("case %s: %w", in.ID, ErrNotFound)
	}
	s.logger.Info("case updated", zap.String("case_id", in.ID), zap.String("status", in.Status))
	return in, nil
}

// Delete removes a case. Its notes and documents are kept.
func (s *CaseService) Delete(id string) error {
	if !s.store.Cases.Delete(id) {
		return fmt.Errorf("case %s: %w", id, ErrNotFound)
	}
	s.logger.Info("case deleted", zap.String("case_id", id))
	return nil
}
