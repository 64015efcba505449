package services

import (
	"context"
	"fmt"
	"time"

	"caseboard/models"
	"caseboard/store"

	"go.uber.org/zap"
)

// ClientService implements the client screens: list, detail, create, edit, delete
type ClientService struct {
	store   *store.Store
	latency Latency
	logger  *zap.Logger
	now     func() time.Time
}

// NewClientService creates a client service. Writes wait for latency first.
func NewClientService(s *store.Store, latency Latency, logger *zap.Logger) *ClientService {
	return &ClientService{
		store:   s,
		latency: latency,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the clients matching search by name, email or phone
func (s *ClientService) List(search string) []models.Client {
	return s.store.Clients.Filter(search)
}

// Get returns a client by id
func (s *ClientService) Get(id string) (models.Client, error) {
	c, ok := s.store.Clients.Find(id)
	if !ok {
		return models.Client{}, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// Create validates and stores a new client. Type defaults to Individual and
// the added date to today.
func (s *ClientService) Create(ctx context.Context, in models.Client) (models.Client, error) {
	in = NormalizeClient(in)
	if in.Type == "" {
		in.Type = models.ClientTypeIndividual
	}
	if in.DateAdded == "" {
		in.DateAdded = FormatDate(s.now())
	}
	if err := ValidateClient(in); err != nil {
		return models.Client{}, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		return models.Client{}, err
	}

	created := s.store.Clients.Insert(in)
	s.logger.Info("client created", zap.String("client_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Update validates and replaces an existing client
func (s *ClientService) Update(ctx context.Context, in models.Client) (models.Client, error) {
	current, err := s.Get(in.ID)
	if err != nil {
		return models.Client{}, err
	}

	in = NormalizeClient(in)
	if in.Type == "" {
		in.Type = current.Type
	}
	if in.DateAdded == "" {
		in.DateAdded = current.DateAdded
	}
	if err := ValidateClient(in); err != nil {
		return models.Client{}, err
	}

	if err := s.latency.Wait(ctx); err != nil {
		return models.Client{}, err
	}

	// The client may have been deleted while we waited
	if !s.store.Clients.Update(in) {
		return models.Client{}, fmt.Errorf("client %s: %w", in.ID, ErrNotFound)
	}
	s.logger.Info("client updated", zap.String("client_id", in.ID))
	return in, nil
}

// Delete removes a client. Cases naming the client are left untouched.
func (s *ClientService) Delete(id string) error {
	if !s.store.Clients.Delete(id) {
		return fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	s.logger.Info("client deleted", zap.String("client_id", id))
	return nil
}

// Cases returns the cases whose client name equals the client's name
func (s *ClientService) Cases(id string) ([]models.Case, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.store.Cases.Where(func(c models.Case) bool {
		return c.Client == client.Name
	}), nil
}
