package store

import (
	"caseboard/models"
)

// Store holds the record collections of the application. Build one with New
// at start-up and hand it to whoever needs it.
type Store struct {
	Clients   *Collection[models.Client]
	Cases     *Collection[models.Case]
	Notes     *Collection[models.Note]
	Documents *Collection[models.Document]
}

// Stats is a point-in-time count of records per collection
type Stats struct {
	Clients   int `json:"clients"`
	Cases     int `json:"cases"`
	Notes     int `json:"notes"`
	Documents int `json:"documents"`
}

type options struct {
	newIDs func() IDGenerator
}

// Option configures a Store
type Option func(*options)

// WithIDGenerator sets the id generator factory. It is called once per collection.
func WithIDGenerator(newIDs func() IDGenerator) Option {
	return func(o *options) {
		if newIDs != nil {
			o.newIDs = newIDs
		}
	}
}

// New creates an empty store. Ids default to random UUIDs.
func New(opts ...Option) *Store {
	o := options{
		newIDs: func() IDGenerator { return UUIDs{} },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		Clients:   newCollection[models.Client](o.newIDs()),
		Cases:     newCollection[models.Case](o.newIDs()),
		Notes:     newCollection[models.Note](o.newIDs()),
		Documents: newCollection[models.Document](o.newIDs()),
	}
}

// Stats counts the records in every collection
func (s *Store) Stats() Stats {
	return Stats{
		Clients:   s.Clients.Len(),
		Cases:     s.Cases.Len(),
		Notes:     s.Notes.Len(),
		Documents: s.Documents.Len(),
	}
}
