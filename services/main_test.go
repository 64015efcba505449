package services

import (
	"testing"
	"time"

	"caseboard/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.WithIDGenerator(func() store.IDGenerator { return &store.SequenceIDs{} }))
	require.NoError(t, s.Seed())
	return s
}

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
