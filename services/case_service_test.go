package services

import (
	"context"
	"errors"
	"testing"

	"caseboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCaseServiceList(t *testing.T) {
	s := setupTestStore(t)
	svc := NewCaseService(s, Latency{}, zap.NewNop())

	assert.Len(t, svc.List("", ""), 3)
	assert.Len(t, svc.List("", models.CaseStatusActive), 2)
	assert.Len(t, svc.List("cv-2023", ""), 2)

	pending := svc.List("cv-2023", models.CaseStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "3", pending[0].ID)

	assert.Empty(t, svc.List("", models.CaseStatusClosed))
}

func TestCaseServiceCreate(t *testing.T) {
	s := setupTestStore(t)
	svc := NewCaseService(s, Latency{}, zap.NewNop())
	svc.now = fixedClock("2024-05-10T08:00:00Z")

	created, err := svc.Create(context.Background(), models.Case{
		Title:      " Doe v. Roe ",
		CaseNumber: "CV-2024-0001",
		Client:     "John Smith",
		Type:       "Civil",
	})
	require.NoError(t, err)
	assert.Equal(t, "Doe v. Roe", created.Title)
	assert.Equal(t, models.CaseStatusActive, created.Status)
	assert.Equal(t, "2024-05-10", created.DateOpened)

	_, err = svc.Create(context.Background(), models.Case{Title: "Missing fields"})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "case_number")
	assert.Contains(t, verrs, "client")
	assert.Equal(t, 4, s.Cases.Len())
}

func TestCaseServiceUpdate(t *testing.T) {
	s := setupTestStore(t)
	svc := NewCaseService(s, Latency{}, zap.NewNop())

	c, err := svc.Get("3")
	require.NoError(t, err)
	c.Status = models.CaseStatusClosed
	c.Judge = "Hon. New Judge"

	updated, err := svc.Update(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, updated.IsClosed())

	got, _ := svc.Get("3")
	assert.Equal(t, "Hon. New Judge", got.Judge)

	c.Status = "Archived"
	_, err = svc.Update(context.Background(), c)
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), models.Case{ID: "404"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaseServiceDelete(t *testing.T) {
	s := setupTestStore(t)
	svc := NewCaseService(s, Latency{}, zap.NewNop())

	before := svc.List("", "")
	assert.ErrorIs(t, svc.Delete("404"), ErrNotFound)
	assert.Equal(t, before, svc.List("", ""))

	require.NoError(t, svc.Delete("1"))
	assert.Len(t, svc.List("", ""), 2)
	// Notes of the case stay
	assert.Equal(t, 3, s.Notes.Len())
}
