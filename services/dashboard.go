package services

import (
	"sort"
	"time"

	"caseboard/models"
	"caseboard/store"
)

const (
	recentLimit   = 5
	upcomingLimit = 5
)

// Hearing is an upcoming court date taken from a case
type Hearing struct {
	CaseID     string `json:"case_id"`
	Title      string `json:"title"`
	CaseNumber string `json:"case_number"`
	Court      string `json:"court,omitempty"`
	Date       string `json:"date"`
}

// DashboardSummary is the landing view of the dashboard
type DashboardSummary struct {
	Totals           store.Stats    `json:"totals"`
	CasesByStatus    map[string]int `json:"cases_by_status"`
	RecentCases      []models.Case  `json:"recent_cases"`
	RecentNotes      []models.Note  `json:"recent_notes"`
	UpcomingHearings []Hearing      `json:"upcoming_hearings"`
}

// DashboardService aggregates the store for the dashboard
type DashboardService struct {
	store *store.Store
	notes *NoteService
	now   func() time.Time
}

// NewDashboardService creates a dashboard service
func NewDashboardService(s *store.Store, notes *NoteService) *DashboardService {
	return &DashboardService{store: s, notes: notes, now: time.Now}
}

// Summary counts records and lists recent activity
func (s *DashboardService) Summary() DashboardSummary {
	cases := s.store.Cases.List()

	byStatus := make(map[string]int, len(models.CaseStatuses()))
	for _, status := range models.CaseStatuses() {
		byStatus[status] = 0
	}
	for _, c := range cases {
		byStatus[c.Status]++
	}

	recent := make([]models.Case, 0, recentLimit)
	for i := len(cases) - 1; i >= 0 && len(recent) < recentLimit; i-- {
		recent = append(recent, cases[i])
	}

	return DashboardSummary{
		Totals:           s.store.Stats(),
		CasesByStatus:    byStatus,
		RecentCases:      recent,
		RecentNotes:      s.notes.Recent(recentLimit),
		UpcomingHearings: upcomingHearings(cases, FormatDate(s.now())),
	}
}

// upcomingHearings lists hearings on or after today, soonest first.
// Dates are YYYY-MM-DD so they order as strings.
func upcomingHearings(cases []models.Case, today string) []Hearing {
	hearings := make([]Hearing, 0)
	for _, c := range cases {
		if c.HearingDate == "" || c.HearingDate < today || c.IsClosed() {
			continue
		}
		hearings = append(hearings, Hearing{
			CaseID:     c.ID,
			Title:      c.Title,
			CaseNumber: c.CaseNumber,
			Court:      c.Court,
			Date:       c.HearingDate,
		})
	}

	sort.SliceStable(hearings, func(i, j int) bool {
		return hearings[i].Date < hearings[j].Date
	})
	if len(hearings) > upcomingLimit {
		hearings = hearings[:upcomingLimit]
	}
	return hearings
}
