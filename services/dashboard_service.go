package services

import (
	"context"
	"sort"
	"time"

	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/model"
)

const activityLimit = 10

// DashboardStats summarises the catalogue.
type DashboardStats struct {
	TotalResearch     int     `json:"total_research"`
	TotalInstitutions int     `json:"total_institutions"`
	FreeResearch      int     `json:"free_research"`
	PaidResearch      int     `json:"paid_research"`
	AverageRating     float64 `json:"average_rating"`
	TotalDownloads    int     `json:"total_downloads"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// DashboardOverview is the combined dashboard payload.
type DashboardOverview struct {
	Stats           DashboardStats      `json:"stats"`
	RecentActivity  []ActivityEntry     `json:"recent_activity"`
	TopInstitutions []model.Institution `json:"top_institutions"`
}

// DashboardService computes dashboard aggregates from the live stores.
type DashboardService struct {
	research     database.ResearchStore
	institutions database.InstitutionStore
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(research database.ResearchStore, institutions database.InstitutionStore) *DashboardService {
	return &DashboardService{research: research, institutions: institutions}
}

// Stats returns catalogue-wide counters.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	recs, err := s.research.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	insts, err := s.institutions.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalResearch:     len(recs),
		TotalInstitutions: len(insts),
	}
	ratingSum := 0
	for _, rec := range recs {
		if rec.Price == 0 {
			stats.FreeResearch++
		} else {
			stats.PaidResearch++
		}
		stats.TotalDownloads += rec.Downloads
		ratingSum += rec.Rating
	}
	if len(recs) > 0 {
		stats.AverageRating = float64(ratingSum) / float64(len(recs))
	}
	return stats, nil
}

// Activity returns the most recently updated research entries, newest
// first.
func (s *DashboardService) Activity(ctx context.Context) ([]ActivityEntry, error) {
	recs, err := s.research.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})
	if len(recs) > activityLimit {
		recs = recs[:activityLimit]
	}

	entries := make([]ActivityEntry, 0, len(recs))
	for _, rec := range recs {
		entryType := "update"
		if rec.UpdatedAt.Equal(rec.CreatedAt) {
			entryType = "upload"
		}
		entries = append(entries, ActivityEntry{
			ID:    rec.ID,
			Type:  entryType,
			Title: rec.Title,
			Date:  rec.UpdatedAt.Format(time.RFC3339),
		})
	}
	return entries, nil
}

// Overview returns stats, recent activity, and the institutions with the
// most uploads.
func (s *DashboardService) Overview(ctx context.Context) (DashboardOverview, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	activity, err := s.Activity(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	insts, err := s.institutions.List(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}

	sort.SliceStable(insts, func(i, j int) bool {
		return insts[i].TotalUploads > insts[j].TotalUploads
	})
	if len(insts) > 3 {
		insts = insts[:3]
	}

	return DashboardOverview{
		Stats:           stats,
		RecentActivity:  activity,
		TopInstitutions: insts,
	}, nil
}
