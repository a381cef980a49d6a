package cron

import (
	"context"
	"log"
	"time"
)

// RefreshInstitutionAggregates recomputes total_uploads and average_rating
// for every institution from the current research collection, then drops
// the cached catalogue so the next read sees fresh numbers.
func (m *CronManager) RefreshInstitutionAggregates() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	recs, err := m.research.List(ctx)
	if err != nil {
		log.Printf("[CRON] refresh_institution_aggregates: failed to list research: %v", err)
		return
	}

	uploads := make(map[string]int)
	ratingSums := make(map[string]int)
	for _, rec := range recs {
		if rec.InstitutionID == "" {
			continue
		}
		uploads[rec.InstitutionID]++
		ratingSums[rec.InstitutionID] += rec.Rating
	}

	insts, err := m.institutions.List(ctx)
	if err != nil {
		log.Printf("[CRON] refresh_institution_aggregates: failed to list institutions: %v", err)
		return
	}

	updated := 0
	for _, inst := range insts {
		count := uploads[inst.ID]
		avg := 0.0
		if count > 0 {
			avg = float64(ratingSums[inst.ID]) / float64(count)
		}
		if inst.TotalUploads == count && inst.AverageRating == avg {
			continue
		}
		inst.TotalUploads = count
		inst.AverageRating = avg
		if err := m.institutions.Put(ctx, inst); err != nil {
			log.Printf("[CRON] refresh_institution_aggregates: failed to update %s: %v", inst.ID, err)
			continue
		}
		updated++
	}

	if m.instService != nil && updated > 0 {
		m.instService.InvalidateCache(ctx)
	}
	log.Printf("[CRON] refresh_institution_aggregates: updated %d institutions", updated)
}
