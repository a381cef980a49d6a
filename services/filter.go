package services

import (
	"strings"

	"github.com/univault/univault-api/model"
)

// ResearchFilters narrows a listed research collection. Zero-valued string
// fields and nil numeric fields impose no restriction. Predicates combine
// with logical AND and are commutative, so evaluation order never changes
// the result set.
type ResearchFilters struct {
	Degree        string
	Course        string
	SubjectCode   string
	InstitutionID string
	MinRating     *int
	MaxPrice      *float64
}

// Match reports whether a record satisfies every supplied predicate.
func (f ResearchFilters) Match(rec model.Research) bool {
	if f.Degree != "" && rec.Degree != f.Degree {
		return false
	}
	if f.SubjectCode != "" && rec.SubjectCode != f.SubjectCode {
		return false
	}
	if f.InstitutionID != "" && rec.InstitutionID != f.InstitutionID {
		return false
	}
	if f.Course != "" && !strings.Contains(strings.ToLower(rec.Course), strings.ToLower(f.Course)) {
		return false
	}
	if f.MinRating != nil && rec.Rating < *f.MinRating {
		return false
	}
	if f.MaxPrice != nil && rec.Price > *f.MaxPrice {
		return false
	}
	return true
}

// ApplyFilters returns the subsequence of records satisfying all supplied
// predicates, preserving input order. It never mutates its input.
func ApplyFilters(records []model.Research, f ResearchFilters) []model.Research {
	out := make([]model.Research, 0, len(records))
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}
