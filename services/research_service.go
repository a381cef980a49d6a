package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/model"
)

// ResearchService enforces the domain rules of the research collection:
// required-field validation, rating derivation, ownership checks. It is the
// only component allowed to do so.
type ResearchService struct {
	store database.ResearchStore
}

// NewResearchService creates a research service on top of a record store.
func NewResearchService(store database.ResearchStore) *ResearchService {
	return &ResearchService{store: store}
}

// RatingForGrade is the fixed tier mapping from grade label to star rating.
// It is case- and whitespace-insensitive: any "A" grade (A+, a, A-) maps to
// 3, any "B" grade to 2, everything else to 1.
func RatingForGrade(grade string) int {
	g := strings.ToUpper(strings.TrimSpace(grade))
	switch {
	case strings.HasPrefix(g, "A"):
		return 3
	case strings.HasPrefix(g, "B"):
		return 2
	default:
		return 1
	}
}

// CreateResearchInput carries the caller-supplied fields for a new record.
type CreateResearchInput struct {
	Title         string
	Grade         string
	Price         float64
	InstitutionID string
	Degree        string
	Course        string
	SubjectCode   string
	YearSubmitted int
	YearPublished int
	Abstract      string
	Keywords      []string
}

// ResearchPatch names the fields an update may touch. Nil fields are left
// untouched; a raw map is never accepted.
type ResearchPatch struct {
	Title         *string
	Grade         *string
	Price         *float64
	InstitutionID *string
	Degree        *string
	Course        *string
	SubjectCode   *string
	YearSubmitted *int
	YearPublished *int
	Abstract      *string
	Keywords      *[]string
}

// Create validates the input, derives the rating, assigns a fresh id and
// the caller as owner, and persists the record.
func (s *ResearchService) Create(ctx context.Context, identity string, input CreateResearchInput) (model.Research, error) {
	if strings.TrimSpace(identity) == "" {
		return model.Research{}, ErrUnauthenticated("identity is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return model.Research{}, ErrValidation("title is required")
	}
	if strings.TrimSpace(input.Grade) == "" {
		return model.Research{}, ErrValidation("grade is required")
	}
	if input.Price < 0 {
		return model.Research{}, ErrValidation("price must not be negative")
	}

	now := time.Now().UTC()
	rec := model.Research{
		ID:            "res_" + uuid.NewString(),
		OwnerID:       identity,
		Title:         strings.TrimSpace(input.Title),
		Grade:         strings.TrimSpace(input.Grade),
		Rating:        RatingForGrade(input.Grade),
		Price:         input.Price,
		InstitutionID: input.InstitutionID,
		Degree:        input.Degree,
		Course:        input.Course,
		SubjectCode:   input.SubjectCode,
		YearSubmitted: input.YearSubmitted,
		YearPublished: input.YearPublished,
		Abstract:      input.Abstract,
		Keywords:      input.Keywords,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return model.Research{}, err
	}
	return rec, nil
}

// Get returns a record by id. Reads are public in this deployment; there is
// no ownership check.
func (s *ResearchService) Get(ctx context.Context, id string) (model.Research, error) {
	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return model.Research{}, ErrNotFound("research not found")
	}
	return rec, err
}

// Update merges the patched fields into an existing record. Only the owner
// may update; a patched grade recomputes the rating.
func (s *ResearchService) Update(ctx context.Context, identity, id string, patch ResearchPatch) (model.Research, error) {
	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return model.Research{}, ErrNotFound("research not found")
	}
	if err != nil {
		return model.Research{}, err
	}
	if rec.OwnerID != identity {
		return model.Research{}, ErrForbidden("only the owner can update this research")
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return model.Research{}, ErrValidation("title must not be empty")
		}
		rec.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Grade != nil {
		if strings.TrimSpace(*patch.Grade) == "" {
			return model.Research{}, ErrValidation("grade must not be empty")
		}
		rec.Grade = strings.TrimSpace(*patch.Grade)
		rec.Rating = RatingForGrade(rec.Grade)
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return model.Research{}, ErrValidation("price must not be negative")
		}
		rec.Price = *patch.Price
	}
	if patch.InstitutionID != nil {
		rec.InstitutionID = *patch.InstitutionID
	}
	if patch.Degree != nil {
		rec.Degree = *patch.Degree
	}
	if patch.Course != nil {
		rec.Course = *patch.Course
	}
	if patch.SubjectCode != nil {
		rec.SubjectCode = *patch.SubjectCode
	}
	if patch.YearSubmitted != nil {
		rec.YearSubmitted = *patch.YearSubmitted
	}
	if patch.YearPublished != nil {
		rec.YearPublished = *patch.YearPublished
	}
	if patch.Abstract != nil {
		rec.Abstract = *patch.Abstract
	}
	if patch.Keywords != nil {
		rec.Keywords = *patch.Keywords
	}

	rec.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, rec); err != nil {
		return model.Research{}, err
	}
	return rec, nil
}

// Delete removes a record. Only the owner may delete.
func (s *ResearchService) Delete(ctx context.Context, identity, id string) error {
	rec, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound("research not found")
	}
	if err != nil {
		return err
	}
	if rec.OwnerID != identity {
		return ErrForbidden("only the owner can delete this research")
	}
	return s.store.Delete(ctx, id)
}

// List returns the public catalogue narrowed by the supplied filters.
func (s *ResearchService) List(ctx context.Context, filters ResearchFilters) ([]model.Research, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(recs, filters), nil
}

// ListOwned returns the caller's own records narrowed by the supplied
// filters.
func (s *ResearchService) ListOwned(ctx context.Context, identity string, filters ResearchFilters) ([]model.Research, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]model.Research, 0, len(recs))
	for _, rec := range recs {
		if rec.OwnerID == identity {
			owned = append(owned, rec)
		}
	}
	return ApplyFilters(owned, filters), nil
}
