package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/univault/univault-api/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func filterFixture() []model.Research {
	return []model.Research{
		{ID: "res_1", Degree: "Bachelor", Course: "Information Technology", SubjectCode: "BIT3012", InstitutionID: "inst_1", Rating: 3, Price: 0},
		{ID: "res_2", Degree: "Master", Course: "Computer Science", SubjectCode: "MCS2001", InstitutionID: "inst_2", Rating: 2, Price: 49.90},
		{ID: "res_3", Degree: "Bachelor", Course: "Software Engineering", SubjectCode: "BSE1005", InstitutionID: "inst_1", Rating: 1, Price: 10},
	}
}

func idsOf(recs []model.Research) []string {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	return ids
}

func TestApplyFiltersEmptyMatchesEverything(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{})
	assert.Equal(t, []string{"res_1", "res_2", "res_3"}, idsOf(recs))
}

func TestApplyFiltersExactMatch(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{Degree: "Bachelor"})
	assert.Equal(t, []string{"res_1", "res_3"}, idsOf(recs))

	recs = ApplyFilters(filterFixture(), ResearchFilters{SubjectCode: "MCS2001"})
	assert.Equal(t, []string{"res_2"}, idsOf(recs))

	recs = ApplyFilters(filterFixture(), ResearchFilters{InstitutionID: "inst_1"})
	assert.Equal(t, []string{"res_1", "res_3"}, idsOf(recs))
}

func TestApplyFiltersCourseSubstringIsCaseInsensitive(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{Course: "ENGINEER"})
	assert.Equal(t, []string{"res_3"}, idsOf(recs))

	recs = ApplyFilters(filterFixture(), ResearchFilters{Course: "science"})
	assert.Equal(t, []string{"res_2"}, idsOf(recs))
}

func TestApplyFiltersMinRating(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{MinRating: intPtr(2)})
	assert.Equal(t, []string{"res_1", "res_2"}, idsOf(recs))
}

func TestApplyFiltersMaxPrice(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{MaxPrice: floatPtr(10)})
	assert.Equal(t, []string{"res_1", "res_3"}, idsOf(recs))

	// maxPrice=0 keeps only free research
	recs = ApplyFilters(filterFixture(), ResearchFilters{MaxPrice: floatPtr(0)})
	assert.Equal(t, []string{"res_1"}, idsOf(recs))
}

func TestApplyFiltersCombineWithAND(t *testing.T) {
	recs := ApplyFilters(filterFixture(), ResearchFilters{
		Degree:    "Bachelor",
		MinRating: intPtr(2),
	})
	assert.Equal(t, []string{"res_1"}, idsOf(recs))
}

func TestApplyFiltersAreCommutative(t *testing.T) {
	base := filterFixture()

	first := ApplyFilters(ApplyFilters(base, ResearchFilters{Degree: "Bachelor"}), ResearchFilters{MinRating: intPtr(2)})
	second := ApplyFilters(ApplyFilters(base, ResearchFilters{MinRating: intPtr(2)}), ResearchFilters{Degree: "Bachelor"})
	combined := ApplyFilters(base, ResearchFilters{Degree: "Bachelor", MinRating: intPtr(2)})

	assert.Equal(t, idsOf(first), idsOf(second))
	assert.Equal(t, idsOf(first), idsOf(combined))
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	base := filterFixture()
	_ = ApplyFilters(base, ResearchFilters{Degree: "Master"})
	assert.Equal(t, []string{"res_1", "res_2", "res_3"}, idsOf(base))
}
