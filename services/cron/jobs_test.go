package cron

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/model"
)

func TestRefreshInstitutionAggregates(t *testing.T) {
	ctx := context.Background()
	research := database.NewMemoryResearchStore()
	institutions := database.NewMemoryInstitutionStore()

	require.NoError(t, institutions.Put(ctx, model.Institution{ID: "inst_1", Name: "UniKL MIIT", TotalUploads: 120, AverageRating: 4.5}))
	require.NoError(t, institutions.Put(ctx, model.Institution{ID: "inst_2", Name: "Universiti Malaya (UM)", TotalUploads: 350, AverageRating: 4.8}))

	require.NoError(t, research.Put(ctx, model.Research{ID: "res_1", InstitutionID: "inst_1", Rating: 3}))
	require.NoError(t, research.Put(ctx, model.Research{ID: "res_2", InstitutionID: "inst_1", Rating: 1}))
	require.NoError(t, research.Put(ctx, model.Research{ID: "res_3", Rating: 2})) // no institution

	manager := NewCronManager(research, institutions, nil)
	manager.RefreshInstitutionAggregates()

	inst, err := institutions.Get(ctx, "inst_1")
	require.NoError(t, err)
	assert.Equal(t, 2, inst.TotalUploads)
	assert.InDelta(t, 2.0, inst.AverageRating, 0.0001)

	// Institutions without research fall back to zero aggregates
	inst, err = institutions.Get(ctx, "inst_2")
	require.NoError(t, err)
	assert.Equal(t, 0, inst.TotalUploads)
	assert.Equal(t, float64(0), inst.AverageRating)
}

func TestRefreshInstitutionAggregatesIsStable(t *testing.T) {
	ctx := context.Background()
	research := database.NewMemoryResearchStore()
	institutions := database.NewMemoryInstitutionStore()

	require.NoError(t, institutions.Put(ctx, model.Institution{ID: "inst_1", Name: "UniKL MIIT"}))
	require.NoError(t, research.Put(ctx, model.Research{ID: "res_1", InstitutionID: "inst_1", Rating: 3}))

	manager := NewCronManager(research, institutions, nil)
	manager.RefreshInstitutionAggregates()
	first, err := institutions.Get(ctx, "inst_1")
	require.NoError(t, err)

	// Running again without catalogue changes is a no-op
	manager.RefreshInstitutionAggregates()
	second, err := institutions.Get(ctx, "inst_1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
