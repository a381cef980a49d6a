package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsPopulatesEmptyStores(t *testing.T) {
	ctx := context.Background()
	research := NewMemoryResearchStore()
	institutions := NewMemoryInstitutionStore()

	require.NoError(t, RunSeeds(ctx, research, institutions))

	insts, err := institutions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, insts, 3)

	recs, err := research.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "AI in Healthcare", recs[0].Title)
	assert.Equal(t, 3, recs[0].Rating)
}

func TestRunSeedsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	research := NewMemoryResearchStore()
	institutions := NewMemoryInstitutionStore()

	require.NoError(t, RunSeeds(ctx, research, institutions))

	// A second run must not duplicate or overwrite anything
	inst, err := institutions.Get(ctx, "inst_1")
	require.NoError(t, err)
	inst.TotalUploads = 999
	require.NoError(t, institutions.Put(ctx, inst))

	require.NoError(t, RunSeeds(ctx, research, institutions))

	insts, err := institutions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, insts, 3)

	inst, err = institutions.Get(ctx, "inst_1")
	require.NoError(t, err)
	assert.Equal(t, 999, inst.TotalUploads)
}
