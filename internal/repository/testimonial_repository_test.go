package repository_test

import (
	"context"
	"testing"

	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/datalab-ge/datalab-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialRepository_DeactivateKeepsRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewTestimonialRepository(db)
	ctx := context.Background()

	tm := testutil.CreateTestimonial(t, db, "ლევანი", 5, true)
	testutil.CreateTestimonial(t, db, "მარიამი", 4, true)

	tm.IsActive = false
	require.NoError(t, repo.Update(ctx, tm))

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tm.IsActive = true
	require.NoError(t, repo.Update(ctx, tm))
	active, err = repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
