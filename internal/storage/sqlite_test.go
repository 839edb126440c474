package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testRecord(hash, title string, overall float64) *model.AssessmentRecord {
	return &model.AssessmentRecord{
		ListingHash: hash,
		Title:       title,
		Verdict:     "fair",
		Result: model.RiskAssessmentResult{
			Overall: overall,
			Axes: []model.RiskAxis{
				{Label: "Information clarity", Score: overall},
			},
			Warnings: []string{"description is too brief (20+ characters recommended)"},
			Source:   model.RiskSourceLocal,
		},
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	store := testStorage(t)

	require.NoError(t, store.Migrate(context.Background()))
}

func TestSaveAndGetAssessments(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	record := testRecord("hash-1", "Pokemon card lot", 42)
	require.NoError(t, store.SaveAssessment(ctx, record))
	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	records, err := store.GetAssessments(ctx, service.AssessmentFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "hash-1", got.ListingHash)
	assert.Equal(t, "Pokemon card lot", got.Title)
	assert.Equal(t, "fair", got.Verdict)
	assert.InDelta(t, 42, got.Result.Overall, 0.001)
	require.Len(t, got.Result.Axes, 1)
	assert.Equal(t, "Information clarity", got.Result.Axes[0].Label)
	assert.Equal(t, model.RiskSourceLocal, got.Result.Source)
}

func TestGetAssessments_FilterAndLimit(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAssessment(ctx, testRecord("hash-a", "First", 10)))
	require.NoError(t, store.SaveAssessment(ctx, testRecord("hash-b", "Second", 20)))
	require.NoError(t, store.SaveAssessment(ctx, testRecord("hash-a", "Third", 30)))

	records, err := store.GetAssessments(ctx, service.AssessmentFilter{ListingHash: "hash-a"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first.
	assert.Equal(t, "Third", records[0].Title)
	assert.Equal(t, "First", records[1].Title)

	records, err = store.GetAssessments(ctx, service.AssessmentFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = store.GetAssessments(ctx, service.AssessmentFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetLatestAssessment(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAssessment(ctx, testRecord("hash-a", "Older", 10)))
	require.NoError(t, store.SaveAssessment(ctx, testRecord("hash-a", "Newer", 55)))

	got, err := store.GetLatestAssessment(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, "Newer", got.Title)
	assert.InDelta(t, 55, got.Result.Overall, 0.001)
}

func TestGetLatestAssessment_NotFound(t *testing.T) {
	store := testStorage(t)

	_, err := store.GetLatestAssessment(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSaveAssessment_Validation(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	assert.Error(t, store.SaveAssessment(ctx, nil))
	assert.Error(t, store.SaveAssessment(ctx, &model.AssessmentRecord{Title: "no hash"}))
}
