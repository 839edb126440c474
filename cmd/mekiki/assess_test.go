package main

import (
	"context"
	"testing"

	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistAssessment_RecordsVerdict(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("Failed to close store: %v", closeErr)
		}
	}()
	require.NoError(t, store.Migrate(ctx))

	draft := model.ListingDraft{
		Title:       "PSA 10 Pikachu Promo Card",
		Description: "Graded slab, stored in a case.",
		Condition:   model.ConditionGood,
		Price:       40000,
		ImageCount:  4,
	}
	result := model.RiskAssessmentResult{
		Overall: 22,
		Source:  model.RiskSourceLocal,
		Axes:    []model.RiskAxis{{Label: "Information clarity", Score: 10}},
	}

	require.NoError(t, persistAssessment(ctx, store, draft, result, model.VerdictFair))

	rec, err := store.GetLatestAssessment(ctx, draft.Hash())
	require.NoError(t, err)
	assert.Equal(t, string(model.VerdictFair), rec.Verdict)
	assert.Equal(t, draft.Title, rec.Title)
	assert.InDelta(t, result.Overall, rec.Result.Overall, 0.001)
}
