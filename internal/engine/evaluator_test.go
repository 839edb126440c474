package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harukit/mekiki/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultRecorder collects applied results in arrival order.
type resultRecorder struct {
	mu      sync.Mutex
	results []model.RiskAssessmentResult
}

func (r *resultRecorder) record(res model.RiskAssessmentResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *resultRecorder) all() []model.RiskAssessmentResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.RiskAssessmentResult, len(r.results))
	copy(out, r.results)
	return out
}

func TestEvaluator_LocalOnlyLifecycle(t *testing.T) {
	ev := NewEvaluator(New(nil, nil, nil), nil)
	require.Equal(t, StateIdle, ev.State())

	result := ev.Evaluate(context.Background(), testDraft(), false)

	assert.Equal(t, StateComplete, ev.State())
	assert.Equal(t, model.RiskSourceLocal, result.Source)
	require.NotNil(t, ev.Latest())
	assert.Equal(t, result.Overall, ev.Latest().Overall)
}

func TestEvaluator_AIRefinementApplied(t *testing.T) {
	mock := NewMockSuggester()
	rec := &resultRecorder{}
	ev := NewEvaluator(New(nil, mock, nil), rec.record)

	local := ev.Evaluate(context.Background(), testDraft(), true)
	assert.Equal(t, model.RiskSourceLocal, local.Source, "caller gets the local result immediately")

	require.Eventually(t, func() bool {
		return ev.State() == StateComplete
	}, time.Second, 10*time.Millisecond)

	latest := ev.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, model.RiskSourceAI, latest.Source)

	results := rec.all()
	require.Len(t, results, 2, "local first, AI refinement second")
	assert.Equal(t, model.RiskSourceLocal, results[0].Source)
	assert.Equal(t, model.RiskSourceAI, results[1].Source)
}

func TestEvaluator_StaleAIResponseDiscarded(t *testing.T) {
	mock := NewMockSuggester()
	mock.Delay = 100 * time.Millisecond
	rec := &resultRecorder{}
	ev := NewEvaluator(New(nil, mock, nil), rec.record)

	first := testDraft()
	first.Title = "First draft title"

	second := testDraft()
	second.Title = "Second draft title"

	// The first evaluation's AI response is still in flight when the second
	// evaluation starts; its refinement must be discarded.
	ev.Evaluate(context.Background(), first, true)
	ev.Evaluate(context.Background(), second, false)

	time.Sleep(300 * time.Millisecond)

	latest := ev.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, model.RiskSourceLocal, latest.Source,
		"the slow first refinement must not overwrite the newer result")

	for _, res := range rec.all() {
		if res.Source == model.RiskSourceAI {
			t.Fatalf("stale AI refinement was applied")
		}
	}
}

func TestEvaluator_RapidSupersedeKeepsNewestResult(t *testing.T) {
	mock := NewMockSuggester()
	mock.Delay = time.Millisecond
	assessor := New(nil, mock, nil)

	stale := testDraft()
	stale.Title = "Stale draft title"
	newest := testDraft()
	newest.Title = "Newest draft title"

	// The second evaluation lands while the first refinement is mid-flight,
	// over and over, so the supersede check races the apply from many
	// different interleavings. Whatever the ordering, once both settle the
	// retained result must be the newest generation's, never a stale
	// refinement or its fallback.
	for i := 0; i < 100; i++ {
		ev := NewEvaluator(assessor, nil)
		ev.Evaluate(context.Background(), stale, true)
		ev.Evaluate(context.Background(), newest, false)

		time.Sleep(5 * time.Millisecond)

		latest := ev.Latest()
		require.NotNil(t, latest)
		require.Equal(t, model.RiskSourceLocal, latest.Source,
			"iteration %d retained a stale AI refinement", i)
		require.NotContains(t, latest.Warnings, WarnAIUnavailable,
			"iteration %d retained the stale generation's fallback", i)
	}
}

func TestEvaluator_NewerAIRefinementWins(t *testing.T) {
	mock := NewMockSuggester()
	mock.Delay = 50 * time.Millisecond
	ev := NewEvaluator(New(nil, mock, nil), nil)

	first := testDraft()
	first.Title = "First draft title"
	second := testDraft()
	second.Title = "Second draft title"

	ev.Evaluate(context.Background(), first, true)
	ev.Evaluate(context.Background(), second, true)

	require.Eventually(t, func() bool {
		latest := ev.Latest()
		return latest != nil && latest.Source == model.RiskSourceAI
	}, time.Second, 10*time.Millisecond)

	// Only the second generation's request may have been answered after
	// the supersede; its result is the one retained.
	assert.Equal(t, StateComplete, ev.State())
}

func TestEvaluator_EvaluateSync(t *testing.T) {
	mock := NewMockSuggester()
	ev := NewEvaluator(New(nil, mock, nil), nil)

	result := ev.EvaluateSync(context.Background(), testDraft(), true)

	assert.Equal(t, model.RiskSourceAI, result.Source)
	assert.Equal(t, StateComplete, ev.State())
}

func TestEvaluator_Stop(t *testing.T) {
	mock := NewMockSuggester()
	mock.Delay = 5 * time.Second
	ev := NewEvaluator(New(nil, mock, nil), nil)

	ev.Evaluate(context.Background(), testDraft(), true)
	require.Equal(t, StateAwaitingAI, ev.State())

	ev.Stop()

	// The canceled refinement falls back to local and completes.
	require.Eventually(t, func() bool {
		return ev.State() == StateComplete
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, model.RiskSourceLocal, ev.Latest().Source)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var fired []int

	for i := 0; i < 5; i++ {
		i := i
		d.Trigger(func() {
			mu.Lock()
			fired = append(fired, i)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, fired, 1, "only the last trigger fires")
	assert.Equal(t, 4, fired[0])
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Trigger(func() { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("stopped debouncer must not fire")
	case <-time.After(80 * time.Millisecond):
	}
}
