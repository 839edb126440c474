package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/harukit/mekiki/internal/model"
)

// State is the evaluator's position in the per-evaluation lifecycle.
type State string

const (
	// StateIdle means no evaluation has run yet.
	StateIdle State = "idle"
	// StateComputing means local heuristics are running.
	StateComputing State = "computing"
	// StateAwaitingAI means the local result is available and an AI
	// refinement request is in flight.
	StateAwaitingAI State = "awaiting_ai"
	// StateLocalOnly means the evaluation finished without AI refinement.
	StateLocalOnly State = "local_only"
	// StateComplete means the evaluation finished, AI-refined or not.
	StateComplete State = "complete"
)

// Evaluator serializes evaluations over changing draft input. Each call
// bumps a generation counter; results computed for a superseded generation
// are discarded so a slow AI response never overwrites a result computed
// from newer input.
type Evaluator struct {
	assessor *Assessor
	onResult func(model.RiskAssessmentResult)

	gen    atomic.Uint64
	cancel context.CancelFunc

	mu     sync.Mutex
	state  State
	latest *model.RiskAssessmentResult
}

// NewEvaluator creates an evaluator around the assessor. onResult, when
// non-nil, receives every applied (non-stale) result. It runs with the
// evaluator's lock held and must not call back into the evaluator.
func NewEvaluator(assessor *Assessor, onResult func(model.RiskAssessmentResult)) *Evaluator {
	return &Evaluator{
		assessor: assessor,
		onResult: onResult,
		state:    StateIdle,
	}
}

// Evaluate runs local heuristics synchronously and returns the local
// result. When useAI is set and an AI suggester is wired, refinement
// continues in the background; the refined result is delivered through
// onResult unless a newer evaluation superseded this one first. Any
// in-flight AI request from a previous call is canceled.
func (ev *Evaluator) Evaluate(ctx context.Context, draft model.ListingDraft, useAI bool) model.RiskAssessmentResult {
	gen := ev.gen.Add(1)

	ev.mu.Lock()
	if ev.cancel != nil {
		ev.cancel()
		ev.cancel = nil
	}
	ev.state = StateComputing
	ev.mu.Unlock()

	local := ev.assessor.Assess(draft)
	ev.apply(gen, local)

	if !useAI || ev.assessor.suggester == nil {
		ev.setState(gen, StateLocalOnly)
		ev.setState(gen, StateComplete)
		return local
	}

	aiCtx, cancel := context.WithCancel(ctx)
	ev.mu.Lock()
	ev.cancel = cancel
	ev.state = StateAwaitingAI
	ev.mu.Unlock()

	go func() {
		defer cancel()
		refined := ev.assessor.AssessWithAI(aiCtx, draft)
		ev.apply(gen, refined)
		ev.setState(gen, StateComplete)
	}()

	return local
}

// EvaluateSync is Evaluate without the background hop: local heuristics
// plus, when requested, AI refinement awaited inline. Used by the CLI,
// where there is no input stream to race against.
func (ev *Evaluator) EvaluateSync(ctx context.Context, draft model.ListingDraft, useAI bool) model.RiskAssessmentResult {
	gen := ev.gen.Add(1)
	ev.setState(gen, StateComputing)

	var result model.RiskAssessmentResult
	if useAI {
		ev.setState(gen, StateAwaitingAI)
		result = ev.assessor.AssessWithAI(ctx, draft)
	} else {
		result = ev.assessor.Assess(draft)
		ev.setState(gen, StateLocalOnly)
	}

	ev.apply(gen, result)
	ev.setState(gen, StateComplete)
	return result
}

// Latest returns the most recently applied result, or nil before the
// first evaluation completes.
func (ev *Evaluator) Latest() *model.RiskAssessmentResult {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return ev.latest
}

// State returns the lifecycle state of the current generation.
func (ev *Evaluator) State() State {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return ev.state
}

// Stop cancels any in-flight AI refinement.
func (ev *Evaluator) Stop() {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if ev.cancel != nil {
		ev.cancel()
		ev.cancel = nil
	}
}

// apply records the result unless a newer generation has started. The
// generation check and the write happen in one critical section, so a stale
// result that passed an earlier check can never land after a newer one.
// onResult fires inside the same section for the same reason, which is why
// the callback must not call back into the evaluator. Returns whether the
// result was applied.
func (ev *Evaluator) apply(gen uint64, result model.RiskAssessmentResult) bool {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if gen != ev.gen.Load() {
		return false
	}

	ev.latest = &result
	if ev.onResult != nil {
		ev.onResult(result)
	}
	return true
}

// setState updates the lifecycle state unless the generation is stale.
func (ev *Evaluator) setState(gen uint64, s State) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if gen != ev.gen.Load() {
		return
	}
	ev.state = s
}
