// Package search implements C6: single-threaded depth-first minimax
// with alpha-beta pruning, a per-matchup transposition table, and
// repeated-state stalemate detection over the action model in
// internal/action. Grounded on the teacher's single-threaded,
// mutex-free combat/turn-advance style (mage_engine.go drives the game
// loop synchronously); the tree-search shape itself has no direct
// analogue in the teacher, since the teacher plays one live game
// rather than searching a tree of them.
package search

import (
	"github.com/PropterMalone/3cblue/internal/action"
	"github.com/PropterMalone/3cblue/internal/state"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the depth cap §4.6 names as the typical default.
const DefaultMaxDepth = 200

// negInfinity and posInfinity sit outside the engine's real value range
// of {-1, 0, +1}, so they behave as -∞/+∞ bounds for the opening call
// without needing a separate sentinel type.
const (
	negInfinity = -2
	posInfinity = 2
)

// Stats reports search effort for one matchup (§4.7).
type Stats struct {
	NodesExplored          int
	MaxDepthReached        int
	TerminatedByDepthLimit bool
}

// Engine holds the per-matchup transposition table and depth cap.
// Never share an Engine across matchups — the permanent-id counter
// inside each GameState resets per matchup and a shared table would
// conflate unrelated positions that happen to hash the same (§9).
type Engine struct {
	maxDepth      int
	transposition map[string]int
	stats         Stats
	logger        *zap.Logger
}

// NewEngine builds a fresh search engine with an empty transposition
// table. A nil logger is replaced with zap.NewNop(), matching the
// teacher's replacement_manager.go default-logger convention.
func NewEngine(maxDepth int, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		maxDepth:      maxDepth,
		transposition: make(map[string]int),
		logger:        logger,
	}
}

// Stats returns the accumulated search statistics so far.
func (e *Engine) Stats() Stats { return e.stats }

// Evaluate returns the minimax value of gs: +1 if player 0 is forced
// to win under optimal play from both sides, -1 if player 1 is, and 0
// for a forced or detected draw (§4.6).
func (e *Engine) Evaluate(gs *state.GameState) int {
	e.logger.Debug("search starting", zap.Int("max_depth", e.maxDepth))
	value := e.search(gs, 0, negInfinity, posInfinity)
	e.logger.Debug("search complete",
		zap.Int("value", value),
		zap.Int("nodes_explored", e.stats.NodesExplored),
		zap.Bool("terminated_by_depth_limit", e.stats.TerminatedByDepthLimit),
	)
	return value
}

func (e *Engine) search(gs *state.GameState, depth int, alpha, beta int) int {
	e.stats.NodesExplored++
	if depth > e.stats.MaxDepthReached {
		e.stats.MaxDepthReached = depth
	}

	if value, terminal := terminalValue(gs); terminal {
		return value
	}
	if depth >= e.maxDepth {
		e.stats.TerminatedByDepthLimit = true
		return 0
	}

	if gs.Phase != state.PhaseMainPrecombat {
		return e.branch(gs, depth, alpha, beta)
	}

	hash := state.HashState(gs)
	if gs.HasSeenHash(hash) {
		return 0
	}
	if value, ok := e.transposition[hash]; ok {
		return value
	}

	checkpointed := gs.WithHistoryEntry(hash)
	value := e.branch(checkpointed, depth, alpha, beta)
	e.transposition[hash] = value
	return value
}

// terminalValue implements the life-total terminal check (§4.6, rule
// 1): both players at non-positive life is a draw, and a single
// surviving player wins.
func terminalValue(gs *state.GameState) (value int, terminal bool) {
	p0Dead := gs.Players[0].Life <= 0
	p1Dead := gs.Players[1].Life <= 0
	switch {
	case p0Dead && p1Dead:
		return 0, true
	case p0Dead:
		return -1, true
	case p1Dead:
		return 1, true
	default:
		return 0, false
	}
}

// branch enumerates legal actions, selects the decision-maker for this
// phase, and runs alpha-beta over the resulting children in enumeration
// order (§4.6). Auto-resolve phases (first_strike_damage, combat_damage,
// cleanup) fall through here too — they simply enumerate to a single
// Pass action, so the branching/pruning logic degenerates harmlessly to
// a single recursive call.
func (e *Engine) branch(gs *state.GameState, depth int, alpha, beta int) int {
	decisionMaker := gs.ActivePlayer
	if gs.Phase == state.PhaseDeclareBlockers {
		decisionMaker = state.Opponent(gs.ActivePlayer)
	}
	maximizer := decisionMaker == 0

	actions := action.EnumerateLegalActions(gs)
	if len(actions) == 0 {
		return 0
	}

	best := negInfinity
	if !maximizer {
		best = posInfinity
	}

	for _, act := range actions {
		child := action.ApplyAction(gs, act)
		value := e.search(child, depth+1, alpha, beta)

		if maximizer {
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
