package searcher

import (
	"time"

	"github.com/jarvarvarvis/rostware23/experiments/metrics"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/jarvarvarvis/rostware23/rater"
	"github.com/jarvarvarvis/rostware23/utils"
	"github.com/rs/zerolog/log"
)

type Option func(p *PVS)

// PVS is a principal variation searcher with iterative deepening and
// aspiration windows. A PVS may be reused for consecutive searches but not
// by concurrent goroutines.
type PVS struct {
	duration  time.Duration
	maxDepth  int
	bounded   bool
	fixed     bool
	rater     rater.Rater
	ordering  rater.Rater
	admission AdmissionPolicy
	newTable  func() TranspositionTable
	offset    int
	factor    int
	metrics   metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(p *PVS) {
		if duration > 0 {
			p.duration = duration
		}
	}
}

// WithMaxDepth limits iterative deepening to depth.
func WithMaxDepth(depth int) Option {
	return func(p *PVS) {
		if depth >= 0 {
			p.maxDepth = min(depth, MaxDepth)
			p.bounded = true
		}
	}
}

// WithFixedDepth searches only the given depth with a full window.
func WithFixedDepth(depth int) Option {
	return func(p *PVS) {
		if depth >= 0 {
			p.maxDepth = min(depth, MaxDepth)
			p.bounded = true
			p.fixed = true
		}
	}
}

func WithRater(r rater.Rater) Option {
	return func(p *PVS) {
		if r != nil {
			p.rater = r
		}
	}
}

// WithOrdering sets the rater used to sort successors.
func WithOrdering(r rater.Rater) Option {
	return func(p *PVS) {
		if r != nil {
			p.ordering = r
		}
	}
}

func WithAdmission(policy AdmissionPolicy) Option {
	return func(p *PVS) {
		if policy != nil {
			p.admission = policy
		}
	}
}

// WithTable replaces the default table. The factory is called once per search.
func WithTable(factory func() TranspositionTable) Option {
	return func(p *PVS) {
		if factory != nil {
			p.newTable = factory
		}
	}
}

func WithAspiration(offset, factor int) Option {
	return func(p *PVS) {
		if offset <= 0 || factor < 2 {
			panic("aspiration offset must be positive and factor at least 2")
		}
		p.offset = offset
		p.factor = factor
	}
}

func WithMetrics() Option {
	return func(p *PVS) {
		p.metrics = metrics.NewCollector()
	}
}

func NewPVS(options ...Option) *PVS {
	p := &PVS{ // Default values
		maxDepth:  MaxDepth,
		rater:     rater.Default(),
		ordering:  rater.FishDifference,
		admission: MinDepth(TableMinDepth),
		offset:    AspirationOffset,
		factor:    AspirationFactor,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	if p.duration <= 0 && !p.bounded {
		panic("Must specify search duration or depth")
	}
	if p.newTable == nil {
		admission := p.admission
		p.newTable = func() TranspositionTable { return NewTable(admission) }
	}
	return p
}

// search holds the state of one Search call.
type search struct {
	*PVS
	table   TranspositionTable
	clock   clock
	aborted bool
	horizon bool // Some leaf was cut off by the depth limit
}

func (p *PVS) Search(state game.State) (Result, error) {
	p.metrics.Start()
	list := successors(state, p.ordering, false)
	if len(list) == 0 {
		return Result{Depth: -1, Metric: p.metrics.Complete(-1, 0)}, ErrNoMoves
	}

	s := &search{PVS: p, table: p.newTable(), clock: startClock(p.duration)}
	result := Result{Move: list[0].move, HasMove: true, Score: -list[0].key, Depth: -1}

	first := 0
	if p.fixed {
		first = p.maxDepth
	}
	var last [2]int
	var seen [2]bool
	for depth := first; depth <= p.maxDepth; depth++ {
		var score int
		var move game.Move
		if p.fixed || !seen[depth%2] {
			score, move = s.full(state, list, depth)
		} else {
			score, move = s.aspirate(state, list, depth, last[depth%2])
		}
		if s.aborted {
			log.Debug().Int("depth", depth).Dur("elapsed", s.clock.elapsed()).Msg("iteration aborted")
			break
		}

		result.Move, result.Score, result.Depth = move, score, depth
		last[depth%2], seen[depth%2] = score, true
		log.Debug().
			Int("depth", depth).
			Int("score", score).
			Str("move", move.String()).
			Int("table", s.table.Len()).
			Dur("elapsed", s.clock.elapsed()).
			Msg("iteration complete")

		if !s.horizon || s.clock.expired() {
			break
		}
	}

	result.Metric = p.metrics.Complete(result.Depth, result.Score)
	return result, nil
}

func (s *search) full(state game.State, list []successor, depth int) (int, game.Move) {
	s.horizon = false
	return s.root(state, list, depth, -Infinity, Infinity)
}

// aspirate searches a window around the score of the last iteration with
// the same parity and widens the failing side until the score fits.
func (s *search) aspirate(state game.State, list []successor, depth, guess int) (int, game.Move) {
	below, above := s.offset, s.offset
	alpha := utils.Clamp(guess-below, -Infinity, Infinity)
	beta := utils.Clamp(guess+above, -Infinity, Infinity)
	for {
		s.horizon = false
		score, move := s.root(state, list, depth, alpha, beta)
		switch {
		case s.aborted:
			return score, move
		case score <= alpha && alpha > -Infinity:
			below *= s.factor
			alpha = utils.Clamp(guess-below, -Infinity, Infinity)
		case score >= beta && beta < Infinity:
			above *= s.factor
			beta = utils.Clamp(guess+above, -Infinity, Infinity)
		default:
			return score, move
		}
		s.metrics.AddResearch()
	}
}

// root never takes a table cutoff so that the best move is always known.
func (s *search) root(state game.State, list []successor, depth, alpha, beta int) (int, game.Move) {
	s.metrics.AddNode()
	best, move := -Infinity, list[0].move
	for i, next := range list {
		score := s.child(next.state, i == 0, depth, alpha, beta)
		if s.aborted {
			return best, move
		}
		if score > best {
			best, move = score, next.move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best, move
}

// child searches a successor, with a zero window unless it is the first one.
func (s *search) child(next game.State, first bool, depth, alpha, beta int) int {
	if first {
		return -s.pvs(next, depth-1, -beta, -alpha)
	}
	score := -s.pvs(next, depth-1, -alpha-1, -alpha)
	if alpha < score && score < beta && !s.aborted {
		s.metrics.AddResearch()
		score = -s.pvs(next, depth-1, -beta, -alpha)
	}
	return score
}

func (s *search) pvs(state game.State, depth, alpha, beta int) int {
	s.metrics.AddNode()
	if s.clock.expired() {
		s.aborted = true
		return s.rater.Rate(state)
	}
	if state.IsOver() {
		return s.rater.Rate(state)
	}
	if depth < 0 {
		s.horizon = true
		return s.rater.Rate(state)
	}
	if score, ok := s.probe(state, depth, alpha, beta); ok {
		return score
	}

	team := state.CurrentTeam()
	if !state.HasAnyMoves(team) {
		return -s.pvs(state.Skip(), depth-1, -beta, -alpha)
	}

	alphaOrig := alpha
	best := -Infinity
	for i, next := range successors(state, s.ordering, false) {
		score := s.child(next.state, i == 0, depth, alpha, beta)
		if s.aborted {
			return best
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.store(state, depth, best, alphaOrig, beta)
	return best
}

func (s *search) probe(state game.State, depth, alpha, beta int) (int, bool) {
	e, err := s.table.Get(state)
	if err != nil || e.Depth != depth {
		return 0, false
	}
	hit := e.Bound == Exact ||
		(e.Bound == Lower && e.Score >= beta) ||
		(e.Bound == Upper && e.Score <= alpha)
	if !hit {
		return 0, false
	}
	s.metrics.AddTableHit()
	// The cached subtree may have been cut off by the depth limit.
	s.horizon = true
	return e.Score, true
}

func (s *search) store(state game.State, depth, score, alpha, beta int) {
	bound := Exact
	if score <= alpha {
		bound = Upper
	} else if score >= beta {
		bound = Lower
	}
	s.table.Add(state, Entry{Score: score, Depth: depth, Bound: bound})
}
