package searcher

import "github.com/jarvarvarvis/rostware23/game"

type Bound uint8

const (
	Exact Bound = iota
	Lower       // Score is at least the stored value
	Upper       // Score is at most the stored value
)

// Entry is a cached search result for a position searched with Depth
// remaining plies.
type Entry struct {
	Score int
	Depth int
	Bound Bound
}

type TranspositionTable interface {
	Contains(s game.State) bool
	Get(s game.State) (Entry, error)
	Add(s game.State, e Entry)
	Len() int
}

// AdmissionPolicy decides which positions are worth caching.
type AdmissionPolicy interface {
	Admit(s game.State, depth int) bool
}

type AdmitFunc func(s game.State, depth int) bool

func (f AdmitFunc) Admit(s game.State, depth int) bool {
	return f(s, depth)
}

var (
	AdmitAll  AdmissionPolicy = AdmitFunc(func(game.State, int) bool { return true })
	AdmitNone AdmissionPolicy = AdmitFunc(func(game.State, int) bool { return false })
)

// MinDepth admits positions with at least depth remaining plies.
func MinDepth(depth int) AdmissionPolicy {
	return AdmitFunc(func(_ game.State, remaining int) bool {
		return remaining >= depth
	})
}

// table lives for one search and never evicts.
type table struct {
	entries map[game.State]Entry
	policy  AdmissionPolicy
}

func NewTable(policy AdmissionPolicy) TranspositionTable {
	return &table{
		entries: make(map[game.State]Entry),
		policy:  policy,
	}
}

func (t *table) Contains(s game.State) bool {
	_, ok := t.entries[s]
	return ok
}

func (t *table) Get(s game.State) (Entry, error) {
	e, ok := t.entries[s]
	if !ok {
		return Entry{}, ErrTableMiss
	}
	return e, nil
}

func (t *table) Add(s game.State, e Entry) {
	if t.policy.Admit(s, e.Depth) {
		t.entries[s] = e
	}
}

func (t *table) Len() int {
	return len(t.entries)
}
