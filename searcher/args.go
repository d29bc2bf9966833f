package searcher

// Search bounds and defaults

// Infinity bounds every score.
const Infinity = 1_000_000

// MaxDepth covers a whole game: every move takes one fish tile.
const MaxDepth = 64

// Aspiration windows start this far around the previous score and grow by
// the factor on every failure.
const (
	AspirationOffset = 50
	AspirationFactor = 4
)

// TableMinDepth is the default remaining depth from which positions are cached.
const TableMinDepth = 2
