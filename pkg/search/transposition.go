package search

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/corvidbit/negamax/pkg/board"
	"github.com/seekerror/logw"
	uatomic "go.uber.org/atomic"
)

// Bound classifies a stored score relative to the alpha-beta window it was produced in.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound // fail-high: score is at least this
	UpperBound // fail-low: score is at most this
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// Entry is one transposition table record: everything negamax needs to reuse a previously
// searched node, or at minimum order its best move first.
type Entry struct {
	Bound Bound
	Depth int
	Score board.Score
	Move  board.Move
}

// TranspositionTable caches search results keyed by position hash, scoped to a single
// Engine instance (never shared across engines or persisted), per the single-instance
// table requirement.
type TranspositionTable interface {
	Read(hash board.Hash) (Entry, bool)
	Write(hash board.Hash, e Entry)
	Size() uint64
	Used() float64
}

// node is the atomically swapped table slot. 40 bytes.
type node struct {
	hash  board.Hash
	entry Entry
}

// table is a fixed-size, power-of-two-bucketed transposition table with lock-free,
// depth-preferred replacement: concurrent Read/Write never needs a mutex, only an atomic
// pointer swap per bucket.
type table struct {
	slots []*node
	mask  uint64
	used  uatomic.Uint64
}

// NewTranspositionTable allocates a table sized to roughly sizeBytes, rounded down to a
// power of two entry count.
func NewTranspositionTable(ctx context.Context, sizeBytes uint64) TranspositionTable {
	const entrySize = 40
	n := uint64(1 << (63 - bits.LeadingZeros64(sizeBytes/entrySize+1)))
	if n == 0 {
		n = 1
	}

	logw.Infof(ctx, "allocating %vMB transposition table with %v entries", sizeBytes>>20, n)

	return &table{
		slots: make([]*node, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.slots)) * 40
}

func (t *table) Used() float64 {
	return float64(t.used.Load()) / float64(len(t.slots))
}

func (t *table) Read(hash board.Hash) (Entry, bool) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.slots[key]))

	ptr := (*node)(atomic.LoadPointer(addr))
	if ptr != nil && ptr.hash == hash {
		return ptr.entry, true
	}
	return Entry{}, false
}

func (t *table) Write(hash board.Hash, e Entry) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.slots[key]))

	fresh := &node{hash: hash, entry: e}

	for {
		ptr := (*node)(atomic.LoadPointer(addr))
		if ptr != nil && ptr.hash != hash && ptr.entry.Depth > e.Depth {
			return // keep the deeper, unrelated entry occupying this bucket
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				t.used.Inc()
			}
			return
		}
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a nop implementation, useful for perft and tests that want to
// observe search without caching effects.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(board.Hash) (Entry, bool)    { return Entry{}, false }
func (NoTranspositionTable) Write(board.Hash, Entry)          {}
func (NoTranspositionTable) Size() uint64                     { return 0 }
func (NoTranspositionTable) Used() float64                    { return 0 }
