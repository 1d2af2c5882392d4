package bot

import (
	"math/rand"
	"sync"
	"time"
)

// Chooser picks one column out of a non-empty candidate list. It breaks ties
// between equally good safe moves.
type Chooser interface {
	Choose(columns []int) int
}

// RandomChooser picks uniformly at random. It is safe for concurrent use.
type RandomChooser struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRandomChooser seeds a chooser; seed 0 means "seed from the clock".
func NewRandomChooser(seed int64) *RandomChooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomChooser{rand: rand.New(rand.NewSource(seed))}
}

func (r *RandomChooser) Choose(columns []int) int {
	if len(columns) == 0 {
		return -1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return columns[r.rand.Intn(len(columns))]
}

// FirstChooser always returns the first candidate. Used for predictable tests.
type FirstChooser struct{}

func (FirstChooser) Choose(columns []int) int {
	if len(columns) == 0 {
		return -1
	}
	return columns[0]
}
