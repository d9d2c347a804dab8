package flappy

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/sequence"
)

// ObstacleQueue owns every live obstacle pair of a session, oldest first.
// Pairs share one spawn x and one scroll speed, so spawn order is also
// left-to-right screen order and the head is always the next pair to leave.
type ObstacleQueue struct {
	pairs   *sequence.Sequence[*ObstaclePair]
	spawned int
	rng     *rand.Rand
	geom    *Geometry
	assets  *Assets
	policy  SpawnPolicy
}

// NewObstacleQueue creates an empty queue with the given RNG seed.
// A nil policy means SpawnWhenEmpty.
func NewObstacleQueue(seed int64, geom *Geometry, assets *Assets, policy SpawnPolicy) *ObstacleQueue {
	if policy == nil {
		policy = SpawnWhenEmpty{}
	}
	q := &ObstacleQueue{
		pairs:  sequence.New[*ObstaclePair](4),
		geom:   geom,
		assets: assets,
		policy: policy,
	}
	q.Reset(seed)
	return q
}

// Reset discards all pairs, zeroes the spawn counter and reseeds the RNG.
func (q *ObstacleQueue) Reset(seed int64) {
	q.pairs.Clear()
	q.spawned = 0
	q.rng = rand.New(rand.NewSource(seed))
}

// Update runs one tick: advance every pair, retire dead pairs from the head,
// then let the spawn policy add a pair. The spawn check sees the
// post-retirement state.
func (q *ObstacleQueue) Update() {
	for p := range q.pairs.All() {
		p.Advance()
	}

	for !q.pairs.Empty() {
		head, _ := q.pairs.Front()
		if head.IsAlive() {
			break
		}
		q.pairs.PopFront()
	}

	if q.policy.ShouldSpawn(q) {
		q.spawn()
	}
}

// spawn appends a freshly randomized pair.
func (q *ObstacleQueue) spawn() {
	q.pairs.PushBack(NewObstaclePair(q.rng, q.geom, q.assets))
	q.spawned++
}

// Obstacles returns every on-screen obstacle of every live pair.
// The slice is freshly allocated; order is not part of the contract.
func (q *ObstacleQueue) Obstacles() []*Obstacle {
	out := make([]*Obstacle, 0, 2*q.pairs.Len())
	for p := range q.pairs.All() {
		top, bottom := p.Obstacles()
		if !top.HasExpired() {
			out = append(out, top)
		}
		if !bottom.HasExpired() {
			out = append(out, bottom)
		}
	}
	return out
}

// liveObstacleCount counts on-screen obstacles without allocating.
func (q *ObstacleQueue) liveObstacleCount() int {
	n := 0
	for p := range q.pairs.All() {
		top, bottom := p.Obstacles()
		if !top.HasExpired() {
			n++
		}
		if !bottom.HasExpired() {
			n++
		}
	}
	return n
}

// PairCount returns how many pairs have been spawned since the last Reset.
// It never decreases, so a scorer can watch it for increases.
func (q *ObstacleQueue) PairCount() int {
	return q.spawned
}

// Len returns the number of live pairs.
func (q *ObstacleQueue) Len() int {
	return q.pairs.Len()
}

// Pairs iterates over live pairs, oldest first.
func (q *ObstacleQueue) Pairs() iter.Seq[*ObstaclePair] {
	return q.pairs.All()
}
