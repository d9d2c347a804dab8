package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// SpawnPolicy decides, after retirement, whether the queue appends a new pair.
type SpawnPolicy interface {
	ShouldSpawn(q *ObstacleQueue) bool
}

// SpawnWhenEmpty adds a pair only once no obstacle is left on screen, so at
// most one pair is ever in flight.
type SpawnWhenEmpty struct{}

// ShouldSpawn implements SpawnPolicy.
func (SpawnWhenEmpty) ShouldSpawn(q *ObstacleQueue) bool {
	return q.liveObstacleCount() == 0
}

// SpawnByDistance streams pairs: a new pair enters once the newest one has
// travelled Spacing units from the spawn edge.
type SpawnByDistance struct {
	Spacing float64
}

// ShouldSpawn implements SpawnPolicy.
func (p SpawnByDistance) ShouldSpawn(q *ObstacleQueue) bool {
	newest, ok := q.pairs.Back()
	if !ok {
		return true
	}
	return newest.X() <= q.geom.SpawnX()-p.Spacing
}

// PolicyFromConfig builds the spawn policy named in the config.
// Unknown names fall back to SpawnWhenEmpty; Validate rejects them earlier.
func PolicyFromConfig(cfg config.FlappySpawn) SpawnPolicy {
	if cfg.Policy == config.SpawnPolicyDistance {
		return SpawnByDistance{Spacing: float64(cfg.Spacing)}
	}
	return SpawnWhenEmpty{}
}
