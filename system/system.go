// Package system holds the demo processors. Priorities are descending:
// spawn first so new particles move and render on the tick they appear,
// render last so it sees the settled state.
package system

const (
	PrioritySpawn    = 40
	PriorityMovement = 30
	PriorityBounce   = 20
	PriorityExpiry   = 10
	PriorityRender   = 0
)

// EventParticleExpired is dispatched with the entity id when a
// particle's lifetime runs out
const EventParticleExpired = "particle_expired"
