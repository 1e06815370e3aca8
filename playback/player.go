// Package playback advances a live joint-angle state toward a queue of
// targets at a bounded angular rate, one tick at a time.
//
// Motion between consecutive targets is straight-line in joint space.
// Cartesian straightness, where a path needs it, must come from dense
// waypoint sampling upstream.
package playback

import (
	"math"

	"github.com/Redamancy-wzh/6-3D/kinematics"
)

const (
	// maxRateDegPerSec caps per-joint angular velocity.
	maxRateDegPerSec = 120.0
	// snapBandDeg is the band within which a joint snaps onto its target.
	snapBandDeg = 0.1
)

// Player owns the pending target queue and the current angle state.
// Producers only ever append via Enqueue; the driving loop calls Tick once
// per frame with a monotonically increasing dt.
type Player struct {
	current kinematics.JointAngles
	queue   []kinematics.JointAngles
}

// NewPlayer returns a Player resting at the given angles with an empty
// queue.
func NewPlayer(start kinematics.JointAngles) *Player {
	return &Player{current: start}
}

// Enqueue appends targets to the pending queue.
func (p *Player) Enqueue(targets ...kinematics.JointAngles) {
	p.queue = append(p.queue, targets...)
}

// Clear cancels all pending motion. The current angles are left where they
// are.
func (p *Player) Clear() {
	p.queue = nil
}

// Pending returns the number of queued targets.
func (p *Player) Pending() int {
	return len(p.queue)
}

// Current returns the live joint angles.
func (p *Player) Current() kinematics.JointAngles {
	return p.current
}

// Tick advances the current angles toward the front target by at most
// maxRateDegPerSec*dt per joint, snapping any joint already within
// snapBandDeg. When every joint is within the band the front target is
// popped. The returned flag reports whether the queue is drained after
// this tick.
func (p *Player) Tick(dt float64) (kinematics.JointAngles, bool) {
	if len(p.queue) == 0 {
		return p.current, true
	}
	target := p.queue[0]
	maxStep := maxRateDegPerSec * dt
	arrived := true
	for j := range p.current {
		diff := target[j] - p.current[j]
		if math.Abs(diff) > snapBandDeg {
			step := diff
			if step > maxStep {
				step = maxStep
			} else if step < -maxStep {
				step = -maxStep
			}
			p.current[j] += step
		} else {
			p.current[j] = target[j]
		}
		if math.Abs(target[j]-p.current[j]) > snapBandDeg {
			arrived = false
		}
	}
	if arrived {
		p.queue = p.queue[1:]
	}
	return p.current, len(p.queue) == 0
}
