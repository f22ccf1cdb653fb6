package scheduler

import (
	"fmt"
	"math"

	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Kind selects how an action advances.
type Kind int

const (
	DelayThenFire Kind = iota
	LerpToTarget
	RepeatUntilConverged
	PeriodicToggle
	Tween
)

func (k Kind) String() string {
	switch k {
	case DelayThenFire:
		return "DelayThenFire"
	case LerpToTarget:
		return "LerpToTarget"
	case RepeatUntilConverged:
		return "RepeatUntilConverged"
	case PeriodicToggle:
		return "PeriodicToggle"
	case Tween:
		return "Tween"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Open is the duration of an action that ends on convergence rather than time.
const Open = -1.0

// Payload carries the parameters of an action. Which fields matter depends on
// the Kind; Schedule rejects payloads missing the ones it needs.
type Payload struct {
	// Get and Set access the controlled value (lerp, converge and tween kinds).
	Get func() []float64
	Set func([]float64)

	// Target is the value to move toward. Follow, when set, replaces it every tick.
	Target []float64
	Follow func() []float64
	// From is the start value of a Tween. Defaults to Get() on the first tick.
	From []float64
	Ease ease.TweenFunc

	// Rate is the exponential smoothing rate per second.
	Rate float64
	// Threshold bounds the Euclidean distance to Target. Thresholds, when set,
	// bounds each component separately instead.
	Threshold  float64
	Thresholds []float64
	// Snap writes the exact Target when the action completes.
	Snap bool
	// MaxDuration caps a convergence action. Zero means the scheduler default.
	MaxDuration float64

	// Toggle receives the flipped output of a PeriodicToggle every Period
	// seconds. Resting is the value written when the toggle ends and the value
	// the output starts from.
	Toggle  func(bool)
	Period  float64
	Resting bool
}

type action struct {
	id         ID
	kind       Kind
	duration   float64
	payload    Payload
	onComplete func()

	elapsed   float64
	cancelled bool
	done      bool

	// toggle state
	on       bool
	nextFlip float64

	tweens []*gween.Tween
}

func validate(kind Kind, duration float64, p Payload) error {
	if math.IsNaN(duration) {
		return ErrInvalidDuration
	}
	switch kind {
	case RepeatUntilConverged:
		if duration < 0 && duration != Open {
			return ErrInvalidDuration
		}
	case DelayThenFire, LerpToTarget, PeriodicToggle, Tween:
		if duration < 0 {
			return ErrInvalidDuration
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidPayload, int(kind))
	}

	switch kind {
	case LerpToTarget, RepeatUntilConverged:
		if p.Get == nil || p.Set == nil {
			return fmt.Errorf("%w: %s needs Get and Set", ErrInvalidPayload, kind)
		}
		if p.Target == nil && p.Follow == nil {
			return fmt.Errorf("%w: %s needs Target or Follow", ErrInvalidPayload, kind)
		}
		if p.Rate < 0 {
			return fmt.Errorf("%w: negative rate", ErrInvalidPayload)
		}
		if p.Thresholds != nil && p.Target != nil && len(p.Thresholds) != len(p.Target) {
			return fmt.Errorf("%w: %d thresholds for %d components", ErrInvalidPayload, len(p.Thresholds), len(p.Target))
		}
	case Tween:
		if p.Set == nil || p.Target == nil {
			return fmt.Errorf("%w: Tween needs Set and Target", ErrInvalidPayload)
		}
		if p.From == nil && p.Get == nil {
			return fmt.Errorf("%w: Tween needs From or Get", ErrInvalidPayload)
		}
		if p.From != nil && len(p.From) != len(p.Target) {
			return fmt.Errorf("%w: From and Target differ in length", ErrInvalidPayload)
		}
	case PeriodicToggle:
		if p.Toggle == nil || p.Period <= 0 {
			return fmt.Errorf("%w: PeriodicToggle needs Toggle and a positive Period", ErrInvalidPayload)
		}
	}
	return nil
}

func (a *action) target() []float64 {
	if a.payload.Follow != nil {
		return a.payload.Follow()
	}
	return a.payload.Target
}

// timeEpsilon absorbs the drift of summing fixed steps, e.g. thirty 1/60
// steps add up to just under 0.5.
const timeEpsilon = 1e-9

func reached(elapsed, limit float64) bool {
	return elapsed >= limit-timeEpsilon
}

// advance moves the action forward by dt and reports whether it finished.
func (a *action) advance(dt, convergenceCap float64) (done, capped bool) {
	a.elapsed += dt
	switch a.kind {
	case DelayThenFire:
		return reached(a.elapsed, a.duration), false

	case LerpToTarget:
		target := a.target()
		v := a.payload.Get()
		step(v, target, a.payload.Rate, dt)
		a.payload.Set(v)
		if a.converged(v, target) || reached(a.elapsed, a.duration) {
			a.finish(target)
			return true, false
		}
		return false, false

	case RepeatUntilConverged:
		target := a.target()
		v := a.payload.Get()
		if a.converged(v, target) {
			a.finish(target)
			return true, false
		}
		limit := a.duration
		if limit == Open {
			limit = a.payload.MaxDuration
			if limit <= 0 {
				limit = convergenceCap
			}
		}
		// the step lands before the cap check so a capped action still moved this tick
		step(v, target, a.payload.Rate, dt)
		a.payload.Set(v)
		if reached(a.elapsed, limit) {
			a.finish(target)
			return true, true
		}
		return false, false

	case PeriodicToggle:
		flipped := false
		for reached(a.elapsed, a.nextFlip) && !reached(a.nextFlip, a.duration) {
			a.on = !a.on
			a.nextFlip += a.payload.Period
			flipped = true
		}
		if reached(a.elapsed, a.duration) {
			a.payload.Toggle(a.payload.Resting)
			return true, false
		}
		if flipped {
			a.payload.Toggle(a.on)
		}
		return false, false

	case Tween:
		if a.tweens == nil {
			from := a.payload.From
			if from == nil {
				from = a.payload.Get()
			}
			ef := a.payload.Ease
			if ef == nil {
				ef = ease.Linear
			}
			a.tweens = make([]*gween.Tween, len(a.payload.Target))
			for i := range a.payload.Target {
				a.tweens[i] = gween.New(float32(from[i]), float32(a.payload.Target[i]), float32(a.duration), ef)
			}
		}
		v := make([]float64, len(a.tweens))
		finished := true
		for i, tw := range a.tweens {
			cur, fin := tw.Update(float32(dt))
			v[i] = float64(cur)
			finished = finished && fin
		}
		if finished || reached(a.elapsed, a.duration) {
			copy(v, a.payload.Target)
			finished = true
		}
		a.payload.Set(v)
		return finished, false
	}
	return true, false
}

func (a *action) finish(target []float64) {
	if a.payload.Snap {
		v := make([]float64, len(target))
		copy(v, target)
		a.payload.Set(v)
	}
}

func (a *action) converged(v, target []float64) bool {
	if a.payload.Thresholds != nil {
		for i := range v {
			if math.Abs(target[i]-v[i]) > a.payload.Thresholds[i] {
				return false
			}
		}
		return true
	}
	return distance(v, target) <= a.payload.Threshold
}

// step applies one exponential smoothing step in place.
func step(v, target []float64, rate, dt float64) {
	f := gamemath.SmoothingFactor(rate, dt)
	for i := range v {
		if i < len(target) {
			v[i] += (target[i] - v[i]) * f
		}
	}
}

func distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		if i < len(b) {
			d := b[i] - a[i]
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}
