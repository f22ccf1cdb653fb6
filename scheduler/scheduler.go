// Package scheduler runs short time-based actions from a fixed-step loop.
// Waiting is expressed as scheduler state; nothing blocks the caller.
package scheduler

import "log"

// ID identifies a scheduled action. Zero is never issued.
type ID uint64

// DefaultConvergenceCap bounds convergence actions that set no MaxDuration.
const DefaultConvergenceCap = 10.0

// Scheduler owns every active action. It is not safe for concurrent use;
// all calls come from the simulation goroutine.
type Scheduler struct {
	actions        []*action
	byID           map[ID]*action
	nextID         ID
	convergenceCap float64
}

// New returns an empty scheduler. A non-positive convergenceCap selects
// DefaultConvergenceCap.
func New(convergenceCap float64) *Scheduler {
	if convergenceCap <= 0 {
		convergenceCap = DefaultConvergenceCap
	}
	return &Scheduler{
		byID:           make(map[ID]*action),
		convergenceCap: convergenceCap,
	}
}

// Schedule registers an action. It is first advanced by the next call to Tick.
// onComplete may be nil and runs only on natural completion.
func (s *Scheduler) Schedule(kind Kind, duration float64, payload Payload, onComplete func()) (ID, error) {
	if err := validate(kind, duration, payload); err != nil {
		return 0, err
	}
	s.nextID++
	a := &action{
		id:         s.nextID,
		kind:       kind,
		duration:   duration,
		payload:    payload,
		onComplete: onComplete,
		on:         payload.Resting,
	}
	s.actions = append(s.actions, a)
	s.byID[a.id] = a
	return a.id, nil
}

// Delay is shorthand for a DelayThenFire action.
func (s *Scheduler) Delay(seconds float64, fn func()) (ID, error) {
	return s.Schedule(DelayThenFire, seconds, Payload{}, fn)
}

// Cancel stops an action. Unknown or finished ids are ignored. Effects already
// applied stay applied.
func (s *Scheduler) Cancel(id ID) {
	a, ok := s.byID[id]
	if !ok {
		return
	}
	a.cancelled = true
	delete(s.byID, id)
}

// CancelAll stops every action.
func (s *Scheduler) CancelAll() {
	for id, a := range s.byID {
		a.cancelled = true
		delete(s.byID, id)
	}
}

// Active reports whether id is still scheduled.
func (s *Scheduler) Active(id ID) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of active actions.
func (s *Scheduler) Len() int {
	return len(s.byID)
}

// Tick advances every action that was active when the tick started by the
// same dt, in scheduling order. Completion callbacks run afterwards, also in
// scheduling order; actions they schedule start on the following tick.
func (s *Scheduler) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	n := len(s.actions)
	var completed []*action
	for _, a := range s.actions[:n] {
		if a.cancelled {
			continue
		}
		done, capped := a.advance(dt, s.convergenceCap)
		if !done {
			continue
		}
		if capped {
			log.Printf("Warning: %s action %d did not converge after %.2fs, completing anyway", a.kind, a.id, a.elapsed)
		}
		a.done = true
		completed = append(completed, a)
	}

	kept := s.actions[:0]
	for _, a := range s.actions {
		if !a.cancelled && !a.done {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(s.actions); i++ {
		s.actions[i] = nil
	}
	s.actions = kept

	for _, a := range completed {
		// an earlier callback may have cancelled this one
		if a.cancelled {
			continue
		}
		delete(s.byID, a.id)
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}
