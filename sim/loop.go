package sim

import (
	"log"
	"sync/atomic"
	"time"
)

// Loop drives a Session at a fixed tick rate, either paced by a ticker or as
// fast as possible.
type Loop struct {
	session  *Session
	tickRate int
	fast     bool
	running  atomic.Bool
	stopChan chan struct{}
}

func NewLoop(session *Session, tickRate int, fast bool) *Loop {
	return &Loop{
		session:  session,
		tickRate: tickRate,
		fast:     fast,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until the session ends or Stop is called.
func (l *Loop) Run() Report {
	l.running.Store(true)
	defer l.running.Store(false)

	log.Printf("Simulation started at %d ticks/second (fast=%v)", l.tickRate, l.fast)

	if l.fast {
		for {
			select {
			case <-l.stopChan:
				log.Println("Simulation stopped")
				return l.session.Report()
			default:
			}
			if !l.session.Tick() {
				return l.finish()
			}
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			log.Println("Simulation stopped")
			return l.session.Report()
		case <-ticker.C:
			if !l.session.Tick() {
				return l.finish()
			}
		}
	}
}

// IsRunning reports whether Run is ticking. Safe to call from any goroutine.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stop ends Run. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}

func (l *Loop) finish() Report {
	r := l.session.Report()
	log.Printf("Simulation finished: %s", r)
	return r
}
