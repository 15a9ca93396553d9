package glutil

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// TimerRing measures GPU time with a ring of TIME_ELAPSED queries so
// that reading a result never waits for the frame that issued it.
type TimerRing struct {
	queries []uint32
	issued  []bool
	current int
}

func NewTimerRing(size int) *TimerRing {
	ring := &TimerRing{
		queries: make([]uint32, size),
		issued:  make([]bool, size),
	}
	gl.GenQueries(int32(size), &ring.queries[0])
	return ring
}

func (ring *TimerRing) Begin() {
	gl.BeginQuery(gl.TIME_ELAPSED, ring.queries[ring.current])
}

// End finishes the current query and advances the ring.
func (ring *TimerRing) End() {
	gl.EndQuery(gl.TIME_ELAPSED)
	ring.issued[ring.current] = true
	ring.current = (ring.current + 1) % len(ring.queries)
}

// Oldest returns the result of the oldest query in the ring, which is the
// one Begin will reuse next. It reports false until the ring has wrapped.
func (ring *TimerRing) Oldest() (time.Duration, bool) {
	if !ring.issued[ring.current] {
		return 0, false
	}
	var ns uint64
	gl.GetQueryObjectui64v(ring.queries[ring.current], gl.QUERY_RESULT, &ns)
	return time.Duration(ns), true
}

func (ring *TimerRing) Delete() {
	gl.DeleteQueries(int32(len(ring.queries)), &ring.queries[0])
}

// Elapsed measures a single region with one TIME_ELAPSED query and waits
// for the result.
type Elapsed struct {
	ID uint32
}

func NewElapsed() *Elapsed {
	e := &Elapsed{}
	gl.GenQueries(1, &e.ID)
	return e
}

func (e *Elapsed) Begin() { gl.BeginQuery(gl.TIME_ELAPSED, e.ID) }
func (e *Elapsed) End()   { gl.EndQuery(gl.TIME_ELAPSED) }

func (e *Elapsed) Result() time.Duration {
	var ns uint64
	gl.GetQueryObjectui64v(e.ID, gl.QUERY_RESULT, &ns)
	return time.Duration(ns)
}

func (e *Elapsed) Delete() { gl.DeleteQueries(1, &e.ID) }
