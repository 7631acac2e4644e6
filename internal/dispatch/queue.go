package dispatch

import (
	"sync"

	"github.com/negm177/OS-Project/internal/logger"
	"github.com/negm177/OS-Project/internal/request"
)

var Log = logger.GetLogger()

// RequestQueue is the unbounded FIFO shared by every elevator in a building.
// One mutex and one condition variable serialise all access to the pending
// slice and the accepting flag. The lock is only ever held for the short
// enqueue/dequeue/flag critical sections, never across travel or logging.
type RequestQueue struct {
	mtx       sync.Mutex
	nonEmpty  *sync.Cond
	pending   []request.Request
	accepting bool
}

func NewRequestQueue() *RequestQueue {
	rq := &RequestQueue{
		accepting: true,
	}
	rq.nonEmpty = sync.NewCond(&rq.mtx)
	return rq
}

// Submit appends a request and wakes one waiting elevator. A single new
// item can satisfy at most one waiter, so Signal is enough here.
// Returns false if the queue has stopped accepting; the request is then
// dropped without being enqueued.
func (rq *RequestQueue) Submit(req request.Request) bool {
	rq.mtx.Lock()
	defer rq.mtx.Unlock()

	if !rq.accepting {
		Log.Warn().Msgf("Request %v submitted after shutdown, dropping it", req.String())
		return false
	}

	rq.pending = append(rq.pending, req)
	rq.nonEmpty.Signal()
	return true
}

// StopAccepting marks the queue closed and wakes every waiting elevator.
// The broadcast matters: a single wake would leave the other blocked
// elevators asleep forever, since no further work is coming. The flag is
// monotone, calling StopAccepting again is a no-op.
func (rq *RequestQueue) StopAccepting() {
	rq.mtx.Lock()
	defer rq.mtx.Unlock()

	if !rq.accepting {
		return
	}

	rq.accepting = false
	rq.nonEmpty.Broadcast()
}

// WaitAndTake blocks until a request is available or the queue has been
// closed. The second return value is false once the queue is both empty and
// closed, which tells the caller no request will ever arrive again.
//
// Both wake conditions are re-checked in one loop under the lock, so
// neither a lost wakeup nor a spurious one can strand a caller.
func (rq *RequestQueue) WaitAndTake() (request.Request, bool) {
	rq.mtx.Lock()
	defer rq.mtx.Unlock()

	for len(rq.pending) == 0 && rq.accepting {
		rq.nonEmpty.Wait()
	}

	if len(rq.pending) > 0 {
		req := rq.pending[0]
		rq.pending = rq.pending[1:]
		return req, true
	}

	return request.Request{}, false
}

// Len reports the number of requests still waiting for an elevator.
func (rq *RequestQueue) Len() int {
	rq.mtx.Lock()
	defer rq.mtx.Unlock()
	return len(rq.pending)
}

// Accepting reports whether the queue still takes new requests.
func (rq *RequestQueue) Accepting() bool {
	rq.mtx.Lock()
	defer rq.mtx.Unlock()
	return rq.accepting
}
