package elevator

import (
	"errors"
	"sync"
	"time"

	"github.com/negm177/OS-Project/internal/dispatch"
	"github.com/negm177/OS-Project/internal/logger"
	"github.com/negm177/OS-Project/internal/request"
	"github.com/negm177/OS-Project/internal/simevent"
	"github.com/rs/zerolog"
)

const (
	START_FLOOR         = 1
	DEFAULT_TRAVEL_TICK = 200 * time.Millisecond
)

type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "ES_Idle"
	case Running:
		return "ES_Running"
	case Stopped:
		return "ES_Stopped"
	default:
		return "ES_UNDEFINED"
	}
}

// RequestCloser is the back-reference an elevator uses during shutdown to
// make sure every elevator blocked on the shared queue wakes up.
type RequestCloser interface {
	StopAcceptingRequests()
}

// Elevator serves one request at a time, pulled from the shared queue.
// currentFloor is only ever touched by the elevator's own goroutine, so it
// needs no lock.
type Elevator struct {
	id           int
	currentFloor int
	travelTick   time.Duration
	queue        *dispatch.RequestQueue
	closer       RequestCloser
	sink         simevent.EventSink
	log          zerolog.Logger

	mtx      sync.Mutex
	state    State
	done     chan struct{}
	stopOnce sync.Once
}

func NewElevator(id int, travelTick time.Duration, queue *dispatch.RequestQueue, closer RequestCloser, sink simevent.EventSink) *Elevator {
	if travelTick <= 0 {
		travelTick = DEFAULT_TRAVEL_TICK
	}

	return &Elevator{
		id:           id,
		currentFloor: START_FLOOR,
		travelTick:   travelTick,
		queue:        queue,
		closer:       closer,
		sink:         sink,
		log:          logger.GetElevatorLogger(id),
		state:        Idle,
		done:         make(chan struct{}),
	}
}

func (e *Elevator) ID() int {
	return e.id
}

// CurrentFloor is only meaningful while the elevator is not Running.
func (e *Elevator) CurrentFloor() int {
	return e.currentFloor
}

func (e *Elevator) State() State {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.state
}

// Start launches the service loop goroutine. Starting twice is an error.
func (e *Elevator) Start() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.state != Idle {
		return errors.New("elevator has already been started")
	}

	e.state = Running
	go e.run()
	return nil
}

// Stop closes the shared queue and blocks until the service loop has fully
// exited. An elevator mid-travel finishes its current request first; the
// shutdown is only observed at the next fetch. Safe to call more than once.
func (e *Elevator) Stop() {
	e.mtx.Lock()
	if e.state == Idle {
		// Never started, so there is no goroutine to join.
		e.state = Stopped
		close(e.done)
		e.mtx.Unlock()
		e.closer.StopAcceptingRequests()
		return
	}
	e.mtx.Unlock()

	e.stopOnce.Do(func() {
		e.log.Debug().Msg("Stopping elevator")
		e.closer.StopAcceptingRequests()
	})

	<-e.done
}

func (e *Elevator) run() {
	defer close(e.done)

	for {
		req, ok := e.queue.WaitAndTake()
		if !ok {
			break
		}
		e.process(req)
	}

	e.mtx.Lock()
	e.state = Stopped
	e.mtx.Unlock()
	e.log.Debug().Msg("No more requests, elevator stopped")
}

func (e *Elevator) process(req request.Request) {
	e.moveTo(req.Source)
	e.sink.Publish(simevent.SimEvent{Value: simevent.PickupEvent{Elevator: e.id, Floor: req.Source}})

	e.moveTo(req.Dest)
	e.sink.Publish(simevent.SimEvent{Value: simevent.DropoffEvent{Elevator: e.id, Floor: req.Dest}})

	e.sink.Publish(simevent.SimEvent{Value: simevent.RequestServedEvent{Elevator: e.id, Latency: time.Since(req.SubmittedAt)}})
}

// moveTo advances one floor per travel tick until the target is reached.
// The sleep happens outside any lock, a slow elevator never blocks the
// queue for the others.
func (e *Elevator) moveTo(target int) {
	for e.currentFloor != target {
		time.Sleep(e.travelTick)
		if target > e.currentFloor {
			e.currentFloor++
		} else {
			e.currentFloor--
		}
		e.sink.Publish(simevent.SimEvent{Value: simevent.FloorPassedEvent{Elevator: e.id, Floor: e.currentFloor}})
	}
}
