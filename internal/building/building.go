package building

import (
	"errors"
	"time"

	"github.com/negm177/OS-Project/internal/dispatch"
	"github.com/negm177/OS-Project/internal/elevator"
	"github.com/negm177/OS-Project/internal/logger"
	"github.com/negm177/OS-Project/internal/request"
	"github.com/negm177/OS-Project/internal/simevent"
)

var Log = logger.GetLogger()

// Building owns the shared request queue and a fixed pool of elevators.
// Any idle elevator takes the next queued request regardless of where it is
// standing; there is no nearest-car or directional assignment.
type Building struct {
	queue     *dispatch.RequestQueue
	elevators []*elevator.Elevator
	numFloors int

	initialised bool //set to true if initialised via NewBuilding Function
	running     bool
}

// NewBuilding wires numElevators elevators to one shared queue. Every
// elevator starts idle at the ground floor. The elevator set is fixed, the
// pool never grows or shrinks afterwards.
func NewBuilding(numElevators int, numFloors int, travelTick time.Duration, sink simevent.EventSink) *Building {
	if sink == nil {
		sink = simevent.NewLogSink()
	}

	b := &Building{
		queue:     dispatch.NewRequestQueue(),
		numFloors: numFloors,
	}

	for id := 0; id < numElevators; id++ {
		b.elevators = append(b.elevators, elevator.NewElevator(id, travelTick, b.queue, b, sink))
	}

	b.initialised = true
	return b
}

func (b *Building) NumFloors() int {
	return b.numFloors
}

func (b *Building) NumElevators() int {
	return len(b.elevators)
}

// PendingRequests reports how many submitted requests no elevator has
// picked up yet.
func (b *Building) PendingRequests() int {
	return b.queue.Len()
}

// StartAll launches every elevator. Order between them is irrelevant, the
// elevators are symmetric consumers of the same queue.
func (b *Building) StartAll() error {
	if !b.initialised {
		return errors.New("building not initialised")
	}
	if b.running {
		return errors.New("building already running")
	}

	for _, elev := range b.elevators {
		if err := elev.Start(); err != nil {
			return err
		}
	}

	b.running = true
	return nil
}

// Submit hands a request to the shared queue. Returns false if the building
// has stopped accepting requests; the request is then dropped.
func (b *Building) Submit(req request.Request) bool {
	return b.queue.Submit(req)
}

// StopAcceptingRequests closes the queue and wakes every blocked elevator.
// Idempotent; callable from the request source or from any elevator's
// shutdown path.
func (b *Building) StopAcceptingRequests() {
	b.queue.StopAccepting()
}

// WaitAll stops every elevator in turn, each call blocking until that
// elevator's goroutine has fully exited. Queued requests are still served
// before the elevators stop. When WaitAll returns, no elevator goroutine is
// running and the queue is closed.
func (b *Building) WaitAll() {
	if !b.initialised {
		Log.Error().Msg("Building not initialised")
		return
	}

	Log.Debug().Msg("Stopping all elevators")

	b.StopAcceptingRequests()
	for _, elev := range b.elevators {
		elev.Stop()
	}

	Log.Debug().Msg("All elevators stopped")
	b.running = false
}
