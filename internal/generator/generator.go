package generator

import (
	"math/rand"
	"time"

	"github.com/negm177/OS-Project/internal/logger"
	"github.com/negm177/OS-Project/internal/request"
)

var Log = logger.GetLogger()

// Dispatcher is the slice of the building the generator needs: somewhere to
// send requests and a way to say no more are coming.
type Dispatcher interface {
	Submit(req request.Request) bool
	StopAcceptingRequests()
	NumFloors() int
}

// Generator produces random timestamped requests at a fixed cadence and
// closes the dispatcher when done. It stands in for the building's call
// buttons.
type Generator struct {
	dispatcher  Dispatcher
	numRequests int
	interval    time.Duration
	rng         *rand.Rand
}

func NewGenerator(dispatcher Dispatcher, numRequests int, interval time.Duration, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		dispatcher:  dispatcher,
		numRequests: numRequests,
		interval:    interval,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Run submits numRequests random valid requests, one per interval, then
// calls StopAcceptingRequests exactly once. Blocks until done.
func (g *Generator) Run() {
	numFloors := g.dispatcher.NumFloors()

	for i := 0; i < g.numRequests; i++ {
		source := g.rng.Intn(numFloors) + 1
		dest := g.rng.Intn(numFloors) + 1
		for dest == source {
			dest = g.rng.Intn(numFloors) + 1
		}

		req, err := request.New(source, dest, numFloors)
		if err != nil {
			Log.Error().Msgf("Generated malformed request (%d, %d): %v", source, dest, err)
			continue
		}

		if g.dispatcher.Submit(req) {
			Log.Info().Msgf("Submitted request %v", req.String())
		}

		time.Sleep(g.interval)
	}

	g.dispatcher.StopAcceptingRequests()
}
