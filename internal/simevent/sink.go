package simevent

import (
	"github.com/negm177/OS-Project/internal/logger"
)

// EventSink receives the discrete events elevators emit while serving
// requests. Implementations must be safe for concurrent use, since every
// elevator goroutine publishes to the same sink.
type EventSink interface {
	Publish(event SimEvent)
}

// LogSink writes every event as one structured log line. zerolog hands each
// line to the writer in a single call, so lines from concurrent elevators
// never interleave.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (ls *LogSink) Publish(event SimEvent) {
	switch evnt := event.Value.(type) {
	case FloorPassedEvent:
		log := logger.GetElevatorLogger(evnt.Elevator)
		log.Info().Msgf("Passing floor %d", evnt.Floor)
	case PickupEvent:
		log := logger.GetElevatorLogger(evnt.Elevator)
		log.Info().Msgf("Pick up at %d", evnt.Floor)
	case DropoffEvent:
		log := logger.GetElevatorLogger(evnt.Elevator)
		log.Info().Msgf("Drop off at %d", evnt.Floor)
	case RequestServedEvent:
		log := logger.GetElevatorLogger(evnt.Elevator)
		log.Info().Msgf("Request time: %d ms", evnt.Latency.Milliseconds())
	default:
		logger.GetLogger().Error().Msgf("Unknown event published: %v", event.Value)
	}
}
