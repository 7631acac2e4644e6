package simevent

import "time"

type SimEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

// Emitted once per floor while an elevator is travelling.
type FloorPassedEvent struct {
	Elevator int
	Floor    int
}

func (fpe FloorPassedEvent) Wrap() SimEvent {
	return SimEvent{Value: fpe}
}

type PickupEvent struct {
	Elevator int
	Floor    int
}

type DropoffEvent struct {
	Elevator int
	Floor    int
}

// Emitted after dropoff; Latency is measured from request submission.
type RequestServedEvent struct {
	Elevator int
	Latency  time.Duration
}

func (e *SimEvent) EventType() string {
	switch e.Value.(type) {
	case FloorPassedEvent:
		return "FloorPassedEvent"
	case PickupEvent:
		return "PickupEvent"
	case DropoffEvent:
		return "DropoffEvent"
	case RequestServedEvent:
		return "RequestServedEvent"
	default:
		return "UnknownEvent"
	}
}
