package simevent

import "testing"

func TestSimEvent(t *testing.T) {
	simEventArray := []SimEvent{
		{Value: FloorPassedEvent{}},
		{Value: PickupEvent{}},
		{Value: DropoffEvent{}},
		{Value: RequestServedEvent{}},
		{Value: struct{}{}},
	}

	simEventStringArray := []string{
		"FloorPassedEvent",
		"PickupEvent",
		"DropoffEvent",
		"RequestServedEvent",
		"UnknownEvent",
	}

	for index, simEvent := range simEventArray {
		if simEvent.EventType() != simEventStringArray[index] {
			t.Errorf("SimEvent.EventType() returned %v, expected %v", simEvent.EventType(), simEventStringArray[index])
		}
	}
}

func TestWrap(t *testing.T) {
	event := FloorPassedEvent{Elevator: 1, Floor: 3}.Wrap()

	if event.EventType() != "FloorPassedEvent" {
		t.Errorf("Wrap() produced event type %v, expected FloorPassedEvent", event.EventType())
	}
	if event.Value.(FloorPassedEvent) != (FloorPassedEvent{Elevator: 1, Floor: 3}) {
		t.Errorf("Wrap() lost the event payload: %v", event.Value)
	}
}
