package simconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() returned %v, expected nil", err)
	}
	if c.NumElevators != 2 || c.NumFloors != 10 || c.NumRequests != 10 {
		t.Errorf("Default() = %+v, expected 2 elevators, 10 floors, 10 requests", c)
	}
	if c.TravelTimePerFloor != 200*time.Millisecond {
		t.Errorf("Default().TravelTimePerFloor = %v, expected 200ms", c.TravelTimePerFloor)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulator_config.yaml")
	content := "NumElevators: 4\nNumFloors: 20\nTravelTimePerFloor: 1000000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error %v", err)
	}

	if c.NumElevators != 4 {
		t.Errorf("NumElevators = %d, expected 4", c.NumElevators)
	}
	if c.NumFloors != 20 {
		t.Errorf("NumFloors = %d, expected 20", c.NumFloors)
	}
	if c.TravelTimePerFloor != time.Millisecond {
		t.Errorf("TravelTimePerFloor = %v, expected 1ms", c.TravelTimePerFloor)
	}

	// Keys the file does not name keep their defaults.
	if c.NumRequests != 10 {
		t.Errorf("NumRequests = %d, expected default 10", c.NumRequests)
	}
	if c.SubmitInterval != time.Second {
		t.Errorf("SubmitInterval = %v, expected default 1s", c.SubmitInterval)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	if err == nil {
		t.Errorf("Load() of a missing file returned nil error")
	}
}

func TestValidate(t *testing.T) {
	invalidConfigArray := []Config{
		{NumElevators: 0, NumFloors: 10, NumRequests: 1, TravelTimePerFloor: time.Millisecond},
		{NumElevators: 1, NumFloors: 1, NumRequests: 1, TravelTimePerFloor: time.Millisecond},
		{NumElevators: 1, NumFloors: 10, NumRequests: -1, TravelTimePerFloor: time.Millisecond},
		{NumElevators: 1, NumFloors: 10, NumRequests: 1, TravelTimePerFloor: 0},
		{NumElevators: 1, NumFloors: 10, NumRequests: 1, TravelTimePerFloor: time.Millisecond, SubmitInterval: -1},
	}

	for index, c := range invalidConfigArray {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate() of invalid config %d returned nil error", index)
		}
	}
}
