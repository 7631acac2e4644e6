package simconfig

import (
	"errors"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

// Defaults mirror the classic demo run: two elevators in a ten floor
// building, ten requests one second apart, 200 ms per floor.
const (
	DEFAULT_NUM_ELEVATORS   = 2
	DEFAULT_NUM_FLOORS      = 10
	DEFAULT_NUM_REQUESTS    = 10
	DEFAULT_TRAVEL_TICK     = 200 * time.Millisecond
	DEFAULT_SUBMIT_INTERVAL = 1 * time.Second
)

type Config struct {
	NumElevators       int           `yaml:"NumElevators"`
	NumFloors          int           `yaml:"NumFloors"`
	NumRequests        int           `yaml:"NumRequests"`
	TravelTimePerFloor time.Duration `yaml:"TravelTimePerFloor"`
	SubmitInterval     time.Duration `yaml:"SubmitInterval"`
	Seed               int64         `yaml:"Seed"` //0 seeds from the clock
}

func Default() Config {
	return Config{
		NumElevators:       DEFAULT_NUM_ELEVATORS,
		NumFloors:          DEFAULT_NUM_FLOORS,
		NumRequests:        DEFAULT_NUM_REQUESTS,
		TravelTimePerFloor: DEFAULT_TRAVEL_TICK,
		SubmitInterval:     DEFAULT_SUBMIT_INTERVAL,
		Seed:               0,
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it names. Durations are given in nanoseconds, as
// yaml decodes integers into time.Duration.
func Load(path string) (Config, error) {
	c := Default()

	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&c)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.NumElevators < 1 {
		return errors.New("a building needs at least one elevator")
	}
	if c.NumFloors < 2 {
		return errors.New("a building needs at least two floors")
	}
	if c.NumRequests < 0 {
		return errors.New("number of requests cannot be negative")
	}
	if c.TravelTimePerFloor <= 0 {
		return errors.New("travel time per floor must be positive")
	}
	if c.SubmitInterval < 0 {
		return errors.New("submit interval cannot be negative")
	}
	return nil
}
