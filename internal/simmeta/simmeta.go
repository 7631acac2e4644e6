package simmeta

import (
	"encoding/json"

	"github.com/negm177/OS-Project/internal/logger"
	"github.com/xyproto/randomstring"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

// RunMeta describes one simulation run, logged at startup.
type RunMeta struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	NumElevators    int    `json:"num_elevators"`
	NumFloors       int    `json:"num_floors"`
}

func NewRunMeta(identifier string, softwareVersion string, numElevators int, numFloors int) *RunMeta {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN) //this should be random enough
		Log.Warn().Msgf("No run identifier provided, generated random identifier \"%v\"", identifier)
	}

	return &RunMeta{
		SoftwareVersion: softwareVersion,
		Identifier:      identifier,
		NumElevators:    numElevators,
		NumFloors:       numFloors,
	}
}

func (runMeta *RunMeta) String() string {
	jsonData, err := json.Marshal(runMeta)

	if err != nil {
		Log.Error().Msg("Error Serialising RunMeta Object to JSON")
		return ""
	}
	return string(jsonData)
}
