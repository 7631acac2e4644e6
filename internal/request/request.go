package request

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/negm177/OS-Project/internal/logger"
)

var Log = logger.GetLogger()

var (
	ErrFloorOutOfRange = errors.New("floor is outside the building")
	ErrSameFloor       = errors.New("source and destination floors are equal")
)

// Request is a pickup/dropoff pair. Floors are numbered from 1.
// A Request is immutable once created.
type Request struct {
	Source      int       `json:"source_floor"`
	Dest        int       `json:"dest_floor"`
	SubmittedAt time.Time `json:"-"`
}

// New validates the floor pair and stamps the submission time.
func New(source int, dest int, numFloors int) (Request, error) {
	if source < 1 || source > numFloors || dest < 1 || dest > numFloors {
		return Request{}, ErrFloorOutOfRange
	}
	if source == dest {
		return Request{}, ErrSameFloor
	}

	return Request{
		Source:      source,
		Dest:        dest,
		SubmittedAt: time.Now(),
	}, nil
}

func (r *Request) String() string {
	jsonData, err := json.Marshal(r)

	if err != nil {
		Log.Error().Msg("Error Serialising Request Object to JSON")
		return ""
	}
	return string(jsonData)
}
