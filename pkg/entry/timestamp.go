package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// layoutNaive keeps wall-clock time without a zone; journal dates are naive
// local times.
const layoutNaive = "2006-01-02T15:04:05.999999999"

// ParseTime reads a naive timestamp in the local zone.
func ParseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutNaive, v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is the JSON form of an entry date.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Format(layoutNaive)
}
