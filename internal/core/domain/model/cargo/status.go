package cargo

import (
	"fmt"
	"strings"

	"seaport/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Arriving
	Unloading
	InYard
	Loading
	Loaded
	Departed
	InTransit
	Transferred
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Arriving:    "arriving",
		Unloading:   "unloading",
		InYard:      "in-yard",
		Loading:     "loading",
		Loaded:      "loaded",
		Departed:    "departed",
		InTransit:   "in-transit",
		Transferred: "transferred",
	}
}

// ParseStatus maps a status tag to a Status, failing with an InvalidStatus error.
func ParseStatus(raw string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for s, str := range getStatusStrings() {
		if str == needle {
			return s, nil
		}
	}
	return Unknown, errs.NewInvalidStatusErrorWithCause("container status", fmt.Errorf("%q is not a container status", raw))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewInvalidStatusErrorWithCause("container status", fmt.Errorf("%d is not a container status", s))
	}
	return nil
}

// IsHandling reports whether the status belongs to an in-progress operation.
// Only operations move a container into or out of these statuses.
func (s Status) IsHandling() bool {
	return s == Loading || s == Unloading || s == InTransit
}
