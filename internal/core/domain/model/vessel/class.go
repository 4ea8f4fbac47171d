package vessel

import (
	"fmt"
	"strings"

	"seaport/internal/pkg/errs"
)

// Class is the vessel category used for priority and berth compatibility.
type Class int

const (
	UnknownClass Class = iota
	Standard
	Cargo
	Emergency
	Tanker
	Passenger
	// Any is only meaningful on a berth: it accepts every vessel class.
	Any
)

func getClassStrings() map[Class]string {
	return map[Class]string{
		UnknownClass: "unknown",
		Standard:     "standard",
		Cargo:        "cargo",
		Emergency:    "emergency",
		Tanker:       "tanker",
		Passenger:    "passenger",
		Any:          "any",
	}
}

// ParseClass maps a class tag such as "cargo" to a Class. Matching ignores case.
func ParseClass(raw string) (Class, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for c, s := range getClassStrings() {
		if c != UnknownClass && s == needle {
			return c, nil
		}
	}
	return UnknownClass, errs.NewValueIsInvalidErrorWithCause("vessel class", fmt.Errorf("%q is not a known class", raw))
}

func (c Class) String() string {
	if s, ok := getClassStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate accepts every class including Any.
func (c Class) Validate() error {
	if c <= UnknownClass || c > Any {
		return errs.NewValueIsInvalidErrorWithCause("vessel class", fmt.Errorf("%d is not a valid class", c))
	}
	return nil
}

// ValidateForVessel rejects Any, which only describes berths.
func (c Class) ValidateForVessel() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c == Any {
		return errs.NewValueIsInvalidErrorWithCause("vessel class", fmt.Errorf("%s is reserved for berths", c))
	}
	return nil
}

// Accepts reports whether a berth supporting c can take a vessel of class other.
func (c Class) Accepts(other Class) bool {
	return c == Any || c == other
}
