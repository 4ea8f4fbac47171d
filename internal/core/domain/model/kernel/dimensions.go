package kernel

import (
	"errors"
	"fmt"

	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is the length/beam/draft triple of a hull or the maximum
// envelope a berth accepts. All three values are strictly positive.
type Dimensions struct {
	length int
	beam   int
	draft  int
	guard  guard.ConstructorGuard
}

// NewDimensions validates every component and reports all violations at once.
//
// Example:
//
//	hull, err := kernel.NewDimensions(200, 30, 10)
//	envelope, _ := kernel.NewDimensions(250, 35, 12)
//	hull.FitsWithin(envelope) // true
func NewDimensions(length, beam, draft int) (Dimensions, error) {
	if err := errors.Join(
		positive("length", length),
		positive("beam", beam),
		positive("draft", draft),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		length: length,
		beam:   beam,
		draft:  draft,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Length() int { return d.length }

func (d Dimensions) Beam() int { return d.beam }

func (d Dimensions) Draft() int { return d.draft }

// FitsWithin reports whether every component is at most the matching envelope component.
func (d Dimensions) FitsWithin(envelope Dimensions) bool {
	return len(d.Exceeding(envelope)) == 0
}

// Exceeding lists the components that are larger than the envelope allows.
func (d Dimensions) Exceeding(envelope Dimensions) []string {
	var over []string
	if d.length > envelope.length {
		over = append(over, "length")
	}
	if d.beam > envelope.beam {
		over = append(over, "beam")
	}
	if d.draft > envelope.draft {
		over = append(over, "draft")
	}
	return over
}

// Volume orders envelopes from tightest to loosest for best-fit selection.
func (d Dimensions) Volume() int64 {
	return int64(d.length) * int64(d.beam) * int64(d.draft)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.length, d.beam, d.draft)
}

func positive(name string, v int) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", v))
	}
	return nil
}
