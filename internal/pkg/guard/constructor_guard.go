// Package guard provides the constructor guard embedded by value objects,
// aggregates and command/query objects across the port engine.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its designated constructor.
// The zero value reports the struct as not constructed, so a zero-value Vessel,
// Berth or command object fails validation instead of silently flowing through
// the engine.
//
// Example usage:
//
//	var ErrTideWindowNotConstructed = errors.New("TideWindow must be created via NewTideWindow")
//
//	type TideWindow struct {
//	    opens  kernel.Tick
//	    closes kernel.Tick
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTideWindow(opens, closes kernel.Tick) (TideWindow, error) {
//	    if closes <= opens {
//	        return TideWindow{}, errors.New("window must close after it opens")
//	    }
//	    return TideWindow{opens: opens, closes: closes, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (w TideWindow) Validate() error {
//	    return w.guard.Validate(ErrTideWindowNotConstructed)
//	}
//
// The guard is a single immutable bool and is safe to copy and to read
// concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
