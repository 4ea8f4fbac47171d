package ports

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
)

// BerthsInUse is the counter tracking how many berths hold a vessel.
const BerthsInUse = "berths_in_use"

// CounterRepository is the sequential ID allocator and the home of the
// global counters. It shares the unit of work's transaction: an identifier
// drawn in a rolled-back transaction is issued again.
type CounterRepository interface {
	// NextID returns the next identifier of class, starting at 1.
	NextID(ctx context.Context, class kernel.EntityClass) (kernel.ID, error)
	Increment(ctx context.Context, name string) error
	// Decrement fails with an errs.CapacityExceededError rather than going below zero.
	Decrement(ctx context.Context, name string) error
}
