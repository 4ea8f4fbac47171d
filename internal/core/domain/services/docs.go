// Package services provides domain services that coordinate more than one
// aggregate of the port domain.
//
// The package includes:
//   - BerthAllocator: binds vessels to berths, releases them, detects schedule
//     conflicts and picks the best-fitting free berth for a queued vessel
//   - CapacityCalculator: derives port capacity, turnaround estimates and
//     efficiency statistics; it never mutates the aggregates it reads
package services
